package sitecontent

import (
	"context"
	"log/slog"
)

// LogEventSink writes every content lifecycle event to a structured logger.
type LogEventSink struct {
	logger *slog.Logger
}

// NewLogEventSink creates an event sink backed by the given logger.
func NewLogEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventSink{logger: logger}
}

func (l *LogEventSink) HeroVideoUpdated(ctx context.Context, url string) error {
	l.logger.Info("hero video updated", "url", url)
	return nil
}

func (l *LogEventSink) SlotImageUpdated(ctx context.Context, slotKey, url string) error {
	l.logger.Info("slot image updated", "slot_key", slotKey, "url", url)
	return nil
}

func (l *LogEventSink) GalleryItemAdded(ctx context.Context, item GalleryItem) error {
	l.logger.Info("gallery item added", "id", item.ID, "category", item.Category, "asset_id", item.AssetID)
	return nil
}

func (l *LogEventSink) GalleryItemDeleted(ctx context.Context, id string) error {
	l.logger.Info("gallery item deleted", "id", id)
	return nil
}

func (l *LogEventSink) RemoteAssetOrphaned(ctx context.Context, assetID string, cause error) error {
	l.logger.Warn("remote asset orphaned", "asset_id", assetID, "error", cause)
	return nil
}
