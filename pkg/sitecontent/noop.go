package sitecontent

import "context"

// NoopEventSink is a no-operation implementation of EventSink
// Useful when no event handling is needed or for testing
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

// HeroVideoUpdated does nothing and returns nil
func (n *NoopEventSink) HeroVideoUpdated(ctx context.Context, url string) error {
	return nil
}

// SlotImageUpdated does nothing and returns nil
func (n *NoopEventSink) SlotImageUpdated(ctx context.Context, slotKey, url string) error {
	return nil
}

// GalleryItemAdded does nothing and returns nil
func (n *NoopEventSink) GalleryItemAdded(ctx context.Context, item GalleryItem) error {
	return nil
}

// GalleryItemDeleted does nothing and returns nil
func (n *NoopEventSink) GalleryItemDeleted(ctx context.Context, id string) error {
	return nil
}

// RemoteAssetOrphaned does nothing and returns nil
func (n *NoopEventSink) RemoteAssetOrphaned(ctx context.Context, assetID string, cause error) error {
	return nil
}
