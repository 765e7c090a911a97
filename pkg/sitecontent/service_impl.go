package sitecontent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Media folder layout under the configured prefix.
const (
	heroFolder    = "hero"
	slotsFolder   = "slots"
	galleryFolder = "gallery"
)

const defaultFolderPrefix = "sitecontent"

// service implements the Service interface
type service struct {
	store  DocumentStore
	media  MediaHost
	events EventSink
	logger *slog.Logger

	folderPrefix string
	mediaTimeout time.Duration

	// mu serializes every load-mutate-save sequence so concurrent mutating
	// requests cannot lose updates. Reads bypass it: stores serve a
	// consistent snapshot on their own.
	mu sync.Mutex
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithDocumentStore sets the document store for the service
func WithDocumentStore(store DocumentStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithMediaHost sets the external media host for the service
func WithMediaHost(media MediaHost) Option {
	return func(s *service) {
		s.media = media
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.events = sink
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// WithFolderPrefix sets the logical folder prefix used at the media host
func WithFolderPrefix(prefix string) Option {
	return func(s *service) {
		s.folderPrefix = prefix
	}
}

// WithMediaTimeout bounds each media host call with a deadline
func WithMediaTimeout(timeout time.Duration) Option {
	return func(s *service) {
		s.mediaTimeout = timeout
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		folderPrefix: defaultFolderPrefix,
		mediaTimeout: 30 * time.Second,
	}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("document store is required")
	}
	if s.media == nil {
		return nil, fmt.Errorf("media host is required")
	}
	if s.events == nil {
		s.events = NewNoopEventSink()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

// loadOrDefault loads the document and applies default filling. Storage
// failures degrade to the built-in default so a corrupt or missing file
// never blocks a request.
func (s *service) loadOrDefault(ctx context.Context) *ContentDocument {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("content document unreadable, using defaults", "error", err)
		doc = DefaultDocument()
	}
	doc.Normalize()
	return doc
}

func (s *service) GetContent(ctx context.Context) (*ContentDocument, error) {
	return s.loadOrDefault(ctx), nil
}

func (s *service) ListGallery(ctx context.Context) ([]GalleryItem, error) {
	return s.loadOrDefault(ctx).Gallery, nil
}

func (s *service) SetHeroVideo(ctx context.Context, req SetHeroVideoRequest) (*HeroVideoResult, error) {
	if req.File == nil {
		return nil, ErrNoFile
	}

	folder := s.folderPrefix + "/" + heroFolder
	result, err := s.upload(ctx, UploadInput{
		Folder:   folder,
		Kind:     ResourceVideo,
		FileName: req.FileName,
		Body:     req.File,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadOrDefault(ctx)
	doc.HeroVideo = &result.SecureURL
	if err := s.store.Save(ctx, doc); err != nil {
		s.reportOrphan(ctx, result.AssetID, err)
		return nil, &DocumentError{Op: "save hero video", Err: err}
	}

	if err := s.events.HeroVideoUpdated(ctx, result.SecureURL); err != nil {
		s.logger.Warn("event sink failed", "event", "hero_video_updated", "error", err)
	}
	return &HeroVideoResult{URL: result.SecureURL}, nil
}

func (s *service) SetSlotImage(ctx context.Context, req SetSlotImageRequest) (*SlotImageResult, error) {
	if !ValidSlotKey(req.SlotKey) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, req.SlotKey)
	}
	if req.File == nil {
		return nil, ErrNoFile
	}

	folder := s.folderPrefix + "/" + slotsFolder + "/" + req.SlotKey
	result, err := s.upload(ctx, UploadInput{
		Folder:   folder,
		Kind:     ResourceImage,
		FileName: req.FileName,
		Body:     req.File,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadOrDefault(ctx)
	// The previous asset stays at the media host: slots only record URLs,
	// and replacing one is an accepted leak.
	doc.Slots[req.SlotKey] = &result.SecureURL
	if err := s.store.Save(ctx, doc); err != nil {
		s.reportOrphan(ctx, result.AssetID, err)
		return nil, &DocumentError{Op: "save slot image", Err: err}
	}

	if err := s.events.SlotImageUpdated(ctx, req.SlotKey, result.SecureURL); err != nil {
		s.logger.Warn("event sink failed", "event", "slot_image_updated", "error", err)
	}
	return &SlotImageResult{SlotKey: req.SlotKey, URL: result.SecureURL}, nil
}

func (s *service) AddGalleryItem(ctx context.Context, req AddGalleryItemRequest) (*GalleryItem, error) {
	if !ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
	}
	if req.File == nil {
		return nil, ErrNoFile
	}

	folder := s.folderPrefix + "/" + galleryFolder + "/" + req.Category
	result, err := s.upload(ctx, UploadInput{
		Folder:   folder,
		Kind:     ResourceImage,
		FileName: req.FileName,
		Body:     req.File,
	})
	if err != nil {
		return nil, err
	}

	item := GalleryItem{
		ID:       uuid.New().String(),
		URL:      result.SecureURL,
		AssetID:  result.AssetID,
		Category: req.Category,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadOrDefault(ctx)
	doc.Gallery = append(doc.Gallery, item)
	if err := s.store.Save(ctx, doc); err != nil {
		s.reportOrphan(ctx, result.AssetID, err)
		return nil, &DocumentError{Op: "save gallery item", Err: err}
	}

	if err := s.events.GalleryItemAdded(ctx, item); err != nil {
		s.logger.Warn("event sink failed", "event", "gallery_item_added", "error", err)
	}
	return &item, nil
}

func (s *service) DeleteGalleryItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.loadOrDefault(ctx)
	idx := -1
	for i, item := range doc.Gallery {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrItemNotFound, id)
	}
	item := doc.Gallery[idx]

	// Remote cleanup is best effort: local consistency wins, so a destroy
	// failure is reported and swallowed, never surfaced to the caller.
	if err := s.destroy(ctx, item.AssetID); err != nil {
		s.reportOrphan(ctx, item.AssetID, err)
	}

	doc.Gallery = append(doc.Gallery[:idx], doc.Gallery[idx+1:]...)
	if err := s.store.Save(ctx, doc); err != nil {
		return &DocumentError{Op: "save gallery deletion", Err: err}
	}

	if err := s.events.GalleryItemDeleted(ctx, id); err != nil {
		s.logger.Warn("event sink failed", "event", "gallery_item_deleted", "error", err)
	}
	return nil
}

func (s *service) upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.mediaTimeout)
	defer cancel()

	result, err := s.media.Upload(ctx, input)
	if err != nil {
		return nil, &MediaError{Op: "upload", Folder: input.Folder, Err: fmt.Errorf("%w: %v", ErrUploadFailed, err)}
	}
	return result, nil
}

func (s *service) destroy(ctx context.Context, assetID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.mediaTimeout)
	defer cancel()

	if err := s.media.Destroy(ctx, assetID); err != nil {
		return &MediaError{Op: "destroy", AssetID: assetID, Err: err}
	}
	return nil
}

// reportOrphan records a remote asset left behind at the media host.
func (s *service) reportOrphan(ctx context.Context, assetID string, cause error) {
	s.logger.Warn("remote asset orphaned", "asset_id", assetID, "error", cause)
	if err := s.events.RemoteAssetOrphaned(ctx, assetID, cause); err != nil {
		s.logger.Warn("event sink failed", "event", "remote_asset_orphaned", "error", err)
	}
}
