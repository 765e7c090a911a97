package sitecontent

import (
	"context"
	"io"
)

// DocumentStore defines the interface for persisting the content document.
// Load returns the stored document or the built-in default when nothing has
// been stored yet; callers apply Normalize on the result. Save rewrites the
// document in full.
type DocumentStore interface {
	Load(ctx context.Context) (*ContentDocument, error)
	Save(ctx context.Context, doc *ContentDocument) error
}

// UploadInput describes one binary asset to hand to the media host.
type UploadInput struct {
	Folder   string
	Kind     ResourceKind
	FileName string
	Body     io.Reader
}

// UploadResult is what the media host returns for a stored asset.
type UploadResult struct {
	SecureURL string
	AssetID   string
}

// MediaHost defines the interface for the external media-hosting collaborator.
// Any object-storage + CDN combination can sit behind this two-call contract.
type MediaHost interface {
	// Upload stores the asset under the given logical folder and returns
	// its public URL plus the identifier used later for destruction.
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)

	// Destroy removes a previously uploaded asset.
	Destroy(ctx context.Context, assetID string) error
}

// EventSink defines the interface for content lifecycle events
type EventSink interface {
	// HeroVideoUpdated is fired when the hero video URL changes
	HeroVideoUpdated(ctx context.Context, url string) error

	// SlotImageUpdated is fired when a slot image URL changes
	SlotImageUpdated(ctx context.Context, slotKey, url string) error

	// GalleryItemAdded is fired when a gallery item is appended
	GalleryItemAdded(ctx context.Context, item GalleryItem) error

	// GalleryItemDeleted is fired when a gallery item is removed
	GalleryItemDeleted(ctx context.Context, id string) error

	// RemoteAssetOrphaned is fired when a remote asset could not be cleaned
	// up (or could not be recorded after upload) and is left behind at the
	// media host. The failure is reported here instead of the caller.
	RemoteAssetOrphaned(ctx context.Context, assetID string, cause error) error
}
