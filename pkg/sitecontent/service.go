package sitecontent

import "context"

// Service defines the main interface for the site-content library
type Service interface {
	// GetContent returns the full content document. A missing or corrupt
	// stored document degrades to the built-in default rather than failing.
	GetContent(ctx context.Context) (*ContentDocument, error)

	// SetHeroVideo uploads a new hero video and records its URL
	SetHeroVideo(ctx context.Context, req SetHeroVideoRequest) (*HeroVideoResult, error)

	// SetSlotImage uploads a new image for one named slot, overwriting any
	// prior value. The previous remote asset is not deleted.
	SetSlotImage(ctx context.Context, req SetSlotImageRequest) (*SlotImageResult, error)

	// ListGallery returns the gallery items in stored (display) order
	ListGallery(ctx context.Context) ([]GalleryItem, error)

	// AddGalleryItem uploads a categorized photo and appends it to the gallery
	AddGalleryItem(ctx context.Context, req AddGalleryItemRequest) (*GalleryItem, error)

	// DeleteGalleryItem removes a gallery item by id. The remote asset is
	// destroyed best-effort; a destroy failure never fails the call.
	DeleteGalleryItem(ctx context.Context, id string) error
}
