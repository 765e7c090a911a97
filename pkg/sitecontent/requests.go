package sitecontent

import "io"

// Request/Response DTOs

// SetHeroVideoRequest contains parameters for replacing the hero video
type SetHeroVideoRequest struct {
	FileName string
	File     io.Reader
}

// SetSlotImageRequest contains parameters for replacing one slot image
type SetSlotImageRequest struct {
	SlotKey  string
	FileName string
	File     io.Reader
}

// AddGalleryItemRequest contains parameters for appending a gallery item
type AddGalleryItemRequest struct {
	Category string
	FileName string
	File     io.Reader
}

// HeroVideoResult is returned after a successful hero video replacement
type HeroVideoResult struct {
	URL string `json:"url"`
}

// SlotImageResult is returned after a successful slot image replacement
type SlotImageResult struct {
	SlotKey string `json:"slot_key"`
	URL     string `json:"url"`
}
