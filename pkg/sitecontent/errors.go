package sitecontent

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrUnknownSlot indicates a slot key outside the canonical set
	ErrUnknownSlot = errors.New("unknown slot key")

	// ErrUnknownCategory indicates a gallery category outside the fixed enumeration
	ErrUnknownCategory = errors.New("unknown gallery category")

	// ErrItemNotFound indicates a gallery item was not found
	ErrItemNotFound = errors.New("gallery item not found")

	// ErrUploadFailed indicates the media host upload failed
	ErrUploadFailed = errors.New("media upload failed")

	// ErrNoFile indicates a mutating request carried no file
	ErrNoFile = errors.New("no file uploaded")

	// ErrDocumentCorrupt indicates the stored document is unreadable or not valid JSON.
	// The service recovers from it by substituting the default document.
	ErrDocumentCorrupt = errors.New("content document corrupt")
)

// DocumentError represents an error related to document store operations
type DocumentError struct {
	Op  string
	Err error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document operation %s failed: %v", e.Op, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// MediaError represents an error related to media host operations
type MediaError struct {
	Op      string
	Folder  string
	AssetID string
	Err     error
}

func (e *MediaError) Error() string {
	if e.AssetID != "" {
		return fmt.Sprintf("media operation %s failed for asset %s: %v", e.Op, e.AssetID, e.Err)
	}
	return fmt.Sprintf("media operation %s failed in folder %s: %v", e.Op, e.Folder, e.Err)
}

func (e *MediaError) Unwrap() error {
	return e.Err
}
