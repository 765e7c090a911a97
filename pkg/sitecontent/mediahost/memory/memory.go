package memory

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/secretspot/site-content/pkg/sitecontent"
)

// UploadCall records one Upload invocation for assertions.
type UploadCall struct {
	Folder   string
	Kind     sitecontent.ResourceKind
	FileName string
	Size     int64
}

// Host is an in-memory implementation of the sitecontent.MediaHost
// interface. It records every call and can be told to fail, which makes it
// the media-host double for tests and a working backend for local
// development.
type Host struct {
	mu         sync.Mutex
	seq        int
	assets     map[string][]byte
	uploads    []UploadCall
	destroys   []string
	uploadErr  error
	destroyErr error
}

// New creates a new in-memory media host
func New() *Host {
	return &Host{assets: make(map[string][]byte)}
}

// FailUploads makes every subsequent Upload return err (nil restores normal behavior).
func (h *Host) FailUploads(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.uploadErr = err
}

// FailDestroys makes every subsequent Destroy return err (nil restores normal behavior).
func (h *Host) FailDestroys(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.destroyErr = err
}

// Upload stores the asset bytes in memory and fabricates a stable URL and
// asset identifier.
func (h *Host) Upload(ctx context.Context, input sitecontent.UploadInput) (*sitecontent.UploadResult, error) {
	data, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.uploadErr != nil {
		return nil, h.uploadErr
	}

	h.seq++
	assetID := fmt.Sprintf("%s/asset-%d", input.Folder, h.seq)
	h.assets[assetID] = data
	h.uploads = append(h.uploads, UploadCall{
		Folder:   input.Folder,
		Kind:     input.Kind,
		FileName: input.FileName,
		Size:     int64(len(data)),
	})

	return &sitecontent.UploadResult{
		SecureURL: "https://media.invalid/" + assetID,
		AssetID:   assetID,
	}, nil
}

// Destroy removes the asset. The call is recorded even when it fails.
func (h *Host) Destroy(ctx context.Context, assetID string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.destroys = append(h.destroys, assetID)
	if h.destroyErr != nil {
		return h.destroyErr
	}
	delete(h.assets, assetID)
	return nil
}

// UploadCalls returns a copy of the recorded uploads.
func (h *Host) UploadCalls() []UploadCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]UploadCall(nil), h.uploads...)
}

// DestroyCalls returns a copy of the recorded destroy calls.
func (h *Host) DestroyCalls() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.destroys...)
}

// HasAsset reports whether the asset is currently stored.
func (h *Host) HasAsset(assetID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.assets[assetID]
	return ok
}
