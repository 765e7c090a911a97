package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/secretspot/site-content/pkg/sitecontent"
)

// Store is a filesystem implementation of the sitecontent.DocumentStore
// interface. The document lives in one pretty-printed UTF-8 JSON file.
type Store struct {
	mu   sync.RWMutex
	path string
}

// Config options for the filesystem store
type Config struct {
	Path string // Path of the content JSON file
}

// New creates a new filesystem document store
func New(config Config) (sitecontent.DocumentStore, error) {
	if config.Path == "" {
		return nil, errors.New("content file path is required")
	}

	dir := filepath.Dir(config.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create content directory: %w", err)
	}

	return &Store{path: config.Path}, nil
}

// Load reads the document file. A missing file yields the default document;
// unreadable or invalid JSON yields ErrDocumentCorrupt.
func (s *Store) Load(ctx context.Context) (*sitecontent.ContentDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return sitecontent.DefaultDocument(), nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", sitecontent.ErrDocumentCorrupt, err)
	}

	var doc sitecontent.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", sitecontent.ErrDocumentCorrupt, err)
	}
	return &doc, nil
}

// Save rewrites the document file in full. The write goes through a temp
// file and a rename so readers never observe a partial document.
func (s *Store) Save(ctx context.Context, doc *sitecontent.ContentDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".content-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document file: %w", err)
	}
	return nil
}
