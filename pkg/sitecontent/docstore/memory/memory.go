package memory

import (
	"context"
	"sync"

	"github.com/secretspot/site-content/pkg/sitecontent"
)

// Store is an in-memory implementation of the sitecontent.DocumentStore
// interface, used in tests and for local development.
type Store struct {
	mu  sync.RWMutex
	doc *sitecontent.ContentDocument
}

// New creates a new in-memory document store
func New() *Store {
	return &Store{}
}

// Load returns a deep copy of the stored document, or the default document
// when nothing has been saved yet.
func (s *Store) Load(ctx context.Context) (*sitecontent.ContentDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc == nil {
		return sitecontent.DefaultDocument(), nil
	}
	return s.doc.Clone(), nil
}

// Save stores a deep copy of the document.
func (s *Store) Save(ctx context.Context, doc *sitecontent.ContentDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc.Clone()
	return nil
}
