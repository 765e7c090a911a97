package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/secretspot/site-content/pkg/sitecontent"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Store implements sitecontent.DocumentStore using PostgreSQL. The content
// document is kept as a single jsonb row, keyed by a fixed id so exactly one
// document exists per deployment.
type Store struct {
	db DBTX
}

// New creates a new PostgreSQL document store
func New(db DBTX) *Store {
	return &Store{db: db}
}

// NewWithPool creates a new PostgreSQL document store with a connection pool
func NewWithPool(pool *pgxpool.Pool) *Store {
	return &Store{db: pool}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS site_content (
			id smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			document jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create site_content table: %w", err)
	}
	return nil
}

// Load reads the single document row. A missing row yields the default
// document; an undecodable row yields ErrDocumentCorrupt.
func (s *Store) Load(ctx context.Context) (*sitecontent.ContentDocument, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT document FROM site_content WHERE id = 1`).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return sitecontent.DefaultDocument(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc sitecontent.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", sitecontent.ErrDocumentCorrupt, err)
	}
	return &doc, nil
}

// Save rewrites the single document row in full.
func (s *Store) Save(ctx context.Context, doc *sitecontent.ContentDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO site_content (id, document, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()`,
		data)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
