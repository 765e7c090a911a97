// Package sitecontent manages the editable content of a small business
// website: a hero video URL, a fixed set of named image slots, and a
// categorized photo gallery.
//
// It exposes a single Service interface that mediates all reads and writes
// of the content document and delegates binary asset persistence to an
// external media host behind a two-call upload/destroy contract.
// Implementations of document stores (memory, filesystem, Postgres) and
// media hosts (memory, S3-compatible) are provided under subpackages.
//
// The document is read in full and rewritten in full on every mutation.
// Every load backfills missing slot keys with null defaults and preserves
// any unknown keys found in the stored document.
package sitecontent
