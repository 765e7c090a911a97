package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretspot/site-content/pkg/sitecontent"
)

func newTestStore(t *testing.T) (sitecontent.DocumentStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.json")
	store, err := New(Config{Path: path})
	require.NoError(t, err)
	return store, path
}

func TestNewRequiresPath(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	store, path := newTestStore(t)

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc.HeroVideo)
	assert.Len(t, doc.Slots, len(sitecontent.SlotKeys()))

	// Loading never creates the file.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	url := "https://cdn.example.com/hero.mp4"
	doc := sitecontent.DefaultDocument()
	doc.HeroVideo = &url
	doc.Gallery = append(doc.Gallery, sitecontent.GalleryItem{
		ID:       "item-1",
		URL:      "https://cdn.example.com/g1.jpg",
		AssetID:  "gallery/damas/g1",
		Category: "damas",
	})

	require.NoError(t, store.Save(ctx, doc))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded.HeroVideo)
	assert.Equal(t, url, *loaded.HeroVideo)
	require.Len(t, loaded.Gallery, 1)
	assert.Equal(t, doc.Gallery[0], loaded.Gallery[0])
}

func TestSaveWritesPrettyJSON(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), sitecontent.DefaultDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "{\n"))
	assert.Contains(t, string(data), "\n  \"slots\"")
	assert.True(t, json.Valid(data))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), sitecontent.DefaultDocument()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestLoadCorruptFile(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, sitecontent.ErrDocumentCorrupt)
}

func TestUnknownKeysSurviveRewrite(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	stored := `{"heroVideo": null, "slots": {}, "gallery": [], "extraSection": "keep me"}`
	require.NoError(t, os.WriteFile(path, []byte(stored), 0644))

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	doc.Normalize()
	require.NoError(t, store.Save(ctx, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"extraSection"`)
	assert.Contains(t, string(data), `"keep me"`)
}
