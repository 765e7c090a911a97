package s3

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secretspot/site-content/pkg/sitecontent"
)

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestObjectKey(t *testing.T) {
	key := objectKey("sitecontent/gallery/damas", "My Photo.JPG")
	assert.True(t, strings.HasPrefix(key, "sitecontent/gallery/damas/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	// Each key is unique even for the same input.
	other := objectKey("sitecontent/gallery/damas", "My Photo.JPG")
	assert.NotEqual(t, key, other)

	// No extension is fine.
	bare := objectKey("sitecontent/hero", "upload")
	assert.True(t, strings.HasPrefix(bare, "sitecontent/hero/"))
	assert.False(t, strings.Contains(bare[len("sitecontent/hero/"):], "."))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", contentType("logo.png", sitecontent.ResourceImage))
	assert.Equal(t, "video/mp4", contentType("clip", sitecontent.ResourceVideo))
	assert.Equal(t, "image/jpeg", contentType("photo", sitecontent.ResourceImage))
	assert.Equal(t, "application/octet-stream", contentType("blob", sitecontent.ResourceKind("other")))
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   string
	}{
		{
			name:   "virtual-hosted AWS URL",
			config: Config{Bucket: "media", Region: "eu-west-1"},
			want:   "https://media.s3.eu-west-1.amazonaws.com/sitecontent/hero/a.mp4",
		},
		{
			name:   "custom endpoint uses path style",
			config: Config{Bucket: "media", Endpoint: "http://localhost:9000"},
			want:   "http://localhost:9000/media/sitecontent/hero/a.mp4",
		},
		{
			name:   "CDN base URL wins",
			config: Config{Bucket: "media", Endpoint: "http://localhost:9000", PublicBaseURL: "https://cdn.example.com/"},
			want:   "https://cdn.example.com/sitecontent/hero/a.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Host{config: tt.config}
			require.Equal(t, tt.want, h.publicURL("sitecontent/hero/a.mp4"))
		})
	}
}
