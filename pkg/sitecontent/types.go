package sitecontent

import "encoding/json"

// ResourceKind is the kind of binary asset sent to the media host.
type ResourceKind string

// Resource kind constants (typed).
const (
	ResourceImage ResourceKind = "image"
	ResourceVideo ResourceKind = "video"
)

// slotKeys is the canonical set of named image slots, in display order.
var slotKeys = []string{
	"servicio_1",
	"servicio_2",
	"servicio_3",
	"servicio_4",
	"about_img",
	"team_group",
	"staff_1",
	"staff_2",
	"staff_3",
	"staff_4",
	"staff_5",
	"staff_6",
}

// galleryCategories is the fixed enumeration of gallery categories.
var galleryCategories = []string{
	"damas",
	"caballeros",
	"ninos",
	"manicura",
	"pedicura",
}

// SlotKeys returns the canonical slot key set, in display order.
func SlotKeys() []string {
	keys := make([]string, len(slotKeys))
	copy(keys, slotKeys)
	return keys
}

// GalleryCategories returns the fixed gallery category enumeration.
func GalleryCategories() []string {
	cats := make([]string, len(galleryCategories))
	copy(cats, galleryCategories)
	return cats
}

// ValidSlotKey reports whether key is a member of the canonical slot key set.
func ValidSlotKey(key string) bool {
	for _, k := range slotKeys {
		if k == key {
			return true
		}
	}
	return false
}

// ValidCategory reports whether category is a member of the fixed enumeration.
func ValidCategory(category string) bool {
	for _, c := range galleryCategories {
		if c == category {
			return true
		}
	}
	return false
}

// GalleryItem is one categorized photo in the gallery. Items are immutable
// once created; the AssetID is the media-host identifier used for deletion
// and is always recorded explicitly at upload time.
type GalleryItem struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	AssetID  string `json:"assetId"`
	Category string `json:"category"`
}

// ContentDocument is the sole persisted entity: the full editable site
// content, stored as one JSON object.
//
// Unknown top-level keys found in a stored document are retained in an
// unexported map and written back on marshal, so schema growth never loses
// data written by a newer version.
type ContentDocument struct {
	HeroVideo *string            `json:"heroVideo"`
	Slots     map[string]*string `json:"slots"`
	Gallery   []GalleryItem      `json:"gallery"`

	extra map[string]json.RawMessage
}

// DefaultDocument returns the built-in default document: no hero video, all
// canonical slots present with null values, empty gallery.
func DefaultDocument() *ContentDocument {
	slots := make(map[string]*string, len(slotKeys))
	for _, k := range slotKeys {
		slots[k] = nil
	}
	return &ContentDocument{
		Slots:   slots,
		Gallery: []GalleryItem{},
	}
}

// Normalize backfills the document so every canonical slot key is present
// and the gallery is a non-nil sequence. It is additive only: values already
// present and unknown keys are never touched.
func (d *ContentDocument) Normalize() {
	if d.Slots == nil {
		d.Slots = make(map[string]*string, len(slotKeys))
	}
	for _, k := range slotKeys {
		if _, ok := d.Slots[k]; !ok {
			d.Slots[k] = nil
		}
	}
	if d.Gallery == nil {
		d.Gallery = []GalleryItem{}
	}
}

// Clone returns a deep copy of the document.
func (d *ContentDocument) Clone() *ContentDocument {
	c := &ContentDocument{}
	if d.HeroVideo != nil {
		v := *d.HeroVideo
		c.HeroVideo = &v
	}
	if d.Slots != nil {
		c.Slots = make(map[string]*string, len(d.Slots))
		for k, v := range d.Slots {
			if v == nil {
				c.Slots[k] = nil
				continue
			}
			u := *v
			c.Slots[k] = &u
		}
	}
	if d.Gallery != nil {
		c.Gallery = make([]GalleryItem, len(d.Gallery))
		copy(c.Gallery, d.Gallery)
	}
	if d.extra != nil {
		c.extra = make(map[string]json.RawMessage, len(d.extra))
		for k, v := range d.extra {
			c.extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return c
}

// FindGalleryItem returns the gallery item with the given id, if present.
func (d *ContentDocument) FindGalleryItem(id string) (GalleryItem, bool) {
	for _, item := range d.Gallery {
		if item.ID == id {
			return item, true
		}
	}
	return GalleryItem{}, false
}

// contentDocumentJSON mirrors the known document fields for (un)marshalling.
type contentDocumentJSON struct {
	HeroVideo *string            `json:"heroVideo"`
	Slots     map[string]*string `json:"slots"`
	Gallery   []GalleryItem      `json:"gallery"`
}

// knownDocumentKeys are the top-level keys owned by this schema version.
var knownDocumentKeys = map[string]struct{}{
	"heroVideo": {},
	"slots":     {},
	"gallery":   {},
}

// UnmarshalJSON decodes the known fields and stashes any unknown top-level
// keys so they survive a save.
func (d *ContentDocument) UnmarshalJSON(data []byte) error {
	var known contentDocumentJSON
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.HeroVideo = known.HeroVideo
	d.Slots = known.Slots
	d.Gallery = known.Gallery
	d.extra = nil
	for k, v := range raw {
		if _, ok := knownDocumentKeys[k]; ok {
			continue
		}
		if d.extra == nil {
			d.extra = make(map[string]json.RawMessage)
		}
		d.extra[k] = v
	}
	return nil
}

// MarshalJSON emits the known fields plus any retained unknown keys.
func (d *ContentDocument) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, 3+len(d.extra))

	hero, err := json.Marshal(d.HeroVideo)
	if err != nil {
		return nil, err
	}
	out["heroVideo"] = hero

	slots, err := json.Marshal(d.Slots)
	if err != nil {
		return nil, err
	}
	out["slots"] = slots

	gallery := d.Gallery
	if gallery == nil {
		gallery = []GalleryItem{}
	}
	gal, err := json.Marshal(gallery)
	if err != nil {
		return nil, err
	}
	out["gallery"] = gal

	for k, v := range d.extra {
		out[k] = v
	}
	return json.Marshal(out)
}
