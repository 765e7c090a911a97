package api

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/secretspot/site-content/pkg/sitecontent"
)

// DefaultMaxUploadBytes caps multipart bodies when no limit is configured.
const DefaultMaxUploadBytes = 50 << 20 // 50 MiB

// ContentHandler handles the site-content API endpoints
type ContentHandler struct {
	service        sitecontent.Service
	adminToken     string
	maxUploadBytes int64
}

// NewContentHandler creates a handler serving the given service. Mutating
// routes require the admin bearer token.
func NewContentHandler(service sitecontent.Service, adminToken string, maxUploadBytes int64) *ContentHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &ContentHandler{
		service:        service,
		adminToken:     adminToken,
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the router for content endpoints
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/content", h.GetContent)
	r.Get("/gallery", h.ListGallery)

	r.Group(func(r chi.Router) {
		r.Use(RequireToken(h.adminToken))
		r.Use(RequestSizeLimit(h.maxUploadBytes))
		r.Post("/hero-video", h.UploadHeroVideo)
		r.Post("/slot-image", h.UploadSlotImage)
		r.Post("/gallery", h.UploadGalleryImage)
		r.Delete("/gallery/{id}", h.DeleteGalleryItem)
	})

	return r
}

// HeroVideoResponse is returned after replacing the hero video
type HeroVideoResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// SlotImageResponse is returned after replacing a slot image
type SlotImageResponse struct {
	SlotKey string `json:"slot_key"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// GalleryItemResponse is returned after appending a gallery item
type GalleryItemResponse struct {
	Item    sitecontent.GalleryItem `json:"item"`
	Message string                  `json:"message"`
}

// DeleteResponse is returned after removing a gallery item
type DeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// GetContent returns the full editable content document
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetContent(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, doc)
}

// ListGallery returns the gallery items in display order
func (h *ContentHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListGallery(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if items == nil {
		items = []sitecontent.GalleryItem{}
	}
	render.JSON(w, r, items)
}

// UploadHeroVideo replaces the hero video
func (h *ContentHandler) UploadHeroVideo(w http.ResponseWriter, r *http.Request) {
	file, header, err := h.formFile(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	defer file.Close()

	result, err := h.service.SetHeroVideo(r.Context(), sitecontent.SetHeroVideoRequest{
		FileName: header.Filename,
		File:     file,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	slog.Info("hero video replaced", "url", result.URL)
	render.JSON(w, r, HeroVideoResponse{URL: result.URL, Message: "Hero video updated"})
}

// UploadSlotImage replaces the image of one named slot
func (h *ContentHandler) UploadSlotImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := h.formFile(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	defer file.Close()

	slotKey := r.FormValue("slot_key")
	result, err := h.service.SetSlotImage(r.Context(), sitecontent.SetSlotImageRequest{
		SlotKey:  slotKey,
		FileName: header.Filename,
		File:     file,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	slog.Info("slot image replaced", "slot_key", result.SlotKey, "url", result.URL)
	render.JSON(w, r, SlotImageResponse{SlotKey: result.SlotKey, URL: result.URL, Message: "Slot image updated"})
}

// UploadGalleryImage appends a categorized photo to the gallery
func (h *ContentHandler) UploadGalleryImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := h.formFile(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	defer file.Close()

	category := r.FormValue("category")
	item, err := h.service.AddGalleryItem(r.Context(), sitecontent.AddGalleryItemRequest{
		Category: category,
		FileName: header.Filename,
		File:     file,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	slog.Info("gallery item added", "id", item.ID, "category", item.Category)
	render.JSON(w, r, GalleryItemResponse{Item: *item, Message: "Image added to gallery"})
}

// DeleteGalleryItem removes one gallery item by id
func (h *ContentHandler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteGalleryItem(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	slog.Info("gallery item deleted", "id", id)
	render.JSON(w, r, DeleteResponse{Message: "Image deleted", ID: id})
}

// formFile extracts the uploaded file from the multipart body.
func (h *ContentHandler) formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return nil, nil, sitecontent.ErrNoFile
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, sitecontent.ErrNoFile
	}
	return file, header, nil
}

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// renderError maps service errors onto the HTTP error taxonomy.
func (h *ContentHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, sitecontent.ErrUnknownSlot),
		errors.Is(err, sitecontent.ErrUnknownCategory),
		errors.Is(err, sitecontent.ErrNoFile):
		status, code = http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, sitecontent.ErrItemNotFound):
		status, code = http.StatusNotFound, "not_found"
	default:
		status, code = http.StatusInternalServerError, "upload_error"
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: code, Message: err.Error()})
}
