package handlers

import (
	"net/http"
	"strconv"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/services"
)

// AlbumHandler handles album HTTP endpoints
type AlbumHandler struct {
	service *services.AlbumService
}

// NewAlbumHandler creates a new AlbumHandler
func NewAlbumHandler(service *services.AlbumService) *AlbumHandler {
	return &AlbumHandler{service: service}
}

// List returns a page of albums, optionally restricted to one collection
func (h *AlbumHandler) List(w http.ResponseWriter, r *http.Request) {
	perPage, err := queryInt(r, "perPage")
	if err != nil {
		respondError(w, err)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		respondError(w, err)
		return
	}

	var filter *models.AlbumFilter
	if raw := r.URL.Query().Get("collectionId"); raw != "" {
		collectionID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || collectionID <= 0 {
			respondError(w, models.ValidationError{Message: "collectionId must be a positive integer"})
			return
		}
		filter = &models.AlbumFilter{CollectionID: &collectionID}
	}

	result, err := h.service.ListAlbums(r.Context(), perPage, page, filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Get returns a single album by id
func (h *AlbumHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	album, err := h.service.GetAlbum(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, album)
}

// Create creates an album
func (h *AlbumHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAlbumRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	album, err := h.service.CreateAlbum(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, album)
}

// Update applies a partial update to an album
func (h *AlbumHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.UpdateAlbumRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	album, err := h.service.UpdateAlbum(r.Context(), id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, album)
}

// Delete deletes an album with its locations and orphaned photos
func (h *AlbumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	album, err := h.service.DeleteAlbum(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, album)
}
