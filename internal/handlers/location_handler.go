package handlers

import (
	"net/http"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/services"
)

// LocationHandler handles album membership HTTP endpoints
type LocationHandler struct {
	service *services.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(service *services.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// ByAlbum lists the photo ids placed in an album
func (h *LocationHandler) ByAlbum(w http.ResponseWriter, r *http.Request) {
	albumID, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.service.LocationsByAlbum(r.Context(), albumID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// ByPhoto lists the album ids a photo is placed in
func (h *LocationHandler) ByPhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.service.LocationsByPhoto(r.Context(), photoID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Create places a photo into an album
func (h *LocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	location, err := h.service.CreateLocation(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, location)
}

// Delete removes a photo from an album
func (h *LocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.LocationRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	location, err := h.service.DeleteLocation(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, location)
}
