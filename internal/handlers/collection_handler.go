package handlers

import (
	"net/http"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/services"
)

// CollectionHandler handles collection HTTP endpoints
type CollectionHandler struct {
	service *services.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(service *services.CollectionService) *CollectionHandler {
	return &CollectionHandler{service: service}
}

// List returns all collections
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	collections, err := h.service.ListCollections(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, collections)
}

// Get returns a single collection by id
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	collection, err := h.service.GetCollection(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, collection)
}

// Create creates a collection
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCollectionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	collection, err := h.service.CreateCollection(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, collection)
}

// Update renames a collection
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.UpdateCollectionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	collection, err := h.service.UpdateCollection(r.Context(), id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, collection)
}

// Delete deletes a collection and everything it cascades to
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	collection, err := h.service.DeleteCollection(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, collection)
}
