package handlers

import (
	"net/http"
	"time"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/services"
)

const maxUploadFiles = 20

// PhotoHandler handles photo HTTP endpoints
type PhotoHandler struct {
	service *services.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler
func NewPhotoHandler(service *services.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// List returns a page of photos matching the query filters
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
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

	filter, err := photoFilterFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	result, err := h.service.ListPhotos(r.Context(), perPage, page, filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Get returns a single photo by id
func (h *PhotoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	photo, err := h.service.GetPhoto(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, photo)
}

// Create registers a photo against a previously uploaded file
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePhotoRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	photo, err := h.service.CreatePhoto(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, photo)
}

// Update applies a partial update to a photo
func (h *PhotoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.UpdatePhotoRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	photo, err := h.service.UpdatePhoto(r.Context(), id, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, photo)
}

// Delete deletes a photo, nulls covers pointing at it and removes its file
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, err)
		return
	}

	photo, err := h.service.DeletePhoto(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, photo)
}

// Upload accepts a multipart batch of image files and returns their stored
// paths. Files land in the upload directory only; no photo rows are created.
func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		respondError(w, models.ValidationError{Message: "invalid multipart form"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		respondError(w, models.ValidationError{Message: "no files provided"})
		return
	}
	if len(headers) > maxUploadFiles {
		respondError(w, models.ValidationError{Message: "too many files in one request"})
		return
	}

	files := make([]services.UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			respondError(w, models.ValidationError{Message: "unreadable file in request"})
			return
		}
		defer file.Close()
		files = append(files, services.UploadedFile{
			Reader:   file,
			Filename: header.Filename,
			Size:     header.Size,
		})
	}

	urls, err := h.service.StorePhotos(files)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, models.UploadResponse{URLs: urls})
}

func photoFilterFromQuery(r *http.Request) (*models.PhotoFilter, error) {
	query := r.URL.Query()
	filter := &models.PhotoFilter{}
	matched := false

	if raw := query.Get("receivedAt"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, models.ErrPhotoInvalidReceivedAt
		}
		filter.ReceivedAt = &t
		matched = true
	}

	for name, field := range map[string]**string{
		"officialID":  &filter.OfficialID,
		"fromGroup":   &filter.FromGroup,
		"fromPerson":  &filter.FromPerson,
		"description": &filter.Description,
	} {
		if raw := query.Get(name); raw != "" {
			value := raw
			*field = &value
			matched = true
		}
	}

	if !matched {
		return nil, nil
	}
	return filter, nil
}
