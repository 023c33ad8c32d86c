package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/photoalbum/server/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps the error taxonomy onto HTTP statuses: validation 400,
// not found 404, conflict 409, everything else 500.
func respondError(w http.ResponseWriter, err error) {
	var notFound models.NotFoundError
	var validation models.ValidationError
	var conflict models.ConflictError

	switch {
	case errors.As(err, &notFound):
		respondJSON(w, http.StatusNotFound, models.ErrorResponse{Error: notFound.Message})
	case errors.As(err, &validation):
		respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: validation.Message})
	case errors.As(err, &conflict):
		respondJSON(w, http.StatusConflict, models.ErrorResponse{Error: conflict.Message})
	default:
		respondJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
	}
}

// idParam parses the {id} URL parameter as a positive integer
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, models.ValidationError{Message: "id must be a positive integer"}
	}
	return id, nil
}

// queryInt parses an optional non-negative integer query parameter,
// returning 0 when absent
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, models.ValidationError{Message: name + " must be a non-negative integer"}
	}
	return value, nil
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.ValidationError{Message: "invalid request body"}
	}
	return nil
}
