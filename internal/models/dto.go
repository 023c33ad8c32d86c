package models

import "time"

// AlbumListResponse is returned when listing albums
type AlbumListResponse struct {
	Data       []*Album `json:"data"`
	TotalCount int      `json:"totalCount"`
}

// PhotoListResponse is returned when listing photos
type PhotoListResponse struct {
	Data       []*Photo `json:"data"`
	TotalCount int      `json:"totalCount"`
}

// UploadResponse is returned after a file upload
type UploadResponse struct {
	URLs []string `json:"urls"`
}

// HealthResponse is returned by health check
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is returned on errors
type ErrorResponse struct {
	Error string `json:"error"`
}
