package models

// Location records that a photo appears in an album. It has no lifecycle of
// its own: deleting either parent removes it. No two locations may share the
// same (albumId, photoId) pair.
type Location struct {
	ID      int64 `json:"id"`
	AlbumID int64 `json:"albumId"`
	PhotoID int64 `json:"photoId"`
}

// LocationRequest identifies a location by its (albumId, photoId) pair.
// Used both for creation and deletion.
type LocationRequest struct {
	AlbumID int64 `json:"albumId"`
	PhotoID int64 `json:"photoId"`
}

// Validate checks the request
func (r *LocationRequest) Validate() error {
	if r.AlbumID <= 0 || r.PhotoID <= 0 {
		return ErrLocationIDsRequired
	}
	return nil
}

// AlbumLocationsResponse lists the photos placed in an album
type AlbumLocationsResponse struct {
	AlbumID  int64   `json:"albumId"`
	PhotoIDs []int64 `json:"photoIds"`
}

// PhotoLocationsResponse lists the albums a photo is placed in
type PhotoLocationsResponse struct {
	PhotoID  int64   `json:"photoId"`
	AlbumIDs []int64 `json:"albumIds"`
}
