package models

import "strings"

// Album is a named container of photos, optionally grouped under a
// collection and optionally carrying a cover photo. The cover is a weak
// reference: it never implies ownership and is nulled when the photo goes
// away. Photos are placed into albums through Location rows.
type Album struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CoverID      *int64 `json:"coverId"`
	CollectionID *int64 `json:"collectionId"`
}

// CreateAlbumRequest is the body for creating an album
type CreateAlbumRequest struct {
	Name         string `json:"name"`
	CoverID      *int64 `json:"coverId"`
	CollectionID *int64 `json:"collectionId"`
}

// Validate checks the create request
func (r *CreateAlbumRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrAlbumNameRequired
	}
	return nil
}

// UpdateAlbumRequest is the body for a partial album update. CoverID and
// CollectionID are tri-state: absent retains, null clears, value overwrites.
// Name may be overwritten but never cleared: an album always has a name.
type UpdateAlbumRequest struct {
	Name         Optional[string] `json:"name"`
	CoverID      Optional[int64]  `json:"coverId"`
	CollectionID Optional[int64]  `json:"collectionId"`
}

// Empty reports whether no field was supplied at all
func (r *UpdateAlbumRequest) Empty() bool {
	return !r.Name.Present && !r.CoverID.Present && !r.CollectionID.Present
}

// Validate checks the update request
func (r *UpdateAlbumRequest) Validate() error {
	if r.Empty() {
		return ErrEmptyPayload
	}
	if r.Name.IsNull() {
		return ErrAlbumNameRequired
	}
	if r.Name.Value != nil && strings.TrimSpace(*r.Name.Value) == "" {
		return ErrAlbumNameRequired
	}
	return nil
}

// ApplyUpdate merges the update into the album
func (a *Album) ApplyUpdate(req *UpdateAlbumRequest) {
	if req.Name.Value != nil {
		a.Name = *req.Name.Value
	}
	a.CoverID = Merge(a.CoverID, req.CoverID)
	a.CollectionID = Merge(a.CollectionID, req.CollectionID)
}

// AlbumFilter is the structured predicate for album queries
type AlbumFilter struct {
	CollectionID *int64
}
