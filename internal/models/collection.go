package models

import "strings"

// Collection is a named grouping of albums. Deleting a collection cascades
// to its albums, their locations and any photos left orphaned.
type Collection struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCollectionRequest is the body for creating a collection
type CreateCollectionRequest struct {
	Name string `json:"name"`
}

// Validate checks the create request
func (r *CreateCollectionRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrCollectionNameRequired
	}
	return nil
}

// UpdateCollectionRequest is the body for updating a collection
type UpdateCollectionRequest struct {
	Name *string `json:"name"`
}

// Validate checks the update request
func (r *UpdateCollectionRequest) Validate() error {
	if r.Name == nil {
		return ErrEmptyPayload
	}
	if strings.TrimSpace(*r.Name) == "" {
		return ErrCollectionNameRequired
	}
	return nil
}

// ApplyUpdate merges the update into the collection
func (c *Collection) ApplyUpdate(req *UpdateCollectionRequest) {
	if req.Name != nil {
		c.Name = *req.Name
	}
}
