package models

import (
	"regexp"
	"time"
)

var officialIDPattern = regexp.MustCompile(`^[A-Za-z]{2}-[0-9]+$`)

// Photo is an archived photograph. Path is the file location relative to the
// upload root and stays null until an uploaded file is attached. A photo may
// appear in any number of albums through Location rows and may serve as a
// cover for any number of albums.
type Photo struct {
	ID          int64      `json:"id"`
	Path        *string    `json:"path"`
	ReceivedAt  *time.Time `json:"receivedAt"`
	OfficialID  *string    `json:"officialID"`
	FromGroup   *string    `json:"fromGroup"`
	FromPerson  *string    `json:"fromPerson"`
	Description *string    `json:"description"`
	UploadedAt  time.Time  `json:"uploadedAt"`
}

// CreatePhotoRequest is the body for registering a photo against an
// uploaded file
type CreatePhotoRequest struct {
	Path        string  `json:"path"`
	ReceivedAt  *string `json:"receivedAt"`
	OfficialID  *string `json:"officialID"`
	FromGroup   *string `json:"fromGroup"`
	FromPerson  *string `json:"fromPerson"`
	Description *string `json:"description"`
}

// Validate checks the create request
func (r *CreatePhotoRequest) Validate() error {
	if r.Path == "" {
		return ErrPhotoPathRequired
	}
	if r.ReceivedAt != nil {
		if _, err := time.Parse(time.RFC3339, *r.ReceivedAt); err != nil {
			return ErrPhotoInvalidReceivedAt
		}
	}
	if r.OfficialID != nil && !officialIDPattern.MatchString(*r.OfficialID) {
		return ErrPhotoInvalidOfficialID
	}
	return nil
}

// NewPhoto builds a photo from a validated create request
func NewPhoto(req *CreatePhotoRequest) (*Photo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	photo := &Photo{
		Path:        &req.Path,
		OfficialID:  req.OfficialID,
		FromGroup:   req.FromGroup,
		FromPerson:  req.FromPerson,
		Description: req.Description,
		UploadedAt:  time.Now().UTC(),
	}

	if req.ReceivedAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ReceivedAt)
		if err != nil {
			return nil, ErrPhotoInvalidReceivedAt
		}
		photo.ReceivedAt = &t
	}

	return photo, nil
}

// UpdatePhotoRequest is the body for a partial photo update. All fields are
// tri-state except Path, which may be overwritten but never cleared: a photo
// that has a file keeps pointing at it.
type UpdatePhotoRequest struct {
	Path        Optional[string] `json:"path"`
	ReceivedAt  Optional[string] `json:"receivedAt"`
	OfficialID  Optional[string] `json:"officialID"`
	FromGroup   Optional[string] `json:"fromGroup"`
	FromPerson  Optional[string] `json:"fromPerson"`
	Description Optional[string] `json:"description"`
}

// Empty reports whether no field was supplied at all
func (r *UpdatePhotoRequest) Empty() bool {
	return !r.Path.Present && !r.ReceivedAt.Present && !r.OfficialID.Present &&
		!r.FromGroup.Present && !r.FromPerson.Present && !r.Description.Present
}

// Validate checks the update request
func (r *UpdatePhotoRequest) Validate() error {
	if r.Empty() {
		return ErrEmptyPayload
	}
	if r.Path.IsNull() {
		return ErrPhotoPathNull
	}
	if r.Path.Value != nil && *r.Path.Value == "" {
		return ErrPhotoPathRequired
	}
	if r.ReceivedAt.Value != nil {
		if _, err := time.Parse(time.RFC3339, *r.ReceivedAt.Value); err != nil {
			return ErrPhotoInvalidReceivedAt
		}
	}
	if r.OfficialID.Value != nil && !officialIDPattern.MatchString(*r.OfficialID.Value) {
		return ErrPhotoInvalidOfficialID
	}
	return nil
}

// ApplyUpdate merges the update into the photo
func (p *Photo) ApplyUpdate(req *UpdatePhotoRequest) error {
	if req.Path.Value != nil {
		p.Path = req.Path.Value
	}
	if req.ReceivedAt.Present {
		if req.ReceivedAt.Value == nil {
			p.ReceivedAt = nil
		} else {
			t, err := time.Parse(time.RFC3339, *req.ReceivedAt.Value)
			if err != nil {
				return ErrPhotoInvalidReceivedAt
			}
			p.ReceivedAt = &t
		}
	}
	p.OfficialID = Merge(p.OfficialID, req.OfficialID)
	p.FromGroup = Merge(p.FromGroup, req.FromGroup)
	p.FromPerson = Merge(p.FromPerson, req.FromPerson)
	p.Description = Merge(p.Description, req.Description)
	return nil
}

// PhotoFilter is the structured predicate for photo queries; every non-nil
// field is an equality match.
type PhotoFilter struct {
	ReceivedAt  *time.Time
	OfficialID  *string
	FromGroup   *string
	FromPerson  *string
	Description *string
}
