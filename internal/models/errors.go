package models

// NotFoundError means a referenced entity does not exist. Operations abort
// before any mutation when they hit one.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}

// ValidationError means the input was malformed. It is raised before any
// repository call is made.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ConflictError means the operation would violate a uniqueness constraint.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

var (
	ErrCollectionNotFound = NotFoundError{"collection with such id is not found"}
	ErrAlbumNotFound      = NotFoundError{"album with such id is not found"}
	ErrPhotoNotFound      = NotFoundError{"photo with such id is not found"}
	ErrLocationNotFound   = NotFoundError{"location with such id is not found"}

	ErrLocationExists = ConflictError{"location with such album and photo id has already exist"}

	ErrEmptyPayload           = ValidationError{"payload should not be empty"}
	ErrInvalidPath            = ValidationError{"file with specified path is not found"}
	ErrCollectionNameRequired = ValidationError{"collection name is required"}
	ErrAlbumNameRequired      = ValidationError{"album name is required"}
	ErrPhotoPathRequired      = ValidationError{"photo path is required"}
	ErrPhotoPathNull          = ValidationError{"photo path cannot be null"}
	ErrPhotoInvalidReceivedAt = ValidationError{"receivedAt must be a valid RFC 3339 date"}
	ErrPhotoInvalidOfficialID = ValidationError{"officialID must be two letters, a hyphen and digits"}
	ErrLocationIDsRequired    = ValidationError{"albumId and photoId are required"}

	ErrFileTooLarge     = ValidationError{"file exceeds the maximum allowed size"}
	ErrInvalidExtension = ValidationError{"file extension is not allowed"}
	ErrPathTraversal    = ValidationError{"path escapes the upload directory"}
)
