package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PhotoStorageService handles the upload directory. Stored paths are always
// relative to the base path; the directory is never listed or scanned, only
// addressed by path. File removal is best-effort: the database row is the
// source of truth and a failed removal is logged and counted, never
// surfaced to the caller.
type PhotoStorageService struct {
	basePath          string
	allowedExtensions map[string]bool
	maxFileSizeBytes  int64
	cleanupFailures   metric.Int64Counter
}

// NewPhotoStorageService creates a new PhotoStorageService
func NewPhotoStorageService(basePath string, allowedExtensions []string, maxFileSizeMB int64) (*PhotoStorageService, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	// Ensure directory exists
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return nil, err
	}

	// Build extension set
	extSet := make(map[string]bool)
	if len(allowedExtensions) == 0 {
		for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif"} {
			extSet[ext] = true
		}
	} else {
		for _, ext := range allowedExtensions {
			extSet[strings.ToLower(ext)] = true
		}
	}

	meter := otel.Meter("github.com/photoalbum/server/storage")
	cleanupFailures, err := meter.Int64Counter(
		"storage.file_cleanup_failures",
		metric.WithDescription("Number of failed post-commit file removals"),
		metric.WithUnit("{files}"),
	)
	if err != nil {
		return nil, err
	}

	return &PhotoStorageService{
		basePath:          absPath,
		allowedExtensions: extSet,
		maxFileSizeBytes:  maxFileSizeMB * 1024 * 1024,
		cleanupFailures:   cleanupFailures,
	}, nil
}

// Store saves an uploaded file under a collision-resistant generated name
// and returns the relative storage path
func (s *PhotoStorageService) Store(reader io.Reader, originalFilename string, fileSize int64) (string, error) {
	if fileSize > s.maxFileSizeBytes {
		return "", models.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFilename)))
	if !s.allowedExtensions[ext] {
		return "", models.ErrInvalidExtension
	}

	filename := uuid.New().String() + ext
	fullPath := filepath.Join(s.basePath, filename)

	file, err := os.OpenFile(fullPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		os.Remove(fullPath) // Clean up on error
		return "", err
	}

	return filename, nil
}

// Exists reports whether a stored path points at an existing file
func (s *PhotoStorageService) Exists(storedPath string) bool {
	fullPath, err := s.GetFullPath(storedPath)
	if err != nil {
		return false
	}

	info, err := os.Stat(fullPath)
	return err == nil && !info.IsDir()
}

// Delete removes a file by its stored path. Best-effort: a failure is
// logged and counted, and false is returned.
func (s *PhotoStorageService) Delete(storedPath string) bool {
	if strings.TrimSpace(storedPath) == "" {
		return false
	}

	fullPath, err := s.GetFullPath(storedPath)
	if err != nil {
		s.recordFailure(storedPath, err)
		return false
	}

	if err := os.Remove(fullPath); err != nil {
		s.recordFailure(storedPath, err)
		return false
	}

	return true
}

// Cleanup removes a batch of stored files after a cascade commit
func (s *PhotoStorageService) Cleanup(paths []string) {
	for _, path := range paths {
		s.Delete(path)
	}
}

// GetFullPath resolves a stored path against the base path, rejecting
// anything that escapes the upload directory
func (s *PhotoStorageService) GetFullPath(storedPath string) (string, error) {
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(storedPath))

	cleaned := filepath.Clean(fullPath)
	if !strings.HasPrefix(cleaned, s.basePath+string(os.PathSeparator)) && cleaned != s.basePath {
		return "", models.ErrPathTraversal
	}

	return cleaned, nil
}

func (s *PhotoStorageService) recordFailure(storedPath string, err error) {
	observability.WithFields(map[string]interface{}{
		"path":  storedPath,
		"error": err.Error(),
	}).Warn("file cleanup failed")

	s.cleanupFailures.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("storage.path", storedPath)))
}
