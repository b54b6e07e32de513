package services

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"

	"jobportal_backend/internal/models"
	"jobportal_backend/internal/storage"
	"jobportal_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadedFile is an incoming multipart file as the handler hands it
// over, already size-checked by the HTTP layer.
type UploadedFile struct {
	Reader      io.Reader
	FileName    string
	ContentType string
	Size        int64
}

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func sanitizeFileName(name string) string {
	safe := unsafeFileNameChars.ReplaceAllString(name, "_")
	if safe == "" {
		safe = "cv.pdf"
	}
	return safe
}

// cvUploader pushes CV files into object storage under a
// candidate-scoped prefix and returns the catalog entry to record.
type cvUploader struct {
	store storage.Storage
}

func newCVUploader(store storage.Storage) *cvUploader {
	return &cvUploader{store: store}
}

func (u *cvUploader) Upload(ctx context.Context, candidateID string, file *UploadedFile) (*models.CVEntry, error) {
	now := time.Now().UTC()
	path := fmt.Sprintf("cvs/%s/%d-%s", candidateID, now.Unix(), sanitizeFileName(file.FileName))

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}

	if err := u.store.Save(ctx, path, file.Reader, contentType); err != nil {
		return nil, apperrors.ErrStorageUnavailable(err)
	}

	url, err := u.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.ErrStorageUnavailable(err)
	}

	return &models.CVEntry{
		ID:         uuid.NewString(),
		URL:        url,
		FileName:   file.FileName,
		UploadedAt: now,
	}, nil
}
