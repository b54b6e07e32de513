package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"jobportal_backend/internal/services"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UploadLimits is the per-request file policy, taken from config at
// startup.
type UploadLimits struct {
	MaxSize      int64
	AllowedTypes []string
}

// openFormFile pulls one file out of a multipart form and enforces the
// upload policy. A missing file is not an error: it returns (nil, nil,
// nil) so callers can treat the field as optional.
func openFormFile(c *gin.Context, field string, limits UploadLimits) (*services.UploadedFile, multipart.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil, nil
	}

	if limits.MaxSize > 0 && header.Size > limits.MaxSize {
		return nil, nil, apperrors.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !typeAllowed(contentType, header.Filename, limits.AllowedTypes) {
		return nil, nil, apperrors.ErrOnlyPDFAllowed
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, apperrors.NewBadRequestError("Could not read uploaded file")
	}

	return &services.UploadedFile{
		Reader:      file,
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
	}, file, nil
}

// typeAllowed accepts a declared MIME type from the allow-list, or
// falls back to the file extension when the client sent none.
func typeAllowed(contentType, fileName string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	if contentType != "" {
		base := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
		for _, t := range allowed {
			if base == strings.ToLower(t) {
				return true
			}
		}
		return false
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, t := range allowed {
		if t == "application/pdf" && ext == ".pdf" {
			return true
		}
	}
	return false
}
