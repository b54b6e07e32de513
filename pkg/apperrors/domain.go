package apperrors

import (
	"net/http"
)

// Predefined errors for the frequent, static cases. Anything dynamic goes
// through the factories in errors.go.

// --- Auth ---

var ErrEmailAlreadyRegistered = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusBadRequest, // the registration form treats this as input error
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"auth",
	"Role must be candidate or employer",
	http.StatusBadRequest,
)

// --- Jobs ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrJobForbidden = New(
	CodeForbidden,
	"job",
	"Forbidden",
	http.StatusForbidden,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"Already applied to this job",
	http.StatusConflict,
)

var ErrCVRequired = New(
	CodeValidationFailed,
	"application",
	"CV is required to apply",
	http.StatusBadRequest,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid status",
	http.StatusBadRequest,
)

// --- Profiles & CVs ---

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Profile not found",
	http.StatusNotFound,
)

var ErrNoCVsFound = New(
	CodeNotFound,
	"profile",
	"No CVs found",
	http.StatusNotFound,
)

var ErrUnknownCV = New(
	CodeValidationFailed,
	"application",
	"Selected CV not found",
	http.StatusBadRequest,
)

// --- Uploads ---

var ErrOnlyPDFAllowed = New(
	CodeValidationFailed,
	"upload",
	"Only PDF files are allowed",
	http.StatusBadRequest,
)

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusBadRequest,
)

// ErrStorageUnavailable wraps an object storage failure. Uploads are not
// retried; the client is expected to retry the whole request.
func ErrStorageUnavailable(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "storage", "File storage unavailable", http.StatusBadGateway)
}
