package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"
	"jobportal_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UploadHandler manages the candidate's stored CV collection.
type UploadHandler struct {
	BaseHandler
	candidateService services.CandidateService
	limits           UploadLimits
}

func NewUploadHandler(base BaseHandler, candidateService services.CandidateService, limits UploadLimits) *UploadHandler {
	return &UploadHandler{
		BaseHandler:      base,
		candidateService: candidateService,
		limits:           limits,
	}
}

func (h *UploadHandler) UploadCV(c *gin.Context) {
	uploaded, file, err := openFormFile(c, "cv", h.limits)
	if err != nil {
		h.Error(c, err)
		return
	}
	if file == nil {
		h.Error(c, apperrors.NewBadRequestError("CV file is required"))
		return
	}
	defer file.Close()

	profile, err := h.candidateService.UploadCV(c.Request.Context(), h.Identity(c), uploaded)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

func (h *UploadHandler) ListCVs(c *gin.Context) {
	cvs, err := h.candidateService.ListCVs(h.Identity(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cvs": cvs})
}

func (h *UploadHandler) DeleteCV(c *gin.Context) {
	if err := h.candidateService.DeleteCV(h.Identity(c), c.Param("cvId")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "CV deleted successfully"})
}
