package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	BaseHandler
	candidateService services.CandidateService
}

func NewCandidateHandler(base BaseHandler, candidateService services.CandidateService) *CandidateHandler {
	return &CandidateHandler{BaseHandler: base, candidateService: candidateService}
}

// GetProfile answers null for candidates who never saved a profile; the
// client treats that as "show the empty form".
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	profile, err := h.candidateService.GetProfile(h.Identity(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *CandidateHandler) UpsertProfile(c *gin.Context) {
	var req dto.UpsertCandidateProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.candidateService.UpsertProfile(h.Identity(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
