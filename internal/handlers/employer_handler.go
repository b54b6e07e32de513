package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	BaseHandler
	employerService services.EmployerService
}

func NewEmployerHandler(base BaseHandler, employerService services.EmployerService) *EmployerHandler {
	return &EmployerHandler{BaseHandler: base, employerService: employerService}
}

func (h *EmployerHandler) GetProfile(c *gin.Context) {
	profile, err := h.employerService.GetProfile(h.Identity(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *EmployerHandler) UpsertProfile(c *gin.Context) {
	var req dto.UpsertEmployerProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.employerService.UpsertProfile(h.Identity(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
