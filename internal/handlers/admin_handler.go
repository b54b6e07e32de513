package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation endpoints. Gating happens in the
// admin middleware; these handlers trust the caller is already vetted.
type AdminHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewAdminHandler(base BaseHandler, jobService services.JobService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, jobService: jobService}
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.AdminList()
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.AdminDelete(c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted by admin"})
}
