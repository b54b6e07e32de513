package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
	limits             UploadLimits
}

func NewApplicationHandler(base BaseHandler, applicationService services.ApplicationService, limits UploadLimits) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		limits:             limits,
	}
}

// Apply handles the multipart apply form: an optional message, an
// optional cv file and an optional selectedCvId. The service resolves
// which CV ends up on the application.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	input := services.ApplyInput{
		Message:      c.PostForm("message"),
		SelectedCVID: c.PostForm("selectedCvId"),
	}

	uploaded, file, err := openFormFile(c, "cv", h.limits)
	if err != nil {
		h.Error(c, err)
		return
	}
	if file != nil {
		defer file.Close()
		input.File = uploaded
	}

	application, err := h.applicationService.Apply(c.Request.Context(), h.Identity(c), c.Param("id"), &input)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": application})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applications, err := h.applicationService.ListMine(h.Identity(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	applications, err := h.applicationService.ListForJob(h.Identity(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(h.Identity(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": application})
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applicationService.DeleteMine(h.Identity(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}
