package handlers

import (
	"net/http"

	"jobportal_backend/internal/services"
	"jobportal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService services.JobService
}

func NewJobHandler(base BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	jobs, err := h.jobService.List(query)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(h.Identity(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(h.Identity(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(h.Identity(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobService.ListMine(h.Identity(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
