package routes

import (
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Register wires every endpoint under /api plus the health probe. All
// auth gating lives here so one file shows who may call what.
func Register(r *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenService, policy *auth.Policy) {
	requireAuth := middleware.AuthMiddleware(tokens)
	optionalAuth := middleware.OptionalAuthMiddleware(tokens)
	candidateOnly := middleware.RequireRole(models.UserRoleCandidate)
	employerOnly := middleware.RequireRole(models.UserRoleEmployer)
	adminOnly := middleware.AdminMiddleware(policy)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.GET("/me", requireAuth, h.Auth.Me)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", optionalAuth, h.Jobs.List)
			jobs.GET("/mine", requireAuth, employerOnly, h.Jobs.ListMine)
			jobs.GET("/:id", h.Jobs.Get)
			jobs.POST("", requireAuth, employerOnly, h.Jobs.Create)
			jobs.PUT("/:id", requireAuth, employerOnly, h.Jobs.Update)
			jobs.DELETE("/:id", requireAuth, employerOnly, h.Jobs.Delete)

			jobs.POST("/:id/apply", requireAuth, candidateOnly, h.Applications.Apply)
			jobs.GET("/:id/applications", requireAuth, employerOnly, h.Applications.ListForJob)
		}

		applications := api.Group("/applications", requireAuth)
		{
			applications.GET("/my", candidateOnly, h.Applications.ListMine)
			applications.PATCH("/:id/status", employerOnly, h.Applications.UpdateStatus)
			applications.DELETE("/:id", candidateOnly, h.Applications.Delete)
		}

		candidate := api.Group("/candidate", requireAuth, candidateOnly)
		{
			candidate.GET("/profile", h.Candidates.GetProfile)
			candidate.PUT("/profile", h.Candidates.UpsertProfile)
		}

		uploads := api.Group("/uploads", requireAuth, candidateOnly)
		{
			uploads.POST("/cv", h.Uploads.UploadCV)
			uploads.GET("/cv", h.Uploads.ListCVs)
			uploads.DELETE("/cv/:cvId", h.Uploads.DeleteCV)
		}

		employer := api.Group("/employer", requireAuth, employerOnly)
		{
			employer.GET("/profile", h.Employers.GetProfile)
			employer.PUT("/profile", h.Employers.UpsertProfile)
		}

		admin := api.Group("/admin", requireAuth, adminOnly)
		{
			admin.GET("/jobs", h.Admin.ListJobs)
			admin.DELETE("/jobs/:id", h.Admin.DeleteJob)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
}
