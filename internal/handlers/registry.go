package handlers

import (
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	Auth         *AuthHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Candidates   *CandidateHandler
	Employers    *EmployerHandler
	Uploads      *UploadHandler
	Admin        *AdminHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator, limits UploadLimits) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:         NewAuthHandler(base, svc.Auth),
		Jobs:         NewJobHandler(base, svc.Jobs),
		Applications: NewApplicationHandler(base, svc.Applications, limits),
		Candidates:   NewCandidateHandler(base, svc.Candidates),
		Employers:    NewEmployerHandler(base, svc.Employers),
		Uploads:      NewUploadHandler(base, svc.Candidates, limits),
		Admin:        NewAdminHandler(base, svc.Jobs),
	}
}
