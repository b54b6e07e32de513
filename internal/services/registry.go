package services

import (
	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/email"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/storage"
)

// ServiceContainer bundles every service for the handler layer.
type ServiceContainer struct {
	Auth         AuthService
	Jobs         JobService
	Applications ApplicationService
	Candidates   CandidateService
	Employers    EmployerService
}

type ContainerDeps struct {
	Users             repositories.UserRepository
	Jobs              repositories.JobRepository
	Applications      repositories.ApplicationRepository
	CandidateProfiles repositories.CandidateProfileRepository
	EmployerProfiles  repositories.EmployerProfileRepository

	Tokens        *auth.TokenService
	Policy        *auth.Policy
	Storage       storage.Storage
	EmailProvider email.Provider
	AdminEmail    string
}

func NewServiceContainer(deps ContainerDeps) *ServiceContainer {
	uploader := newCVUploader(deps.Storage)
	return &ServiceContainer{
		Auth: NewAuthService(deps.Users, deps.Tokens, deps.EmailProvider, deps.AdminEmail),
		Jobs: NewJobService(deps.Jobs, deps.Policy),
		Applications: NewApplicationService(
			deps.Applications,
			deps.Jobs,
			deps.CandidateProfiles,
			deps.Users,
			uploader,
			deps.Policy,
			deps.EmailProvider,
		),
		Candidates: NewCandidateService(deps.CandidateProfiles, uploader),
		Employers:  NewEmployerService(deps.EmployerProfiles),
	}
}
