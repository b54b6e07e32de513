package auth

import (
	"strings"

	"jobportal_backend/internal/models"
)

// Policy centralizes the authorization decisions that used to be inlined
// per endpoint: the admin-email override and the ownership checks on jobs
// and applications.
type Policy struct {
	adminEmail string
}

func NewPolicy(adminEmail string) *Policy {
	return &Policy{adminEmail: strings.ToLower(strings.TrimSpace(adminEmail))}
}

// IsAdmin admits the admin role, plus the configured admin email even when
// the token role says otherwise.
func (p *Policy) IsAdmin(identity *Identity) bool {
	if identity == nil {
		return false
	}
	if identity.Role == models.UserRoleAdmin {
		return true
	}
	return p.adminEmail != "" && strings.ToLower(identity.Email) == p.adminEmail
}

// CanMutateJob allows only the owning employer to change or delete a job.
// Admin deletion goes through the admin endpoints and does not consult
// this check.
func (p *Policy) CanMutateJob(identity *Identity, job *models.Job) bool {
	if identity == nil || job == nil {
		return false
	}
	return job.EmployerID == identity.UserID
}

// CanReviewApplication allows the employer owning the parent job to read
// applicants and change application status.
func (p *Policy) CanReviewApplication(identity *Identity, job *models.Job) bool {
	return p.CanMutateJob(identity, job)
}

// CanWithdrawApplication allows only the candidate who applied to delete
// their application.
func (p *Policy) CanWithdrawApplication(identity *Identity, application *models.Application) bool {
	if identity == nil || application == nil {
		return false
	}
	return application.CandidateID == identity.UserID
}
