package email

import (
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"
)

// Provider sends the portal's transactional email. Delivery is
// best-effort: callers log failures and never fail the HTTP request over
// them.
type Provider interface {
	// SendWelcome greets a newly registered user.
	SendWelcome(to, name string, role models.UserRole) error

	// SendApplicationStatus notifies a candidate that an employer moved
	// their application to a new status.
	SendApplicationStatus(to, name, jobTitle string, status models.ApplicationStatus) error
}

// NoopProvider is used when SMTP is not configured; it warns and drops.
type NoopProvider struct{}

func (NoopProvider) SendWelcome(to, name string, role models.UserRole) error {
	logger.Warn("Email not sent: SMTP config missing", "kind", "welcome", "to", to)
	return nil
}

func (NoopProvider) SendApplicationStatus(to, name, jobTitle string, status models.ApplicationStatus) error {
	logger.Warn("Email not sent: SMTP config missing", "kind", "application_status", "to", to)
	return nil
}
