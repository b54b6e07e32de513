package email

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail over SMTP via gomail. Transient network
// failures are retried across a short list of alternate port/TLS
// combinations; SMTP-level rejections (auth, malformed message) abort
// immediately.
type SMTPProvider struct {
	config Config
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	// Gmail app passwords are shown in grouped format; normalize
	// accidental spaces.
	if strings.Contains(config.SMTPHost, "gmail.com") {
		config.Password = strings.ReplaceAll(config.Password, " ", "")
	}

	return &SMTPProvider{config: config}, nil
}

func (p *SMTPProvider) SendWelcome(to, name string, role models.UserRole) error {
	subject, html, text, err := renderWelcome(p.config, name, role)
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}
	return p.send(to, subject, html, text)
}

func (p *SMTPProvider) SendApplicationStatus(to, name, jobTitle string, status models.ApplicationStatus) error {
	subject, html, text, err := renderApplicationStatus(p.config, name, jobTitle, status)
	if err != nil {
		return fmt.Errorf("failed to render status email: %w", err)
	}
	return p.send(to, subject, html, text)
}

// endpoint is one host/port/TLS combination to attempt.
type endpoint struct {
	Host string
	Port int
	SSL  bool
}

// dialEndpoints returns the configured endpoint first, then the common
// submission fallbacks (587 STARTTLS, 465 implicit TLS), deduplicated.
func dialEndpoints(cfg Config) []endpoint {
	candidates := []endpoint{
		{Host: cfg.SMTPHost, Port: cfg.SMTPPort, SSL: cfg.UseSSL},
		{Host: cfg.SMTPHost, Port: 587, SSL: false},
		{Host: cfg.SMTPHost, Port: 465, SSL: true},
	}

	seen := make(map[endpoint]bool, len(candidates))
	out := candidates[:0]
	for _, ep := range candidates {
		if !seen[ep] {
			seen[ep] = true
			out = append(out, ep)
		}
	}
	return out
}

func (p *SMTPProvider) send(to, subject, htmlBody, textBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	var lastErr error
	for _, ep := range dialEndpoints(p.config) {
		d := gomail.NewDialer(ep.Host, ep.Port, p.config.Username, p.config.Password)
		d.SSL = ep.SSL

		err := d.DialAndSend(m)
		if err == nil {
			return nil
		}
		lastErr = err

		if !isTransient(err) {
			// auth failures, protocol errors: alternate ports won't help
			return err
		}

		logger.Warn("SMTP endpoint unreachable, trying next",
			"host", ep.Host, "port", ep.Port, "ssl", ep.SSL, "error", err.Error())
	}

	return lastErr
}

// isTransient reports whether the failure looks like a network problem
// (timeout, refused, reset, unreachable, DNS) rather than an SMTP
// rejection.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	switch {
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, syscall.ETIMEDOUT):
		return true
	}

	return false
}
