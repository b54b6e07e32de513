package email

import (
	"errors"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialEndpointsDeduplicates(t *testing.T) {
	eps := dialEndpoints(Config{SMTPHost: "smtp.example.com", SMTPPort: 587, UseSSL: false})

	require.Len(t, eps, 2)
	assert.Equal(t, endpoint{Host: "smtp.example.com", Port: 587, SSL: false}, eps[0])
	assert.Equal(t, endpoint{Host: "smtp.example.com", Port: 465, SSL: true}, eps[1])
}

func TestDialEndpointsConfiguredFirst(t *testing.T) {
	eps := dialEndpoints(Config{SMTPHost: "smtp.example.com", SMTPPort: 2525, UseSSL: true})

	require.Len(t, eps, 3)
	assert.Equal(t, endpoint{Host: "smtp.example.com", Port: 2525, SSL: true}, eps[0])
	assert.Equal(t, endpoint{Host: "smtp.example.com", Port: 587, SSL: false}, eps[1])
	assert.Equal(t, endpoint{Host: "smtp.example.com", Port: 465, SSL: true}, eps[2])
}

func TestIsTransient(t *testing.T) {
	transient := []error{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.EHOSTUNREACH,
		syscall.ETIMEDOUT,
		&net.DNSError{Err: "no such host", Name: "smtp.example.com"},
		&net.OpError{Op: "dial", Err: errors.New("connect failed")},
	}
	for _, err := range transient {
		assert.True(t, isTransient(err), "expected transient: %v", err)
	}

	permanent := []error{
		nil,
		errors.New("535 5.7.8 authentication failed"),
		errors.New("gomail: could not send email"),
	}
	for _, err := range permanent {
		assert.False(t, isTransient(err), "expected permanent: %v", err)
	}
}

func TestNewSMTPProviderNormalizesGmailAppPassword(t *testing.T) {
	p, err := NewSMTPProvider(Config{
		SMTPHost:  "smtp.gmail.com",
		SMTPPort:  587,
		Username:  "portal@gmail.com",
		Password:  "abcd efgh ijkl mnop",
		FromEmail: "portal@gmail.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "abcdefghijklmnop", p.config.Password)
}

func TestNewSMTPProviderRejectsInvalidConfig(t *testing.T) {
	_, err := NewSMTPProvider(Config{SMTPPort: 587})
	assert.Error(t, err)

	_, err = NewSMTPProvider(Config{SMTPHost: "smtp.example.com", SMTPPort: 99999, FromEmail: "a@b.c"})
	assert.Error(t, err)
}

func TestConfigured(t *testing.T) {
	assert.False(t, Config{}.Configured())
	assert.False(t, Config{SMTPHost: "smtp.example.com"}.Configured())
	assert.True(t, Config{SMTPHost: "smtp.example.com", Username: "u", Password: "p"}.Configured())
}
