package email

import "fmt"

type Config struct {
	SMTPHost    string
	SMTPPort    int
	Username    string
	Password    string
	FromEmail   string
	FromName    string
	UseSSL      bool
	AppName     string
	FrontendURL string
}

// Configured reports whether enough is set to attempt delivery at all.
func (c Config) Configured() bool {
	return c.SMTPHost != "" && c.Username != "" && c.Password != ""
}

func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.SMTPPort)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}
