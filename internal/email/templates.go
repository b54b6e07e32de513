package email

import (
	"bytes"
	"fmt"
	"html/template"

	"jobportal_backend/internal/models"
)

type templateData struct {
	AppName  string
	AppURL   string
	UserName string
	JobTitle string
	Status   string
	Role     string
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2>Welcome to {{.AppName}}, {{.UserName}}!</h2>
  {{if eq .Role "employer"}}
  <p>Your employer account is ready. Post your first job and start reviewing applicants.</p>
  {{else}}
  <p>Your account is ready. Complete your profile, upload a CV and start applying to jobs.</p>
  {{end}}
  <p><a href="{{.AppURL}}">Open {{.AppName}}</a></p>
</div>
`))

var statusTmpl = template.Must(template.New("application_status").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px;">
  <h2>Application update</h2>
  <p>Hi {{.UserName}},</p>
  <p>Your application for <strong>{{.JobTitle}}</strong> is now <strong>{{.Status}}</strong>.</p>
  <p><a href="{{.AppURL}}/applications">View your applications</a></p>
</div>
`))

func renderWelcome(cfg Config, name string, role models.UserRole) (subject, html, text string, err error) {
	data := templateData{
		AppName:  cfg.AppName,
		AppURL:   cfg.FrontendURL,
		UserName: name,
		Role:     string(role),
	}

	var buf bytes.Buffer
	if err = welcomeTmpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}

	subject = fmt.Sprintf("Welcome to %s", cfg.AppName)
	text = fmt.Sprintf("Welcome to %s, %s! Visit %s to get started.", cfg.AppName, name, cfg.FrontendURL)
	return subject, buf.String(), text, nil
}

func renderApplicationStatus(cfg Config, name, jobTitle string, status models.ApplicationStatus) (subject, html, text string, err error) {
	data := templateData{
		AppName:  cfg.AppName,
		AppURL:   cfg.FrontendURL,
		UserName: name,
		JobTitle: jobTitle,
		Status:   string(status),
	}

	var buf bytes.Buffer
	if err = statusTmpl.Execute(&buf, data); err != nil {
		return "", "", "", err
	}

	subject = fmt.Sprintf("Your application for %s is %s", jobTitle, status)
	text = fmt.Sprintf("Hi %s, your application for %s is now %s.", name, jobTitle, status)
	return subject, buf.String(), text, nil
}
