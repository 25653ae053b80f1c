package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/allandeluna/brainstash/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

var _ Mailer = (*SMTPMailer)(nil)

type SMTPMailer struct {
	from      string
	pass      string
	host      string
	port      int
	sender    string
	templates *template.Template
}

func NewSMTPMailer(cfg *config.SMTPEnv, opts *config.Email) (*SMTPMailer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	return &SMTPMailer{
		from:      cfg.User,
		pass:      cfg.Pass,
		host:      cfg.Host,
		port:      cfg.Port,
		sender:    opts.Sender,
		templates: templates,
	}, nil
}

// SendHTML renders the named embedded template with data and sends it.
func (e *SMTPMailer) SendHTML(to []string, subject, tmplName string, data map[string]string) error {
	body, err := e.render(tmplName, data)
	if err != nil {
		return err
	}

	if err := e.send(to, subject, body, "text/html"); err != nil {
		return fmt.Errorf("sending email to %q with subject %q: %w", to, subject, err)
	}
	return nil
}

func (e *SMTPMailer) SendPlain(to []string, subject, body string) error {
	return e.send(to, subject, body, "text/plain")
}

func (e *SMTPMailer) render(tmplName string, data map[string]string) (string, error) {
	tmpl := e.templates.Lookup(tmplName + ".html")
	if tmpl == nil {
		return "", fmt.Errorf("template does not exist: %s", tmplName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute email template %q: %w", tmplName, err)
	}
	return buf.String(), nil
}

func (e *SMTPMailer) send(to []string, subject, body, contentType string) error {
	auth := smtp.PlainAuth("", e.from, e.pass, e.host)

	recipients := strings.Join(to, ", ")
	headers := "From: " + e.sender + "\r\n" +
		"To: " + recipients + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0\r\n" +
		"Content-Type: " + contentType + "; charset=\"UTF-8\"\r\n\r\n"

	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	if err := smtp.SendMail(addr, auth, e.from, to, []byte(headers+body)); err != nil {
		return fmt.Errorf("sending email from %q to %q: %w", e.from, to, err)
	}

	slog.Info("Email sent.", "subject", subject)
	return nil
}
