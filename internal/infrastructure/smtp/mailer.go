package smtp

import (
	"fmt"
	"net/smtp"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/config"
)

// Mailer sends emails.
type Mailer interface {
	SendEmail(to, subject, body string) error
	SendHTML(to, subject, htmlBody string) error
}

type mailer struct {
	host     string
	port     string
	from     string
	fromName string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		fromName: cfg.SMTPFromName,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf("From: %q <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.fromName, m.from, to, subject, body)
	return m.send(to, msg)
}

func (m *mailer) SendHTML(to, subject, htmlBody string) error {
	msg := fmt.Sprintf("From: %q <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.fromName, m.from, to, subject, htmlBody)
	return m.send(to, msg)
}

func (m *mailer) send(to, msg string) error {
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
