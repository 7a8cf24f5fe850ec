// Package mailer delivers account emails over SMTP. Credentials are
// injected at construction; nothing here reads the environment.
package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer is the delivery capability the auth service depends on.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends plain-text mail through a single SMTP account.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
}

func NewSMTPMailer(host, port, username, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password}
}

// Send delivers a plain-text message. There is no timeout or retry; a
// slow server blocks the caller.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.host == "" || m.port == "" || m.username == "" || m.password == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := "From: " + m.username + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body + "\r\n"

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(addr, auth, m.username, []string{to}, []byte(msg))
}
