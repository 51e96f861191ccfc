package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTP dispatches mail through an SMTP server with STARTTLS and plain
// auth, matching the usual personal-mailbox setup (Gmail app passwords
// and the like).
type SMTP struct {
	Host     string
	Port     int
	From     string
	Username string
	Password string
}

var _ Dispatcher = (*SMTP)(nil)

// NewSMTP creates an SMTP dispatcher. Username defaults to From when empty.
func NewSMTP(host string, port int, from, username, password string) *SMTP {
	if username == "" {
		username = from
	}
	return &SMTP{
		Host:     host,
		Port:     port,
		From:     from,
		Username: username,
		Password: password,
	}
}

// Send delivers one message. smtp.SendMail upgrades the connection via
// STARTTLS when the server advertises it.
func (s *SMTP) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(addr, auth, s.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
