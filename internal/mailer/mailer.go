package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"
)

// Mailer sends portal notification mail over SMTP. Credentials come
// from configuration, never from the source.
type Mailer struct {
	host     string
	port     string
	from     string
	password string
	log      *zerolog.Logger
}

func New(host, port, from, password string, log *zerolog.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: password,
		log:      log,
	}
}

// SendNotification mails the recipient according to the message kind.
func (m *Mailer) SendNotification(kind, name, recipientEmail string) error {
	var subject, body string
	switch kind {
	case "welcome":
		subject = "Welcome to the alumni portal"
		body = fmt.Sprintf("Hello %s!\n\nYour account has been created. You can now log in and complete your alumni registration.", name)
	case "registration":
		subject = "Alumni registration received"
		body = fmt.Sprintf("Hello %s!\n\nWe have received your alumni registration. Thank you for staying in touch with your school.", name)
	default:
		return fmt.Errorf("unknown notification kind %q", kind)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.from, recipientEmail, subject, body,
	)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{recipientEmail}, []byte(msg)); err != nil {
		m.log.Warn().Msgf("failed to send email to %s: %v", recipientEmail, err)
		return fmt.Errorf("send email: %w", err)
	}

	m.log.Info().Msgf("email sent to %s (kind: %s)", recipientEmail, kind)
	return nil
}
