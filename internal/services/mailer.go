package services

import (
	"fmt"
	"strconv"

	"github.com/dkuznetsova/staff-accounts-api/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends a single transactional HTML email per call: dial the
// relay over implicit TLS, authenticate, send, disconnect. No retry
// and no pooling; transport errors return to the caller.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewMailer builds a mailer from externally supplied SMTP settings.
func NewMailer(cfg *config.Config) (*Mailer, error) {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", cfg.SMTPPort, err)
	}

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPassword)
	dialer.SSL = true

	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	return &Mailer{
		dialer:   dialer,
		from:     from,
		fromName: cfg.MailFromName,
	}, nil
}

// Send delivers one HTML message to a single recipient.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
