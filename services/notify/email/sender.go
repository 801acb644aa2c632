// Package email delivers transactional notifications over SMTP. When
// SMTP is disabled in configuration the sender logs instead of
// delivering, which keeps local environments quiet.
package email

import (
	"fmt"
	"net/smtp"

	"github.com/caronalabs/carona/internal/pkg/logger"
	"github.com/caronalabs/carona/internal/pkg/models"
)

// Sender defines the interface for outbound notification email
//
//go:generate mockgen -destination=mocks/mock_sender.go -package=mocks github.com/caronalabs/carona/services/notify/email Sender
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends email through a plain SMTP relay
type SMTPSender struct {
	cfg models.SMTPConfig
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg models.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers one email to one recipient
func (s *SMTPSender) Send(to, subject, body string) error {
	if !s.cfg.Enabled {
		logger.Info("Email delivery disabled, skipping",
			logger.String("to", to),
			logger.String("subject", subject))
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		s.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
