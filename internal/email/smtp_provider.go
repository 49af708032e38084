package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"helperbee_backend/internal/config"
	"helperbee_backend/internal/logger"
)

// SMTPProvider sends mail through an SMTP relay via gomail.
type SMTPProvider struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	d := gomail.NewDialer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
	)

	return &SMTPProvider{
		dialer:    d,
		fromEmail: cfg.Email.FromEmail,
		fromName:  cfg.Email.FromName,
	}
}

func (p *SMTPProvider) Send(ctx context.Context, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.fromEmail, p.fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		logger.CtxWithError(ctx, "failed to send email", err, "to", to, "subject", subject)
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	logger.CtxDebug(ctx, "email sent", "to", to, "subject", subject)
	return nil
}
