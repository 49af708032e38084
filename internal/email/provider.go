package email

import "context"

// Provider sends transactional email.
type Provider interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
