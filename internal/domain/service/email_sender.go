package service

import "context"

// EmailSender defines the interface for sending transactional email, such as
// password reset links.
type EmailSender interface {
	// Send delivers a single message to the given address.
	Send(ctx context.Context, to, subject, body string) error
}
