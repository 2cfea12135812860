// Package email implements transactional mail delivery over SMTP.
package email

import (
	"context"

	"tetatete/config"
	"tetatete/internal/domain/service"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"
)

// smtpSender is the gomail-backed implementation of service.EmailSender.
type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender is the constructor for smtpSender.
func NewSMTPSender(cfg *config.Config) (service.EmailSender, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}

	return &smtpSender{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}, nil
}

// Send delivers a single message to the given address.
func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "failed to send email")
	}

	return nil
}
