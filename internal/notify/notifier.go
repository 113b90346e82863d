// Package notify delivers best-effort email notifications for new contact
// submissions. Delivery failures are the caller's to log and ignore; a broken
// mail relay must never fail a submission.
package notify

import (
	"context"
	"fmt"

	"github.com/brightsite/backend/internal/model"
	"github.com/wneessen/go-mail"
)

// Notifier sends a notification for a freshly stored submission.
type Notifier interface {
	Send(ctx context.Context, sub *model.Submission) error
}

// SMTPConfig carries the relay settings for the SMTP notifier.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is both the sender and the recipient of notification mail.
	From string
}

// SMTPNotifier delivers notifications through an SMTP relay.
type SMTPNotifier struct {
	client *mail.Client
	from   string
}

var _ Notifier = (*SMTPNotifier)(nil)

// NewSMTPNotifier creates an SMTP-backed Notifier.
func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &SMTPNotifier{client: client, from: from}, nil
}

// Send mails the submission fields to the configured address.
func (n *SMTPNotifier) Send(ctx context.Context, sub *model.Submission) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(n.from); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(Subject(sub))
	msg.SetBodyString(mail.TypeTextPlain, Body(sub))

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Subject builds the notification subject line for a submission.
func Subject(sub *model.Submission) string {
	return "New contact from " + sub.Name
}

// Body builds the plain-text notification body for a submission.
func Body(sub *model.Submission) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage:\n%s",
		sub.Name, sub.Email, sub.Phone, sub.Message)
}
