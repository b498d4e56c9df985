package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Sender delivers a plain-text message.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// Mailer sends mail through an SMTP server using go-mail.
type Mailer struct {
	cfg Config
}

// New creates a Mailer from the configuration.
func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send builds and delivers a plain-text message to the configured recipient.
// It is a no-op when the mailer is not fully configured.
func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	if !m.cfg.Enabled() {
		return nil
	}

	msg := mail.NewMsg()
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}
	if err := msg.From(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(m.cfg.Port),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}
	defer client.Close()

	timeout := m.cfg.DialTimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	dialCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	if err := client.DialAndSendWithContext(dialCtx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
