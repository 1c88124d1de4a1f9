// Package smtpmail implements the notification collaborator over SMTP.
package smtpmail

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/domain"
	"github.com/kevinjwwilliams/Automatic-BAY-NYC/internal/infrastructure/logger"
)

// Config holds the SMTP transport settings.
type Config struct {
	// Host is the SMTP server hostname.
	Host string

	// Port is the SMTP submission port (587 for STARTTLS).
	Port int

	// Username authenticates the sender account.
	Username string

	// Password is the account (or app) password.
	Password string
}

// Sender implements domain.Notifier over SMTP with mandatory STARTTLS.
type Sender struct {
	client *mail.Client
	log    *logger.Logger
}

// NewSender creates a Sender for the given transport settings.
func NewSender(cfg Config, log *logger.Logger) (*Sender, error) {
	if log == nil {
		log = logger.Nop()
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Sender{
		client: client,
		log:    log.WithContext("notifier", "smtp"),
	}, nil
}

// Send implements domain.Notifier. Delivery failures come back as
// *domain.DeliveryError; the caller decides how to absorb them.
func (s *Sender) Send(ctx context.Context, msg domain.NotificationMessage) error {
	m, err := buildMsg(msg)
	if err != nil {
		return domain.NewDeliveryError(err)
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return domain.NewDeliveryError(err)
	}

	s.log.Debug().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("Message delivered")
	return nil
}

// buildMsg converts a domain message into a MIME message.
func buildMsg(msg domain.NotificationMessage) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

// Ensure Sender implements domain.Notifier at compile time.
var _ domain.Notifier = (*Sender)(nil)
