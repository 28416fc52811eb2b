package notification

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"
)

// DefaultSMTPTimeout bounds dialing and every SMTP exchange
const DefaultSMTPTimeout = 30 * time.Second

type SMTPConfig struct {
	Host string
	Port int
	TLS  bool
	// InsecureSkipVerify disables certificate checks, for local relays only
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// SMTPSender sends mail through an SMTP relay, authenticating as the sending
// account. A client is built per call because the account comes from the
// system configuration and may change between requests.
type SMTPSender struct {
	SMTPConfig SMTPConfig
}

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	if config.Timeout <= 0 {
		config.Timeout = DefaultSMTPTimeout
	}
	return &SMTPSender{SMTPConfig: config}
}

func (s *SMTPSender) clientOptions(from Account) []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.SMTPConfig.Port),
		mail.WithTimeout(s.SMTPConfig.Timeout),
	}

	if from.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(from.Address),
			mail.WithPassword(from.Password),
		)
	}

	tlsConfig := &tls.Config{
		ServerName:         s.SMTPConfig.Host,
		InsecureSkipVerify: s.SMTPConfig.InsecureSkipVerify,
	}
	if s.SMTPConfig.TLS {
		opts = append(opts, mail.WithTLSConfig(tlsConfig), mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSConfig(tlsConfig), mail.WithTLSPolicy(mail.NoTLS))
	}
	return opts
}

func (s *SMTPSender) Send(ctx context.Context, from Account, msg Message) error {
	if msg.To == "" {
		return ErrMissingRecipient
	}

	client, err := mail.NewClient(s.SMTPConfig.Host, s.clientOptions(from)...)
	if err != nil {
		slog.Error("Failed to create mail client", "host", s.SMTPConfig.Host, "err", err)
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	m := mail.NewMsg()
	if err := m.From(from.Address); err != nil {
		slog.Error("Failed to set from address", "from", from.Address, "err", err)
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		slog.Error("Failed to set to address", "to", msg.To, "err", err)
		return fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		slog.Error("Failed to send email", "to", msg.To, "host", s.SMTPConfig.Host, "err", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("Email sent successfully", "to", msg.To, "host", s.SMTPConfig.Host, "port", s.SMTPConfig.Port)
	return nil
}
