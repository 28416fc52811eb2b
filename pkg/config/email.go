package config

import (
	"github.com/tendant/century-shop/pkg/notification"
)

// EmailConfig holds SMTP transport configuration. The sending account and its
// credential are not part of it: they live in the system configuration row.
type EmailConfig struct {
	Host string `env:"EMAIL_HOST" env-default:"smtp.gmail.com"`
	Port uint16 `env:"EMAIL_PORT" env-default:"587"`
	TLS  bool   `env:"EMAIL_TLS" env-default:"true"`
}

// ToSMTPConfig converts the config to a notification.SMTPConfig
func (e EmailConfig) ToSMTPConfig() notification.SMTPConfig {
	return notification.SMTPConfig{
		Host: e.Host,
		Port: int(e.Port),
		TLS:  e.TLS,
	}
}

// NewEmailConfigFromEnv creates an EmailConfig from environment variables
func NewEmailConfigFromEnv() EmailConfig {
	return EmailConfig{
		Host: GetEnvOrDefault("EMAIL_HOST", "smtp.gmail.com"),
		Port: GetEnvUint16("EMAIL_PORT", 587),
		TLS:  GetEnvBool("EMAIL_TLS", true),
	}
}
