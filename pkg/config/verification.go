package config

import (
	"time"
)

// DefaultTokenExpiry is the validity window of an email verification token
const DefaultTokenExpiry = time.Hour

// VerificationConfig holds the settings of the email verification flow
type VerificationConfig struct {
	Secret      string `env:"SECRETKEY" env-default:""`
	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:3000"`
	TokenExpiry string `env:"TOKEN_EXPIRY" env-default:"1h"`
}

// ParseTokenExpiry parses the token expiry duration (ISO8601 or Go format)
func (v VerificationConfig) ParseTokenExpiry() (time.Duration, error) {
	if v.TokenExpiry == "" {
		return DefaultTokenExpiry, nil
	}
	return ParseDuration(v.TokenExpiry)
}

// Validate checks that tokens can be signed and links can be built
func (v VerificationConfig) Validate() error {
	return Validate(func() ValidationErrors {
		errs := CollectErrors(
			RequireMinLength("SECRETKEY", v.Secret, 16),
			RequireValidURL("FRONTEND_URL", v.FrontendURL),
		)
		expiry, err := v.ParseTokenExpiry()
		if err != nil {
			errs = append(errs, ValidationError{Field: "TOKEN_EXPIRY", Message: err.Error()})
		} else if e := RequirePositiveDuration("TOKEN_EXPIRY", expiry); e != nil {
			errs = append(errs, *e)
		}
		return errs
	})
}

// NewVerificationConfigFromEnv creates a VerificationConfig from environment variables
func NewVerificationConfigFromEnv() VerificationConfig {
	return VerificationConfig{
		Secret:      GetEnv("SECRETKEY"),
		FrontendURL: GetEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		TokenExpiry: GetEnvOrDefault("TOKEN_EXPIRY", "1h"),
	}
}
