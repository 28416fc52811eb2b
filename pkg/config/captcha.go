package config

import "time"

// CaptchaConfig holds the human-verification (reCAPTCHA) settings
type CaptchaConfig struct {
	Secret    string `env:"RECAPTCHA_SECRET" env-default:""`
	VerifyURL string `env:"RECAPTCHA_VERIFY_URL" env-default:"https://www.google.com/recaptcha/api/siteverify"`
	Timeout   string `env:"RECAPTCHA_TIMEOUT" env-default:"10s"`
	// Disabled accepts every challenge; only meant for local development
	Disabled bool `env:"CAPTCHA_DISABLED" env-default:"false"`
}

// ParseTimeout parses the verification request timeout
func (c CaptchaConfig) ParseTimeout() (time.Duration, error) {
	return ParseDuration(c.Timeout)
}

// Validate requires a secret unless verification is disabled
func (c CaptchaConfig) Validate() error {
	if c.Disabled {
		return nil
	}
	return Validate(func() ValidationErrors {
		return CollectErrors(
			RequireNonEmpty("RECAPTCHA_SECRET", c.Secret),
			RequireValidURL("RECAPTCHA_VERIFY_URL", c.VerifyURL),
		)
	})
}
