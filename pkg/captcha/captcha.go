// Package captcha checks human-verification challenge responses.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	DefaultTimeout   = 10 * time.Second
)

// Verifier reports whether a challenge response was solved by a human
type Verifier interface {
	Verify(ctx context.Context, response string) (bool, error)
}

// RecaptchaVerifier asks Google reCAPTCHA to validate a response token
type RecaptchaVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
}

type Option func(*RecaptchaVerifier)

// WithVerifyURL points the verifier at another siteverify endpoint
func WithVerifyURL(verifyURL string) Option {
	return func(v *RecaptchaVerifier) {
		v.verifyURL = verifyURL
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(v *RecaptchaVerifier) {
		v.client.Timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(v *RecaptchaVerifier) {
		v.client = client
	}
}

func NewRecaptchaVerifier(secret string, opts ...Option) *RecaptchaVerifier {
	v := &RecaptchaVerifier{
		secret:    secret,
		verifyURL: DefaultVerifyURL,
		client:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, response string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", response)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("captcha verification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha verification service error: %s", resp.Status)
	}

	var out siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("failed to decode captcha verification response: %w", err)
	}
	if !out.Success {
		slog.Debug("Captcha rejected", "error_codes", out.ErrorCodes)
	}
	return out.Success, nil
}

// StaticVerifier gives the same answer for every response
type StaticVerifier struct {
	Valid bool
}

func (s StaticVerifier) Verify(ctx context.Context, response string) (bool, error) {
	return s.Valid, nil
}
