package emailverification

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/tendant/century-shop/pkg/captcha"
	apperrors "github.com/tendant/century-shop/pkg/errors"
	"github.com/tendant/century-shop/pkg/notification"
)

// DefaultTokenExpiry is how long an issued token stays valid
const DefaultTokenExpiry = time.Hour

// EmailVerificationService issues and validates email verification tokens
type EmailVerificationService struct {
	repo        Repository
	verifier    captcha.Verifier
	accounts    notification.AccountSource
	sender      notification.Sender
	templates   *notification.TemplateRegistry
	secret      string
	frontendURL string
	tokenExpiry time.Duration
	now         func() time.Time
	signer      *Signer
}

// EmailVerificationServiceOption defines configuration options
type EmailVerificationServiceOption func(*EmailVerificationService)

// WithTokenExpiry sets the token expiration duration
func WithTokenExpiry(expiry time.Duration) EmailVerificationServiceOption {
	return func(s *EmailVerificationService) {
		s.tokenExpiry = expiry
	}
}

// WithClock replaces the time source used to sign and check tokens
func WithClock(now func() time.Time) EmailVerificationServiceOption {
	return func(s *EmailVerificationService) {
		s.now = now
	}
}

// WithTemplates replaces the built-in email templates
func WithTemplates(templates *notification.TemplateRegistry) EmailVerificationServiceOption {
	return func(s *EmailVerificationService) {
		s.templates = templates
	}
}

// NewEmailVerificationService creates a new email verification service.
// Confirmation links point at <frontendURL>/data-client.
func NewEmailVerificationService(
	repo Repository,
	verifier captcha.Verifier,
	accounts notification.AccountSource,
	sender notification.Sender,
	secret string,
	frontendURL string,
	opts ...EmailVerificationServiceOption,
) *EmailVerificationService {
	service := &EmailVerificationService{
		repo:        repo,
		verifier:    verifier,
		accounts:    accounts,
		sender:      sender,
		secret:      secret,
		frontendURL: frontendURL,
		tokenExpiry: DefaultTokenExpiry,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(service)
	}

	if service.templates == nil {
		service.templates = notification.DefaultTemplates()
	}
	service.signer = NewSigner(secret, service.tokenExpiry, service.now)

	return service
}

// VerificationLink builds the confirmation link for token
func (s *EmailVerificationService) VerificationLink(token string) string {
	return strings.TrimRight(s.frontendURL, "/") + "/data-client?token=" + url.QueryEscape(token)
}

// IssueVerification checks the captcha, then mints, stores and emails a token
// for email. The token itself is only ever delivered by email.
func (s *EmailVerificationService) IssueVerification(ctx context.Context, email, challengeResponse string) error {
	if email == "" {
		return apperrors.MissingRequired("email")
	}
	if challengeResponse == "" {
		return apperrors.MissingRequired("captcha")
	}

	ok, err := s.verifier.Verify(ctx, challengeResponse)
	if err != nil {
		slog.Warn("Captcha verification failed", "email", email, "error", err)
		return apperrors.WrapAs(err, ErrInvalidChallenge)
	}
	if !ok {
		slog.Info("Captcha rejected", "email", email)
		return ErrInvalidChallenge
	}

	account, found, err := s.accounts.MailAccount(ctx)
	if err != nil {
		slog.Error("Failed to read mail account", "error", err)
		return apperrors.WrapAs(err, ErrDispatchFailed)
	}
	if !found {
		slog.Error("System email configuration not found")
		return ErrConfigurationMissing
	}

	token, expiresAt, err := s.signer.Sign(email)
	if err != nil {
		slog.Error("Failed to sign verification token", "email", email, "error", err)
		return apperrors.WrapAs(err, ErrDispatchFailed)
	}

	// the stored row is kept even if sending fails below
	vt, err := s.repo.CreateVerificationToken(ctx, email, token, expiresAt)
	if err != nil {
		slog.Error("Failed to create verification token", "email", email, "error", err)
		return apperrors.WrapAs(err, ErrDispatchFailed)
	}

	msg, err := s.templates.Compose(notification.EmailVerificationNotice, email, map[string]any{
		"Link":      s.VerificationLink(token),
		"ExpiresAt": expiresAt,
	})
	if err != nil {
		slog.Error("Failed to render verification email", "email", email, "error", err)
		return apperrors.WrapAs(err, ErrDispatchFailed)
	}

	if err := s.sender.Send(ctx, account, msg); err != nil {
		slog.Error("Failed to send verification email", "email", email, "token_id", vt.ID, "error", err)
		return apperrors.WrapAs(err, ErrDispatchFailed)
	}

	slog.Info("Verification email sent", "email", email, "token_id", vt.ID, "expires_at", expiresAt)
	return nil
}

// ValidateToken checks signature and expiry before looking the token up, and
// returns the email it was issued for. Validation does not consume the token.
func (s *EmailVerificationService) ValidateToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperrors.MissingRequired("token")
	}

	if _, err := s.signer.Parse(token); err != nil {
		slog.Info("Rejected verification token", "code", apperrors.GetCode(err))
		return "", err
	}

	vt, found, err := s.repo.FindVerificationToken(ctx, token)
	if err != nil {
		slog.Error("Failed to look up verification token", "error", err)
		return "", apperrors.InternalWrap(err, "Error verifying token")
	}
	if !found {
		return "", ErrTokenNotFound
	}

	slog.Info("Verification token is valid", "email", vt.Email, "token_id", vt.ID)
	return vt.Email, nil
}
