package emailverification

import apperrors "github.com/tendant/century-shop/pkg/errors"

// Sentinels returned by the service. Match them with errors.Is: wrapped
// failures carry the same code.
var (
	// ErrInvalidChallenge is returned when the captcha response is rejected or cannot be checked
	ErrInvalidChallenge = apperrors.New(apperrors.ErrCodeInvalidChallenge, "Invalid captcha")

	// ErrConfigurationMissing is returned when no outbound mail account is configured
	ErrConfigurationMissing = apperrors.New(apperrors.ErrCodeConfigurationMissing, "System email configuration not found.")

	// ErrTokenExpired is returned when the token signature is valid but its expiry has passed
	ErrTokenExpired = apperrors.New(apperrors.ErrCodeTokenExpired, "Token has expired.")

	// ErrTokenInvalid is returned for any other signature or format failure
	ErrTokenInvalid = apperrors.New(apperrors.ErrCodeTokenInvalid, "Invalid token.")

	// ErrTokenNotFound is returned when a well-formed token was never issued by this store
	ErrTokenNotFound = apperrors.New(apperrors.ErrCodeTokenNotFound, "Token not found in database.")

	// ErrDispatchFailed is returned when the token could not be stored or emailed
	ErrDispatchFailed = apperrors.New(apperrors.ErrCodeVerificationDispatchFailed, "Failed to send verification email")
)
