package bill

import (
	apperrors "github.com/tendant/century-shop/pkg/errors"
)

var (
	// ErrConfigurationMissing is returned when no mail account is configured
	ErrConfigurationMissing = apperrors.New(apperrors.ErrCodeConfigurationMissing, "System email configuration not found")

	// ErrCustomerEmailFailed is returned when the receipt could not be sent.
	// The order itself is already stored.
	ErrCustomerEmailFailed = apperrors.New(apperrors.ErrCodeCustomerEmailFailed, "Failed to send email to customer")

	ErrDuplicateTrackingCode = apperrors.New(apperrors.ErrCodeValidationFailed, "Tracking code already in use")
)
