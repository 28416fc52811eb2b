// Package errors provides structured error handling with error codes for century-shop.
//
// Every failure that crosses a service boundary is an *Error carrying a typed
// ErrorCode, a human-readable message safe to show to clients, and optionally
// the underlying cause. Handlers map codes to HTTP statuses with
// MapErrorCodeToHTTPStatus and only ever serialize the message.
//
// # Basic Usage
//
//	import apperrors "github.com/tendant/century-shop/pkg/errors"
//
//	// Sentinels are declared once per package
//	var ErrTokenExpired = apperrors.New(apperrors.ErrCodeTokenExpired, "Token has expired.")
//
//	// Attach a cause while keeping the sentinel identity
//	return apperrors.WrapAs(dbErr, ErrVerificationDispatchFailed)
//
//	// errors.Is matches on code, so both forms compare equal
//	if errors.Is(err, ErrVerificationDispatchFailed) { ... }
//
// # Inspecting errors
//
//	code := apperrors.GetCode(err)                  // ErrCodeInternal for plain errors
//	msg := apperrors.PublicMessage(err, "Unexpected error")
//	status := apperrors.MapErrorCodeToHTTPStatus(code)
package errors
