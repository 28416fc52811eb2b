package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	sentinel := New(ErrCodeTokenExpired, "Token has expired.")

	t.Run("SameSentinel", func(t *testing.T) {
		assert.True(t, errors.Is(sentinel, sentinel))
	})

	t.Run("WrappedSentinel", func(t *testing.T) {
		wrapped := WrapAs(fmt.Errorf("boom"), sentinel)
		assert.True(t, errors.Is(wrapped, sentinel))
		assert.Equal(t, sentinel.Message, wrapped.Message)
	})

	t.Run("WrappedTwice", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", WrapAs(fmt.Errorf("boom"), sentinel))
		assert.True(t, errors.Is(wrapped, sentinel))
		assert.True(t, IsCode(wrapped, ErrCodeTokenExpired))
	})

	t.Run("DifferentCode", func(t *testing.T) {
		other := New(ErrCodeTokenInvalid, "Invalid token.")
		assert.False(t, errors.Is(other, sentinel))
	})
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "nothing"))
}

func TestGetCodeAndPublicMessage(t *testing.T) {
	plain := fmt.Errorf("dial tcp: connection refused")
	assert.Equal(t, ErrCodeInternal, GetCode(plain))
	assert.Equal(t, "fallback", PublicMessage(plain, "fallback"))

	structured := Wrap(plain, ErrCodeCustomerEmailFailed, "Could not send the order receipt.")
	assert.Equal(t, ErrCodeCustomerEmailFailed, GetCode(structured))
	assert.Equal(t, "Could not send the order receipt.", PublicMessage(structured, "fallback"))
	assert.Contains(t, structured.Error(), "connection refused")
}

func TestMapErrorCodeToHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeMissingRequired, http.StatusBadRequest},
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeInvalidChallenge, http.StatusBadRequest},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenInvalid, http.StatusUnauthorized},
		{ErrCodeTokenNotFound, http.StatusNotFound},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConfigurationMissing, http.StatusServiceUnavailable},
		{ErrCodeVerificationDispatchFailed, http.StatusInternalServerError},
		{ErrCodeCustomerEmailFailed, http.StatusInternalServerError},
		{ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorCodeToHTTPStatus(tt.code))
			assert.Equal(t, tt.want, New(tt.code, "x").HTTPStatusCode())
		})
	}
}
