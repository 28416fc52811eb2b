package emailverification

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	apperrors "github.com/tendant/century-shop/pkg/errors"
)

// Claims is the payload of a verification token
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Signer mints and checks HS256 verification tokens
type Signer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewSigner creates a signer. now may be nil, in which case time.Now is used.
func NewSigner(secret string, expiry time.Duration, now func() time.Time) *Signer {
	if now == nil {
		now = time.Now
	}
	return &Signer{secret: []byte(secret), expiry: expiry, now: now}
}

// Sign returns a token for email and the instant it stops being valid
func (s *Signer) Sign(email string) (string, time.Time, error) {
	issuedAt := s.now().UTC()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenStr, claims.ExpiresAt.Time, nil
}

// Parse checks signature and expiry and returns the embedded email. Failures
// are ErrTokenExpired or ErrTokenInvalid.
func (s *Signer) Parse(tokenStr string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.WrapAs(err, ErrTokenExpired)
		}
		return "", apperrors.WrapAs(err, ErrTokenInvalid)
	}
	if claims.Email == "" {
		return "", ErrTokenInvalid
	}
	return claims.Email, nil
}
