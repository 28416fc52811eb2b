package bill

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nanorand/nanorand"
	apperrors "github.com/tendant/century-shop/pkg/errors"
)

// trackingCodeLength is the length of generated tracking codes
const trackingCodeLength = 10

// Service places orders and notifies about them
type Service struct {
	repo     Repository
	notifier OrderNotifier
	newCode  func() (string, error)
}

type Option func(*Service)

// WithTrackingCodeGenerator replaces how missing tracking codes are generated
func WithTrackingCodeGenerator(gen func() (string, error)) Option {
	return func(s *Service) {
		s.newCode = gen
	}
}

func NewService(repo Repository, notifier OrderNotifier, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		notifier: notifier,
		newCode:  generateTrackingCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func generateTrackingCode() (string, error) {
	code, err := nanorand.Gen(trackingCodeLength)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(code), nil
}

func validateBill(b Bill) error {
	if strings.TrimSpace(b.CustomerName) == "" {
		return apperrors.MissingRequired("name")
	}
	if strings.TrimSpace(b.CustomerEmail) == "" {
		return apperrors.MissingRequired("email")
	}
	if len(b.Items) == 0 {
		return apperrors.ValidationFailed("at least one product is required")
	}
	for i, item := range b.Items {
		if item.Quantity <= 0 {
			return apperrors.ValidationFailed(fmt.Sprintf("product %d: quantity must be positive", i+1))
		}
		if item.Price < 0 {
			return apperrors.ValidationFailed(fmt.Sprintf("product %d: price cannot be negative", i+1))
		}
	}
	return nil
}

// CreateBill stores the order and then notifies the customer and the shop.
// When only the notification fails, the stored bill is returned together
// with the error.
func (s *Service) CreateBill(ctx context.Context, b Bill) (*Bill, error) {
	if err := validateBill(b); err != nil {
		return nil, err
	}

	b.ID = uuid.New()
	if b.TrackingCode == "" {
		code, err := s.newCode()
		if err != nil {
			slog.Error("Failed to generate tracking code", "error", err)
			return nil, apperrors.InternalWrap(err, "Error creating bill")
		}
		b.TrackingCode = code
	}

	created, err := s.repo.CreateBill(ctx, b)
	if err != nil {
		if apperrors.IsCode(err, apperrors.ErrCodeValidationFailed) {
			return nil, err
		}
		slog.Error("Failed to create bill", "email", b.CustomerEmail, "error", err)
		return nil, apperrors.InternalWrap(err, "Error creating bill")
	}
	slog.Info("Bill created", "bill_id", created.ID, "tracking_code", created.TrackingCode)

	if err := s.notifier.NotifyOrderCreated(ctx, *created); err != nil {
		return created, err
	}
	return created, nil
}
