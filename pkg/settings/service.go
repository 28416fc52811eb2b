package settings

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	apperrors "github.com/tendant/century-shop/pkg/errors"
	"github.com/tendant/century-shop/pkg/notification"
)

// Service owns the system configuration
type Service struct {
	repo     Repository
	defaults SystemConfig
}

type Option func(*Service)

// WithDefaults replaces the values written when no configuration exists
func WithDefaults(defaults SystemConfig) Option {
	return func(s *Service) {
		s.defaults = defaults
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		defaults: DefaultSystemConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetConfig returns the configuration, creating it from the defaults when the
// store is empty.
func (s *Service) GetConfig(ctx context.Context) (*SystemConfig, error) {
	cfg, found, err := s.repo.GetConfig(ctx)
	if err != nil {
		slog.Error("Failed to read system configuration", "error", err)
		return nil, apperrors.InternalWrap(err, "error fetching system configuration")
	}
	if found {
		return cfg, nil
	}

	defaults := s.defaults
	defaults.ID = uuid.New()
	if _, err := s.repo.CreateConfig(ctx, defaults); err != nil {
		slog.Error("Failed to create default system configuration", "error", err)
		return nil, apperrors.InternalWrap(err, "error fetching system configuration")
	}
	slog.Info("Created default system configuration", "id", defaults.ID)

	// read back so concurrent first reads converge on the oldest row
	cfg, found, err = s.repo.GetConfig(ctx)
	if err != nil {
		return nil, apperrors.InternalWrap(err, "error fetching system configuration")
	}
	if !found {
		return nil, apperrors.New(apperrors.ErrCodeInternal, "error fetching system configuration")
	}
	return cfg, nil
}

// UpdateConfig overwrites the configuration identified by cfg.ID
func (s *Service) UpdateConfig(ctx context.Context, cfg SystemConfig) error {
	if cfg.ID == uuid.Nil {
		return apperrors.MissingRequired("config id")
	}

	updated, err := s.repo.UpdateConfig(ctx, cfg)
	if err != nil {
		slog.Error("Failed to update system configuration", "id", cfg.ID, "error", err)
		return apperrors.InternalWrap(err, "error updating configuration")
	}
	if !updated {
		return apperrors.NotFound("configuration", cfg.ID.String())
	}

	slog.Info("System configuration updated", "id", cfg.ID)
	return nil
}

// MailAccount implements notification.AccountSource. Unlike GetConfig it never
// creates the defaults: a missing row means mail is not configured.
func (s *Service) MailAccount(ctx context.Context) (notification.Account, bool, error) {
	cfg, found, err := s.repo.GetConfig(ctx)
	if err != nil {
		return notification.Account{}, false, err
	}
	if !found || cfg.Email == "" {
		return notification.Account{}, false, nil
	}
	return cfg.MailAccount(), true, nil
}
