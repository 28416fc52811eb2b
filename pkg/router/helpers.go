package router

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tendant/century-shop/pkg/bill"
	billapi "github.com/tendant/century-shop/pkg/bill/api"
	"github.com/tendant/century-shop/pkg/captcha"
	"github.com/tendant/century-shop/pkg/emailverification"
	emailverificationapi "github.com/tendant/century-shop/pkg/emailverification/api"
	"github.com/tendant/century-shop/pkg/notification"
	"github.com/tendant/century-shop/pkg/ratelimit"
	"github.com/tendant/century-shop/pkg/settings"
	settingsapi "github.com/tendant/century-shop/pkg/settings/api"
)

// Options contains everything needed to build the shop services
type Options struct {
	// Required
	PersistenceType string // postgres, mysql or file
	Pool            *pgxpool.Pool
	DB              *sql.DB
	DataDir         string
	Verifier        captcha.Verifier
	Sender          notification.Sender
	Secret          string // token signing secret
	FrontendURL     string // base of the confirmation link

	// Optional - defaults will be used if not provided
	PrefixConfig *PrefixConfig
	TokenExpiry  time.Duration // default 1h
	Currency     string        // default "Q"
	AdminAddress string        // admin order notices; default is the mail account itself
	RateLimit    *ratelimit.Config
}

// NewConfig wires repositories, services and handlers for the selected backend
//
// Example:
//
//	cfg, err := router.NewConfig(router.Options{
//	    PersistenceType: "file",
//	    DataDir:         "./data",
//	    Verifier:        captcha.StaticVerifier{Valid: true},
//	    Sender:          notification.NewSMTPSender(smtpConfig),
//	    Secret:          "your-secret-key",
//	    FrontendURL:     "http://localhost:3000",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	router.SetupRoutes(r, cfg)
func NewConfig(opts Options) (Config, error) {
	if opts.Verifier == nil || opts.Sender == nil {
		return Config{}, fmt.Errorf("verifier and sender are required")
	}

	// 1. Repositories
	settingsRepo, err := settings.NewRepository(opts.PersistenceType, settings.RepositoryConfig{
		Pool: opts.Pool, DB: opts.DB, DataDir: opts.DataDir,
	})
	if err != nil {
		return Config{}, fmt.Errorf("settings repository: %w", err)
	}
	tokenRepo, err := emailverification.NewRepository(opts.PersistenceType, emailverification.RepositoryConfig{
		Pool: opts.Pool, DB: opts.DB, DataDir: opts.DataDir,
	})
	if err != nil {
		return Config{}, fmt.Errorf("verification token repository: %w", err)
	}
	billRepo, err := bill.NewRepository(opts.PersistenceType, bill.RepositoryConfig{
		Pool: opts.Pool, DB: opts.DB, DataDir: opts.DataDir,
	})
	if err != nil {
		return Config{}, fmt.Errorf("bill repository: %w", err)
	}

	// 2. Services; the settings service is the mail account source for both flows
	settingsService := settings.NewService(settingsRepo)
	templates := notification.DefaultTemplates()

	verificationOpts := []emailverification.EmailVerificationServiceOption{
		emailverification.WithTemplates(templates),
	}
	if opts.TokenExpiry > 0 {
		verificationOpts = append(verificationOpts, emailverification.WithTokenExpiry(opts.TokenExpiry))
	}
	verificationService := emailverification.NewEmailVerificationService(
		tokenRepo,
		opts.Verifier,
		settingsService,
		opts.Sender,
		opts.Secret,
		opts.FrontendURL,
		verificationOpts...,
	)

	notifierOpts := []bill.NotifierOption{bill.WithNotifierTemplates(templates)}
	if opts.Currency != "" {
		notifierOpts = append(notifierOpts, bill.WithCurrency(opts.Currency))
	}
	if opts.AdminAddress != "" {
		notifierOpts = append(notifierOpts, bill.WithAdminAddress(opts.AdminAddress))
	}
	billService := bill.NewService(billRepo, bill.NewNotifier(settingsService, opts.Sender, notifierOpts...))

	// 3. Prefixes
	prefixConfig := DefaultPrefixes()
	if opts.PrefixConfig != nil {
		prefixConfig = *opts.PrefixConfig
	}

	cfg := Config{
		PrefixConfig:            prefixConfig,
		SettingsHandle:          settingsapi.NewHandle(settingsService),
		EmailVerificationHandle: emailverificationapi.NewHandler(verificationService),
		BillHandle:              billapi.NewHandle(billService),
	}
	if opts.RateLimit != nil {
		cfg.RateLimit = ratelimit.NewMiddleware(*opts.RateLimit)
	}
	return cfg, nil
}
