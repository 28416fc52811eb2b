package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/tendant/century-shop/pkg/captcha"
	pkgconfig "github.com/tendant/century-shop/pkg/config"
	"github.com/tendant/century-shop/pkg/database"
	"github.com/tendant/century-shop/pkg/notification"
	"github.com/tendant/century-shop/pkg/ratelimit"
	"github.com/tendant/century-shop/pkg/router"
	"github.com/tendant/chi-demo/app"
)

type Config struct {
	PersistenceType string `env:"PERSISTENCE_TYPE" env-default:"postgres"`
	DataDir         string `env:"DATA_DIR" env-default:"./data"`
	LogLevel        string `env:"LOG_LEVEL" env-default:"info"`

	// Order emails
	Currency   string `env:"CURRENCY" env-default:"Q"`
	AdminEmail string `env:"ADMIN_EMAIL" env-default:""`

	// Per-client limit on the endpoints that send email; 0 disables it
	RateLimitPerMinute int  `env:"RATE_LIMIT_PER_MINUTE" env-default:"5"`
	RateLimitBurst     int  `env:"RATE_LIMIT_BURST" env-default:"5"`
	TrustProxy         bool `env:"TRUST_PROXY" env-default:"false"`

	Database     pkgconfig.DatabaseConfig
	Email        pkgconfig.EmailConfig
	Captcha      pkgconfig.CaptchaConfig
	Verification pkgconfig.VerificationConfig

	// Server
	AppConfig app.AppConfig
}

func (c Config) Validate() error {
	if err := pkgconfig.Validate(func() pkgconfig.ValidationErrors {
		return pkgconfig.CollectErrors(
			pkgconfig.RequireOneOf("PERSISTENCE_TYPE", c.PersistenceType, []string{
				pkgconfig.PersistencePostgres, pkgconfig.PersistenceMySQL, pkgconfig.PersistenceFile,
			}),
		)
	}); err != nil {
		return err
	}

	switch c.PersistenceType {
	case pkgconfig.PersistencePostgres, pkgconfig.PersistenceMySQL:
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	if err := c.Verification.Validate(); err != nil {
		return err
	}
	return c.Captcha.Validate()
}

func main() {
	// Load .env file
	loadEnvFile()

	// Load configuration
	config := Config{}
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read configuration", "error", err)
		os.Exit(1)
	}

	// Setup logger
	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting Century Shop Service")

	if err := config.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize storage
	var pool *pgxpool.Pool
	var db *sql.DB
	switch config.PersistenceType {
	case pkgconfig.PersistencePostgres:
		var err error
		pool, err = database.NewPostgresPool(ctx, config.Database)
		if err != nil {
			slog.Error("Failed to connect to database",
				"host", config.Database.Host,
				"port", config.Database.Port,
				"database", config.Database.Database,
				"schema", config.Database.Schema,
				"error", err)
			os.Exit(1)
		}
		defer pool.Close()
	case pkgconfig.PersistenceMySQL:
		var err error
		db, err = database.OpenMySQL(ctx, config.Database)
		if err != nil {
			slog.Error("Failed to connect to database",
				"host", config.Database.Host,
				"port", config.Database.Port,
				"database", config.Database.Database,
				"tls", config.Database.CAFile != "",
				"error", err)
			os.Exit(1)
		}
		defer db.Close()
	case pkgconfig.PersistenceFile:
		slog.Info("Using file storage", "dir", config.DataDir)
	}
	slog.Info("Storage ready", "type", config.PersistenceType)

	// Challenge verification
	var verifier captcha.Verifier
	if config.Captcha.Disabled {
		slog.Warn("Captcha verification disabled - every challenge is accepted")
		verifier = captcha.StaticVerifier{Valid: true}
	} else {
		timeout, err := config.Captcha.ParseTimeout()
		if err != nil || timeout <= 0 {
			timeout = captcha.DefaultTimeout
		}
		verifier = captcha.NewRecaptchaVerifier(config.Captcha.Secret,
			captcha.WithVerifyURL(config.Captcha.VerifyURL),
			captcha.WithTimeout(timeout),
		)
	}

	tokenExpiry, _ := config.Verification.ParseTokenExpiry()

	var rateLimit *ratelimit.Config
	if config.RateLimitPerMinute > 0 {
		rateLimit = &ratelimit.Config{
			Capacity:   config.RateLimitBurst,
			RefillRate: float64(config.RateLimitPerMinute) / 60.0,
			BucketTTL:  time.Hour,
			TrustProxy: config.TrustProxy,
		}
	}

	routes, err := router.NewConfig(router.Options{
		PersistenceType: config.PersistenceType,
		Pool:            pool,
		DB:              db,
		DataDir:         config.DataDir,
		Verifier:        verifier,
		Sender:          notification.NewSMTPSender(config.Email.ToSMTPConfig()),
		Secret:          config.Verification.Secret,
		FrontendURL:     config.Verification.FrontendURL,
		TokenExpiry:     tokenExpiry,
		Currency:        config.Currency,
		AdminAddress:    config.AdminEmail,
		RateLimit:       rateLimit,
	})
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Setup HTTP server
	server := app.DefaultApp()
	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)
	router.SetupRoutes(server.R, routes)

	slog.Info(strings.Repeat("=", 60))
	slog.Info("Century Shop Service Ready")
	slog.Info("API Endpoints:")
	slog.Info("  GET  /century/v1/config         - Shop configuration")
	slog.Info("  PUT  /century/v1/config         - Update shop configuration")
	slog.Info("  POST /century/v1/config/verify  - Send email confirmation link")
	slog.Info("  GET  /century/v1/config/verify  - Check confirmation token")
	slog.Info("  POST /century/v1/bill           - Place an order")
	slog.Info(strings.Repeat("=", 60))

	server.Run()
}

// loadEnvFile loads .env next to the binary, falling back to the working directory
func loadEnvFile() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}

	envFile := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		cwd, _ := os.Getwd()
		envFile = filepath.Join(cwd, ".env")
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Debug("No .env file found (using environment variables or defaults)")
		return
	}

	slog.Info("Loading configuration from .env file", "path", envFile)
	if err := godotenv.Load(envFile); err != nil {
		slog.Warn("Failed to load .env file", "error", err)
	}
}
