// Package config provides configuration pieces shared by the century-shop commands.
//
// Each piece is a struct carrying cleanenv tags, so a command can embed it in
// its own Config and load everything with cleanenv.ReadEnv. The same structs
// can also be built directly from the environment with the NewXxxFromEnv
// helpers, which is what the small operator tools do.
//
// # Pieces
//
//   - DatabaseConfig: DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD, DB_SCHEMA,
//     DB_CA_FILE (TLS for MySQL/TiDB), DB_MAX_CONNS
//   - EmailConfig: EMAIL_HOST, EMAIL_PORT, EMAIL_TLS
//   - CaptchaConfig: RECAPTCHA_SECRET, RECAPTCHA_VERIFY_URL, RECAPTCHA_TIMEOUT, CAPTCHA_DISABLED
//   - VerificationConfig: SECRETKEY, FRONTEND_URL, TOKEN_EXPIRY
//
// Durations accept ISO8601 ("PT1H") and Go ("1h") notation:
//
//	expiry, err := config.ParseDuration("PT1H")
//
// # Validation
//
// Validation errors are collected rather than returned one by one:
//
//	if err := config.Validate(
//		func() config.ValidationErrors {
//			return config.CollectErrors(
//				config.RequireNonEmpty("SECRETKEY", cfg.Secret),
//				config.RequireValidURL("FRONTEND_URL", cfg.FrontendURL),
//			)
//		},
//	); err != nil {
//		slog.Error("Invalid configuration", "error", err)
//	}
package config
