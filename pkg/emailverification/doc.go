// Package emailverification confirms that a shopper controls an email address
// before an order is placed.
//
// # Flow
//
//  1. The storefront posts the address together with a captcha response.
//  2. IssueVerification checks the captcha, reads the outbound mail account,
//     signs an HS256 token carrying the email and a one hour expiry, stores it
//     and mails a link of the form <FRONTEND_URL>/data-client?token=<token>.
//  3. The storefront calls ValidateToken with the token from the link. The
//     signature and expiry are checked first; only a well-formed, unexpired
//     token is looked up in storage.
//
// Tokens are never marked as used. The same token validates until it expires,
// and several tokens may be outstanding for one address.
//
// # Usage
//
//	repo, err := emailverification.NewRepository("postgres", emailverification.RepositoryConfig{Pool: pool})
//	if err != nil {
//	    return err
//	}
//
//	service := emailverification.NewEmailVerificationService(
//	    repo,
//	    captcha.NewRecaptchaVerifier(os.Getenv("RECAPTCHA_SECRET")),
//	    settingsService, // notification.AccountSource
//	    notification.NewSMTPSender(smtpConfig),
//	    os.Getenv("SECRETKEY"),
//	    os.Getenv("FRONTEND_URL"),
//	    emailverification.WithTokenExpiry(time.Hour),
//	)
//
//	err = service.IssueVerification(ctx, "buyer@example.com", captchaResponse)
//	email, err := service.ValidateToken(ctx, token)
//
// # Errors
//
// Every failure is an *errors.Error from pkg/errors and matches one of the
// package sentinels with errors.Is:
//
//   - ErrInvalidChallenge: captcha rejected, or the captcha service could not be reached
//   - ErrConfigurationMissing: no outbound mail account is configured
//   - ErrDispatchFailed: the token could not be stored or the email could not be sent
//   - ErrTokenExpired, ErrTokenInvalid: signature or expiry check failed
//   - ErrTokenNotFound: the token verifies but was never stored
//
// # Persistence
//
// NewRepository selects the backend: "postgres" (pgx), "mysql" (database/sql
// with go-sql-driver, also used for TiDB) or "file" (a JSON file under DataDir).
package emailverification
