package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	billapi "github.com/tendant/century-shop/pkg/bill/api"
	emailverificationapi "github.com/tendant/century-shop/pkg/emailverification/api"
	"github.com/tendant/century-shop/pkg/ratelimit"
	settingsapi "github.com/tendant/century-shop/pkg/settings/api"
)

// PrefixConfig holds the route prefixes. Email verification is always mounted
// under Config + "/verify".
type PrefixConfig struct {
	Base   string
	Config string
	Bill   string
}

// DefaultPrefixes returns the prefixes the storefront calls
func DefaultPrefixes() PrefixConfig {
	return PrefixConfig{
		Base:   "/century/v1",
		Config: "/config",
		Bill:   "/bill",
	}
}

// Config holds all the handlers needed to setup routes
type Config struct {
	PrefixConfig PrefixConfig

	SettingsHandle          settingsapi.Handle
	EmailVerificationHandle *emailverificationapi.Handler
	BillHandle              billapi.Handle

	// RateLimit guards the endpoints that send email (optional)
	RateLimit *ratelimit.Middleware
}

// SetupRoutes mounts all shop routes on the provided router
func SetupRoutes(router chi.Router, cfg Config) {
	router.Route(cfg.PrefixConfig.Base, func(r chi.Router) {
		r.Route(cfg.PrefixConfig.Config, func(r chi.Router) {
			cfg.SettingsHandle.Routes(r)

			r.Group(func(r chi.Router) {
				if cfg.RateLimit != nil {
					r.Use(postsOnly(cfg.RateLimit.Handler))
				}
				r.Route("/verify", cfg.EmailVerificationHandle.Routes)
			})
		})

		r.Group(func(r chi.Router) {
			if cfg.RateLimit != nil {
				r.Use(postsOnly(cfg.RateLimit.Handler))
			}
			r.Route(cfg.PrefixConfig.Bill, cfg.BillHandle.Routes)
		})
	})
}

// postsOnly applies mw to POST requests and lets every other method through
func postsOnly(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				limited.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
