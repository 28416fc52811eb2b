package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tendant/century-shop/pkg/emailverification"
	apperrors "github.com/tendant/century-shop/pkg/errors"
)

func main() {
	// Parse command line flags
	secret := flag.String("secret", os.Getenv("SECRETKEY"), "Secret key for signing the token (defaults to $SECRETKEY)")
	email := flag.String("email", "", "Sign a new token for this email")
	expiry := flag.Duration("expiry", emailverification.DefaultTokenExpiry, "Token expiry duration (e.g., 30m, 1h)")
	token := flag.String("token", "", "Check and decode an existing token")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "Error: -secret or SECRETKEY is required")
		os.Exit(1)
	}

	signer := emailverification.NewSigner(*secret, *expiry, nil)

	switch {
	case *email != "":
		tokenStr, expiresAt, err := signer.Sign(*email)
		if err != nil {
			slog.Error("Failed to sign token", "err", err)
			os.Exit(1)
		}
		fmt.Printf("Token: %s\nExpires: %s\n", tokenStr, expiresAt.Format(time.RFC3339))

	case *token != "":
		// Decode without verification first so expired or foreign tokens can still be shown
		claims := &emailverification.Claims{}
		parsed, _, err := jwt.NewParser().ParseUnverified(*token, claims)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: not a JWT: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("=== Token Header ===\n")
		headerJSON, _ := json.MarshalIndent(parsed.Header, "", "  ")
		fmt.Printf("%s\n\n", headerJSON)
		fmt.Printf("=== Token Claims ===\n")
		claimsJSON, _ := json.MarshalIndent(claims, "", "  ")
		fmt.Printf("%s\n\n", claimsJSON)

		if _, err := signer.Parse(*token); err != nil {
			fmt.Printf("Status: %s\n", apperrors.GetCode(err))
			os.Exit(2)
		}
		fmt.Println("Status: VALID")

	default:
		fmt.Fprintln(os.Stderr, "Error: one of -email or -token is required")
		flag.Usage()
		os.Exit(1)
	}
}
