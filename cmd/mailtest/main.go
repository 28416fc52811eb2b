package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tendant/century-shop/pkg/notification"
)

func main() {
	// Parse command line flags
	host := flag.String("host", "localhost", "SMTP server host")
	port := flag.Int("port", 1025, "SMTP server port")
	useTLS := flag.Bool("tls", false, "Require STARTTLS")
	insecure := flag.Bool("insecure", false, "Skip TLS certificate verification")
	from := flag.String("from", "", "Mail account address (From)")
	password := flag.String("pass", "", "Mail account password")
	to := flag.String("to", "", "To email address")
	notice := flag.String("notice", "", "Render a built-in notice instead of a plain message (email_verification)")
	flag.Parse()

	if *from == "" || *to == "" {
		fmt.Println("Error: from and to email addresses are required")
		os.Exit(1)
	}

	sender := notification.NewSMTPSender(notification.SMTPConfig{
		Host:               *host,
		Port:               *port,
		TLS:                *useTLS,
		InsecureSkipVerify: *insecure,
	})

	msg := notification.Message{
		To:      *to,
		Subject: "Test Email from Century Shop",
		HTML:    "<p>This is a test email from the Century Shop email testing tool.</p>",
	}
	if *notice != "" {
		var err error
		msg, err = notification.DefaultTemplates().Compose(notification.NoticeType(*notice), *to, map[string]any{
			"Link":      "http://localhost:3000/data-client?token=test",
			"ExpiresAt": time.Now().Add(time.Hour),
		})
		if err != nil {
			log.Fatalf("Failed to render notice: %v", err)
		}
	}

	account := notification.Account{Address: *from, Password: *password}
	if err := sender.Send(context.Background(), account, msg); err != nil {
		log.Fatalf("Failed to send email: %v", err)
	}

	fmt.Println("Email sent successfully!")
}
