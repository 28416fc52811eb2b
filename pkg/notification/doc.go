// Package notification renders and sends the shop's transactional emails.
//
// A Sender delivers a fully rendered Message from an Account. The account is
// not part of the sender: it is looked up per operation from an AccountSource,
// which in the server is the system configuration row.
//
// # Sending
//
//	sender := notification.NewSMTPSender(notification.SMTPConfig{
//	    Host: "smtp.gmail.com",
//	    Port: 587,
//	    TLS:  true,
//	})
//
//	err := sender.Send(ctx,
//	    notification.Account{Address: "shop@example.com", Password: "app-password"},
//	    notification.Message{To: "customer@example.com", Subject: "Hello", HTML: "<p>Hi</p>"},
//	)
//
// SMTPSender builds a go-mail client for every call, authenticating with the
// account credential, and gives up after 30 seconds by default.
//
// # Templates
//
// The built-in notices live in templates/email and are embedded in the binary:
//
//	registry := notification.DefaultTemplates()
//	msg, err := registry.Compose(notification.EmailVerificationNotice, "customer@example.com", map[string]any{
//	    "Link":      link,
//	    "ExpiresAt": expiresAt,
//	})
//
// Fragments such as the order line-item table are rendered once with
// RenderFragment and passed to several notices as template.HTML.
//
// # Testing
//
// MockSender records every message and can fail for chosen recipients:
//
//	mock := &notification.MockSender{FailFor: map[string]error{"admin@example.com": errors.New("smtp down")}}
package notification
