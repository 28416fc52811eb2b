package bill

import (
	"context"
	"log/slog"

	apperrors "github.com/tendant/century-shop/pkg/errors"
	"github.com/tendant/century-shop/pkg/notification"
)

// OrderNotifier tells the customer and the shop about a stored order
type OrderNotifier interface {
	NotifyOrderCreated(ctx context.Context, b Bill) error
}

// Notifier sends the customer receipt and the admin notice for new orders
type Notifier struct {
	accounts     notification.AccountSource
	sender       notification.Sender
	templates    *notification.TemplateRegistry
	currency     string
	adminAddress string
}

// NotifierOption configures a Notifier
type NotifierOption func(*Notifier)

// WithCurrency sets the symbol prices are formatted with
func WithCurrency(currency string) NotifierOption {
	return func(n *Notifier) {
		n.currency = currency
	}
}

// WithAdminAddress sends the admin notice somewhere other than the mail account itself
func WithAdminAddress(address string) NotifierOption {
	return func(n *Notifier) {
		n.adminAddress = address
	}
}

// WithNotifierTemplates replaces the built-in email templates
func WithNotifierTemplates(templates *notification.TemplateRegistry) NotifierOption {
	return func(n *Notifier) {
		n.templates = templates
	}
}

func NewNotifier(accounts notification.AccountSource, sender notification.Sender, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		accounts: accounts,
		sender:   sender,
		currency: DefaultCurrency,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.templates == nil {
		n.templates = notification.DefaultTemplates()
	}
	return n
}

// NotifyOrderCreated emails the receipt to the customer and then the admin
// notice to the shop. A failed receipt stops the admin notice; a failed admin
// notice is only logged.
func (n *Notifier) NotifyOrderCreated(ctx context.Context, b Bill) error {
	account, found, err := n.accounts.MailAccount(ctx)
	if err != nil {
		slog.Error("Failed to read mail account", "bill_id", b.ID, "error", err)
		return apperrors.InternalWrap(err, "Failed to read email configuration")
	}
	if !found {
		slog.Error("System email configuration not found", "bill_id", b.ID)
		return ErrConfigurationMissing
	}

	lineItems, err := RenderLineItems(n.templates, n.currency, b.Items)
	if err != nil {
		slog.Error("Failed to render line items", "bill_id", b.ID, "error", err)
		return apperrors.WrapAs(err, ErrCustomerEmailFailed)
	}
	total := FormatPrice(n.currency, b.Total)

	receipt, err := n.templates.Compose(notification.OrderReceiptNotice, b.CustomerEmail, map[string]any{
		"Status":       b.Status,
		"Total":        total,
		"TrackingCode": b.TrackingCode,
		"LineItems":    lineItems,
	})
	if err != nil {
		slog.Error("Failed to render order receipt", "bill_id", b.ID, "error", err)
		return apperrors.WrapAs(err, ErrCustomerEmailFailed)
	}
	if err := n.sender.Send(ctx, account, receipt); err != nil {
		slog.Error("Failed to send order receipt", "bill_id", b.ID, "email", b.CustomerEmail, "error", err)
		return apperrors.WrapAs(err, ErrCustomerEmailFailed)
	}
	slog.Info("Order receipt sent", "bill_id", b.ID, "email", b.CustomerEmail)

	adminAddress := n.adminAddress
	if adminAddress == "" {
		adminAddress = account.Address
	}
	comment := b.Comment
	if comment == "" {
		comment = "N/A"
	}

	notice, err := n.templates.Compose(notification.OrderAdminNotice, adminAddress, map[string]any{
		"CustomerName":    b.CustomerName,
		"CustomerEmail":   b.CustomerEmail,
		"CustomerPhone":   b.CustomerPhone,
		"ShippingAddress": b.ShippingAddress,
		"PaymentMethod":   b.PaymentMethod,
		"Comment":         comment,
		"Total":           total,
		"TrackingCode":    b.TrackingCode,
		"LineItems":       lineItems,
	})
	if err != nil {
		slog.Error("Failed to render admin order notice", "bill_id", b.ID, "error", err)
		return nil
	}
	if err := n.sender.Send(ctx, account, notice); err != nil {
		slog.Error("Failed to send admin order notice", "bill_id", b.ID, "to", adminAddress, "error", err)
		return nil
	}

	slog.Info("Admin order notice sent", "bill_id", b.ID, "to", adminAddress)
	return nil
}
