package notification

import (
	"context"
	"errors"
)

// Account is the outbound mailbox every message is sent from. The password is
// the SMTP credential of that mailbox.
type Account struct {
	Address  string
	Password string
}

// Message is a fully rendered email
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a rendered message synchronously.
type Sender interface {
	Send(ctx context.Context, from Account, msg Message) error
}

// AccountSource looks up the outbound mail account. found is false when no
// account has been configured yet.
type AccountSource interface {
	MailAccount(ctx context.Context) (account Account, found bool, err error)
}

var ErrMissingRecipient = errors.New("email requires a 'To' address")

// StaticAccount is an AccountSource returning a fixed account
type StaticAccount struct {
	Account Account
}

func (s StaticAccount) MailAccount(ctx context.Context) (Account, bool, error) {
	if s.Account.Address == "" {
		return Account{}, false, nil
	}
	return s.Account, true, nil
}
