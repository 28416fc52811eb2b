// Package bill stores placed orders and emails the order confirmation.
//
// Service.CreateBill validates and stores the order, then hands it to a
// Notifier exactly once. The Notifier renders the line-item table a single
// time and embeds it in two emails, both sent from the account configured in
// the shop settings:
//
//   - the receipt, sent to the customer first
//   - the admin notice, sent to the shop afterwards
//
// A receipt that cannot be delivered fails the call with
// ErrCustomerEmailFailed and the admin notice is skipped. An admin notice that
// cannot be delivered is logged and otherwise ignored.
package bill
