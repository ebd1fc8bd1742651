// Package service defines interfaces for core, stateless domain logic.
package service

// ConfirmationMailer dispatches the one-time confirmation key to a freshly
// registered address. Delivery is out-of-band and best-effort: registration
// does not roll back when the mail fails.
type ConfirmationMailer interface {
	// SendConfirmation mails the confirmation key to the given address.
	SendConfirmation(to, key string) error

	// Enabled reports whether outgoing mail is configured at all.
	Enabled() bool
}
