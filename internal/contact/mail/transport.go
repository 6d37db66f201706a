// Package mail renders the contact emails and delivers them over SMTP.
package mail

import (
	"context"
	"strings"
)

// Address is a mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

// Email is a single HTML message ready for delivery.
type Email struct {
	From    Address
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Transport delivers one email per call.
type Transport interface {
	Send(ctx context.Context, e Email) error
}

// HeaderSafe strips CR and LF so user input cannot inject headers.
func HeaderSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
