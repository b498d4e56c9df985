// Package mailer delivers import reports by mail.
//
// It wraps an SMTP client and exposes a small Sender interface so the
// importer can be tested without a mail server. Delivery is optional:
// when no recipient is configured the mailer stays disabled and Send
// becomes a no-op.
package mailer
