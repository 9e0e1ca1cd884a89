// Package mailer sends transactional email over SMTP.
package mailer

import (
	"fmt"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends messages through a single SMTP account.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a Mailer from the given config.
func New(cfg Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendPaymentConfirmation emails the buyer a receipt for a completed payment.
// Amount is in the smallest currency unit (e.g. cents).
func (m *Mailer) SendPaymentConfirmation(to string, amount int64, currency, vinylName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Payment confirmation")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Thank you for your purchase of %q.\n\nAmount charged: %.2f %s\n",
		vinylName, float64(amount)/100, strings.ToUpper(currency),
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send payment confirmation to %s: %w", to, err)
	}
	return nil
}
