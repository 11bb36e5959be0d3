// Package mailer sends loan reminder mail over SMTP.
package mailer

import (
	"gopkg.in/gomail.v2"
)

const subject = "Loan Late Book"

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendReminder sends one message addressed to every recipient at once.
// Per-recipient delivery results are not inspected.
func (s *SMTPSender) SendReminder(message string, recipients []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", message)

	return s.dialer.DialAndSend(m)
}
