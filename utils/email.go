package utils

import (
	"gopkg.in/gomail.v2"
)

// Mailer delivers one HTML message.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	from   string
	dialer *gomail.Dialer
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{
		from:   from,
		dialer: gomail.NewDialer(host, port, user, pass),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

// LogMailer is used when SMTP is not configured.
type LogMailer struct{}

func (LogMailer) Send(to, subject, _ string) error {
	Logger.WithField("to", to).Infof("email not sent (SMTP disabled): %s", subject)
	return nil
}
