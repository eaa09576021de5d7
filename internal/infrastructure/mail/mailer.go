package mail

import (
	"crypto/tls"

	gomail "github.com/go-mail/mail/v2"

	"bfsi-los-backend/internal/config"
)

// Mailer wraps an SMTP dialer for reminder delivery.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) *Mailer {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	// STARTTLS on 587 works for the usual providers
	d.StartTLSPolicy = gomail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost}
	return &Mailer{dialer: d, from: cfg.MailFrom}
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
