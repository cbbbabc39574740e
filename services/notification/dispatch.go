package notification

import (
	"context"
	"errors"

	"autohub/models"
	"autohub/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// EmailSender delivers mail over SMTP.
type EmailSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewEmailSender returns nil when host is empty.
func NewEmailSender(host string, port int, username, password string) *EmailSender {
	if host == "" {
		return nil
	}
	return &EmailSender{Host: host, Port: port, Username: username, Password: password, From: username}
}

func (e *EmailSender) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return errors.New("recipient address is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", e.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(e.Host, e.Port, e.Username, e.Password)
	if err := d.DialAndSend(m); err != nil {
		return err
	}
	utils.GetLogger().Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// logSender stands in for channels without a provider integration (sms, whatsapp).
type logSender struct {
	channel models.NotificationChannel
}

func (l logSender) Send(_ context.Context, to, subject, body string) error {
	utils.GetLogger().Info("Notification dispatched to log",
		zap.String("channel", string(l.channel)),
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}
