// Package mail delivers the notices admin actions trigger: welcome
// credentials and password resets.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"accuport.cloud/fleet-service/pkg/common"
	"accuport.cloud/fleet-service/pkg/config"
)

const (
	welcomeSubject = "Welcome to AccuPort - Your Login Credentials"
	resetSubject   = "AccuPort - Password Reset"
)

// Sender is the mail surface the HTTP layer depends on. A disabled
// mailer still satisfies it and just drops the messages.
type Sender interface {
	SendWelcome(to, fullName, username, password string) error
	SendPasswordReset(to, fullName, username, password string) error
}

type Mailer struct {
	cfg config.SMTPConfig

	// send is swapped out in tests
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg, send: smtp.SendMail}
}

// Send delivers one plain-text message. With SMTP disabled it is a
// logged no-op, so callers never need to special-case configuration.
func (m *Mailer) Send(to, subject, body string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMail),
	)

	if !m.cfg.Enabled {
		logger.Info("Mail disabled, dropping message", zap.String("subject", subject))
		return nil
	}
	if !strings.Contains(to, "@") {
		return fmt.Errorf("invalid recipient address: %s", to)
	}

	from := m.cfg.FromAddress()
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, from, subject, body))
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if err := m.send(addr, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	logger.Info("Sent mail", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (m *Mailer) SendWelcome(to, fullName, username, password string) error {
	body := fmt.Sprintf(`Dear %s,

Your AccuPort account has been created.

Username: %s
Password: %s

Please change your password after your first login.

Best regards,
AccuPort Team`, fullName, username, password)
	return m.Send(to, welcomeSubject, body)
}

func (m *Mailer) SendPasswordReset(to, fullName, username, password string) error {
	body := fmt.Sprintf(`Dear %s,

Your AccuPort password has been reset.

Username: %s
New Password: %s

Please change your password after your next login.

Best regards,
AccuPort Team`, fullName, username, password)
	return m.Send(to, resetSubject, body)
}
