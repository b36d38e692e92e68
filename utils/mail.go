package utils

import (
	"fmt"
	"net/smtp"
)

type MailConfig struct {
	Addr     string // host:port
	From     string
	Password string
	Host     string
}

// SendMail delivers a small HTML mail. Used for password-reset links
// only; anything heavier belongs in a real mail provider.
func SendMail(cfg MailConfig, to, subject, htmlBody string) error {
	if cfg.Addr == "" || cfg.From == "" {
		return fmt.Errorf("smtp not configured")
	}
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		cfg.From, to, subject, htmlBody,
	)
	auth := smtp.PlainAuth("", cfg.From, cfg.Password, cfg.Host)
	return smtp.SendMail(cfg.Addr, auth, cfg.From, []string{to}, []byte(msg))
}
