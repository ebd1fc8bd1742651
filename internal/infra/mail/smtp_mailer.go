// Package mail implements the confirmation mailer over plain SMTP.
package mail

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"stundenplan/config"
	"stundenplan/internal/domain/service"
)

// smtpMailer delivers confirmation keys through a configured SMTP relay.
type smtpMailer struct {
	cfg    config.SMTPConfig
	logger *slog.Logger
}

// noopMailer swallows all mail. It stands in whenever SMTP is not configured
// so registration can proceed without a relay (development, tests).
type noopMailer struct{}

func (n *noopMailer) SendConfirmation(string, string) error { return nil }
func (n *noopMailer) Enabled() bool                         { return false }

// NewMailer builds a ConfirmationMailer from config. Missing host or sender
// address disables outgoing mail entirely.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.ConfirmationMailer {
	if cfg.SMTP == nil {
		logger.Info("Mailer disabled, no smtp section configured")

		return &noopMailer{}
	}

	smtpCfg := *cfg.SMTP
	smtpCfg.Host = strings.TrimSpace(smtpCfg.Host)
	smtpCfg.Port = strings.TrimSpace(smtpCfg.Port)
	smtpCfg.User = strings.TrimSpace(smtpCfg.User)
	smtpCfg.From = strings.TrimSpace(smtpCfg.From)
	smtpCfg.Security = strings.ToLower(strings.TrimSpace(smtpCfg.Security))
	if smtpCfg.Security == "" {
		smtpCfg.Security = "starttls"
	}
	if smtpCfg.Port == "" {
		smtpCfg.Port = "587"
	}

	if smtpCfg.Host == "" || smtpCfg.From == "" {
		logger.Info("Mailer disabled, smtp host or from missing")

		return &noopMailer{}
	}

	logger.Info("Mailer enabled",
		slog.String("host", smtpCfg.Host),
		slog.String("port", smtpCfg.Port),
		slog.String("security", smtpCfg.Security),
	)

	return &smtpMailer{cfg: smtpCfg, logger: logger}
}

func (m *smtpMailer) Enabled() bool {
	return true
}

// SendConfirmation mails the one-time confirmation key to the registered
// address.
func (m *smtpMailer) SendConfirmation(to, key string) error {
	body := fmt.Sprintf(
		"Welcome!\n\nConfirm your account by posting your username together with this key:\n\n%s\n\nIf you did not register, ignore this message.",
		key,
	)
	msg := message(m.cfg.From, to, "Confirm your Stundenplan account", body)

	switch m.cfg.Security {
	case "ssl", "smtps":
		return m.sendSSL(to, msg)
	case "none":
		return smtp.SendMail(m.addr(), nil, m.cfg.From, []string{to}, msg)
	default:
		return m.sendStartTLS(to, msg)
	}
}

func (m *smtpMailer) addr() string {
	return net.JoinHostPort(m.cfg.Host, m.cfg.Port)
}

func (m *smtpMailer) sendStartTLS(to string, msg []byte) error {
	addr := m.addr()
	host, _, _ := net.SplitHostPort(addr)

	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}

	return m.submit(client, host, to, msg)
}

func (m *smtpMailer) sendSSL(to string, msg []byte) error {
	conn, err := tls.Dial("tcp", m.addr(), &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	return m.submit(client, m.cfg.Host, to, msg)
}

func (m *smtpMailer) submit(client *smtp.Client, host, to string, msg []byte) error {
	if m.cfg.User != "" && m.cfg.Pass != "" {
		auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()

		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func message(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	return []byte(b.String())
}
