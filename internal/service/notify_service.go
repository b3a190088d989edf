package service

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"time"

	"carhire/internal/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	smtpDialTimeout = 10 * time.Second
	smtpIOTimeout   = 30 * time.Second
)

// SendEmailWithSendGrid delivers a plain-text email through the SendGrid API.
func SendEmailWithSendGrid(cfg config.Config, toEmail, toName, subject, body string) error {
	if cfg.SendGridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not configured")
	}
	if cfg.SendGridFromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not configured")
	}

	from := mail.NewEmail(cfg.SendGridFromName, cfg.SendGridFromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewV3MailInit(from, subject, to, mail.NewContent("text/plain", body))

	client := sendgrid.NewSendClient(cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s failed: %w", toEmail, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	log.Printf("Email sent to %s (subject: %s), status %d", toEmail, subject, response.StatusCode)
	return nil
}

// SendEmailWithSMTP delivers a plain-text email through the configured mail
// relay: STARTTLS when the server offers it, PLAIN auth, one message, then
// quit. Dial and I/O are bounded so a dead relay cannot hang a request.
func SendEmailWithSMTP(cfg config.Config, to, subject, body string) error {
	if cfg.MailHost == "" {
		return fmt.Errorf("MAIL_HOST is not configured")
	}

	from := cfg.MailSender
	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body

	addr := net.JoinHostPort(cfg.MailHost, cfg.MailPort)
	conn, err := net.DialTimeout("tcp", addr, smtpDialTimeout)
	if err != nil {
		return fmt.Errorf("failed to connect to mail relay %s: %w", addr, err)
	}
	if err := conn.SetDeadline(time.Now().Add(smtpIOTimeout)); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set relay deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, cfg.MailHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake with %s failed: %w", addr, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: cfg.MailHost}); err != nil {
			return fmt.Errorf("starttls with %s failed: %w", addr, err)
		}
	}
	if ok, _ := client.Extension("AUTH"); ok && cfg.MailCredential != "" {
		auth := smtp.PlainAuth("", cfg.MailSender, cfg.MailCredential, cfg.MailHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message body: %w", err)
	}
	return client.Quit()
}
