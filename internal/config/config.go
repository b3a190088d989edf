package config

import (
	"os"
	"strings"
)

// Config holds everything read from the environment at startup. Secrets
// (database URL, mail credential, SendGrid key) are never hard-coded.
type Config struct {
	DatabaseURL string
	Port        string

	MailHost       string
	MailPort       string
	MailSender     string
	MailCredential string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
}

func Load() Config {
	cfg := Config{
		DatabaseURL:       getenv("DATABASE_URL"),
		Port:              getenv("PORT"),
		MailHost:          getenv("MAIL_HOST"),
		MailPort:          getenv("MAIL_PORT"),
		MailSender:        getenv("MAIL_SENDER"),
		MailCredential:    getenv("MAIL_CREDENTIAL"),
		SendGridAPIKey:    getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:  getenv("SENDGRID_FROM_NAME"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MailPort == "" {
		cfg.MailPort = "587"
	}
	if cfg.SendGridFromName == "" {
		cfg.SendGridFromName = "LTD Car Hiring Services"
	}
	return cfg
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
