package services

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

// SendContactNotification mails a contact submission to the configured admin
// address with the sender set as reply-to. It is a no-op when SMTP is not
// configured.
func SendContactNotification(msg *models.ContactMessage) error {
	cfg := config.App
	if cfg.SMTPHost == "" || cfg.ContactEmail == "" {
		return nil
	}

	from := cfg.SMTPUsername
	if from == "" {
		from = cfg.ContactEmail
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", cfg.ContactEmail)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", "Website contact: "+msg.Name)
	m.SetBody("text/plain", fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", msg.Name, msg.Email, msg.Message))

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return d.DialAndSend(m)
}
