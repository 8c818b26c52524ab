package utils

import (
	"fmt"
	"log"

	"devpath/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid. With no API key
// configured it logs the mail instead of sending, so local runs stay quiet.
type EmailService struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewEmailService(cfg *config.Config) *EmailService {
	svc := &EmailService{
		fromName:  cfg.EmailSenderName,
		fromEmail: cfg.EmailSender,
	}
	if cfg.SendgridAPIKey != "" {
		svc.client = sendgrid.NewSendClient(cfg.SendgridAPIKey)
	}
	return svc
}

// SendWelcomeEmail greets a newly signed-up admin.
func (s *EmailService) SendWelcomeEmail(name, email string) error {
	subject := "Welcome to DevPath"
	htmlBody := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your DevPath admin account is ready. Log in to start managing modules and sub-modules.</p>
	`, name)

	if s.client == nil {
		log.Printf("Email (not sent, no API key): to=%s subject=%q", email, subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	resp, err := s.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
