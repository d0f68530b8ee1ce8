package services

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// sendTimeout bounds a single SMTP delivery so a slow relay cannot hang
// the registration request behind it.
const sendTimeout = 10 * time.Second

type EmailService interface {
	// SendVerificationEmail delivers the confirmation link for the token.
	// The error is returned to the caller; whether a failed delivery fails
	// the surrounding workflow is the caller's decision.
	SendVerificationEmail(to, token string) error
}

type emailService struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, baseURL string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:  dialer,
		from:    fromEmail,
		baseURL: baseURL,
	}
}

func (s *emailService) SendVerificationEmail(to, token string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Click the link below to verify your email address")

	confirmationURL := fmt.Sprintf("%s/mail/confirm?token=%s", s.baseURL, token)
	body := fmt.Sprintf(`
		<div style="background-color: #f3f3f3; padding: 20px; font-family: Arial, sans-serif; text-align: center;">
		<h3 style="color: #333;">Click the link below to verify your email address:</h3>
		<a href="%s" style="color:#119744; font-weight: bold;">Verify Email</a>
		</div>
	`, confirmationURL)

	m.SetBody("text/html", body)

	errCh := make(chan error, 1)
	go func() { errCh <- s.dialer.DialAndSend(m) }()
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to send verification email: %w", err)
		}
		return nil
	case <-time.After(sendTimeout):
		return fmt.Errorf("send verification email to %s: timed out after %s", to, sendTimeout)
	}
}
