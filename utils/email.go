package utils

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional email through SendGrid.
type Mailer struct {
	apiKey   string
	fromName string
	fromAddr string
}

func NewMailer(apiKey, fromName, fromAddr string) *Mailer {
	return &Mailer{apiKey: apiKey, fromName: fromName, fromAddr: fromAddr}
}

// Send delivers a single email with text and HTML bodies.
func (m *Mailer) Send(toName, toEmail, subject, textContent, htmlContent string) error {
	if m.apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set")
	}

	from := mail.NewEmail(m.fromName, m.fromAddr)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, textContent, htmlContent)
	client := sendgrid.NewSendClient(m.apiKey)

	response, err := client.Send(message)
	if err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("failed to send email")
		return err
	}

	if response.StatusCode >= 400 {
		log.Error().Int("status", response.StatusCode).Str("body", response.Body).Msg("sendgrid api error")
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	log.Info().Str("to", toEmail).Int("status", response.StatusCode).Msg("email sent")
	return nil
}
