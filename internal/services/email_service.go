package services

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

// Mailer sends transactional mail. Kept as an interface so the auth
// service can be tested without hitting SendGrid.
type Mailer interface {
	SendResetCode(toEmail, toName, code string, expiryMinutes int) error
}

type sendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridMailer(apiKey, fromEmail, fromName string) Mailer {
	return &sendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

const resetCodeHTML = `
<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
	<h2>Recuperación de contraseña</h2>
	<p>Hola %s,</p>
	<p>Usa el siguiente código para restablecer tu contraseña:</p>
	<p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">%s</p>
	<p>El código expira en %d minutos. Si no solicitaste este cambio, ignora este correo.</p>
</div>`

func (m *sendGridMailer) SendResetCode(toEmail, toName, code string, expiryMinutes int) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	subject := "Código para restablecer tu contraseña"
	plain := fmt.Sprintf("Tu código es %s. Expira en %d minutos.", code, expiryMinutes)
	html := fmt.Sprintf(resetCodeHTML, toName, code, expiryMinutes)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrExternalServiceFailure, err)
	}
	if resp.StatusCode >= 400 {
		utils.Logger.WithField("status", resp.StatusCode).Error("sendgrid rejected reset email")
		return fmt.Errorf("%w: sendgrid status %d", utils.ErrExternalServiceFailure, resp.StatusCode)
	}
	return nil
}
