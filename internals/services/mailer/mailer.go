package mailer

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"fkmb_backend/internals/configs"
)

// Mailer mengirim email transaksional (reset password, notifikasi).
type Mailer interface {
	Send(toName, toEmail, subject, textBody, htmlBody string) error
}

// NewMailer memilih implementasi berdasarkan konfigurasi.
// Tanpa SENDGRID_API_KEY email hanya dicatat ke console (mode dev).
func NewMailer() Mailer {
	if configs.SendGridAPIKey == "" {
		log.Println("⚠️ SENDGRID_API_KEY kosong, email hanya dicetak ke console")
		return &consoleMailer{}
	}
	return &sendgridMailer{
		key:  configs.SendGridAPIKey,
		from: sgmail.NewEmail("FKMB", configs.MailFromAddress),
	}
}

type sendgridMailer struct {
	key  string
	from *sgmail.Email
}

func (m *sendgridMailer) Send(toName, toEmail, subject, textBody, htmlBody string) error {
	p := sgmail.NewPersonalization()
	p.Subject = "[FKMB] " + subject
	p.AddTos(sgmail.NewEmail(toName, toEmail))

	msg := sgmail.NewV3Mail()
	msg.SetFrom(m.from)
	msg.AddPersonalizations(p)
	msg.AddContent(
		sgmail.NewContent("text/plain", textBody),
		sgmail.NewContent("text/html", htmlBody),
	)

	req := sendgrid.GetRequest(m.key, "/v3/mail/send", "https://api.sendgrid.com")
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(msg)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("mengirim email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("mengirim email: status %d body %s", res.StatusCode, res.Body)
	}
	return nil
}

type consoleMailer struct{}

func (m *consoleMailer) Send(toName, toEmail, subject, textBody, _ string) error {
	log.Printf("📧 [MAIL] to=%s <%s> subject=%q\n%s", toName, toEmail, subject, textBody)
	return nil
}
