// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer — boundary email keluar (OTP dsb). Kegagalan dikembalikan
// sebagai satu error generic, tanpa detail provider.
type Mailer interface {
	Send(toEmail, subject, body string) error
}

/* ===============================
   SendGrid
=================================*/

type SendgridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendgridMailer() *SendgridMailer {
	return &SendgridMailer{
		client:    sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY")),
		fromName:  os.Getenv("MAIL_FROM_NAME"),
		fromEmail: os.Getenv("MAIL_FROM_EMAIL"),
	}
}

func (m *SendgridMailer) Send(toEmail, subject, body string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail("", toEmail)
	msg := mail.NewSingleEmail(from, subject, to, body, body)
	resp, err := m.client.Send(msg)
	if err != nil {
		return fmt.Errorf("gagal mengirim email")
	}
	if resp.StatusCode >= 400 {
		log.Printf("[MAIL][ERROR] sendgrid status=%d body=%s", resp.StatusCode, resp.Body)
		return fmt.Errorf("gagal mengirim email")
	}
	return nil
}

/* ===============================
   Log-only (dev / tanpa API key)
=================================*/

type LogMailer struct{}

func (LogMailer) Send(toEmail, subject, body string) error {
	log.Printf("[MAIL][DEV] to=%s subject=%q body=%q", toEmail, subject, body)
	return nil
}

// FromEnv memilih implementasi: SENDGRID_API_KEY terisi → SendGrid, selain itu log-only.
func FromEnv() Mailer {
	if os.Getenv("SENDGRID_API_KEY") != "" {
		return NewSendgridMailer()
	}
	log.Println("⚠️ SENDGRID_API_KEY kosong, email hanya dicatat ke log.")
	return LogMailer{}
}
