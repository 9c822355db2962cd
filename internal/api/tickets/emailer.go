package tickets

import (
	"errors"
	"fmt"
	"net/smtp"
	"os"
)

// Mailer sends one HTML email. The SMTP implementation is swapped for a fake
// in tests.
type Mailer interface {
	Send(to, subject, html string) error
}

type smtpMailer struct{}

func (smtpMailer) Send(to, subject, html string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	if from == "" || password == "" || host == "" || port == "" {
		return errors.New("SMTP credentials not configured")
	}

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		html + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
