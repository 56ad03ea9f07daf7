// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"
)

type ContactEmail struct {
	Name    string
	Email   string
	Message string
}

type IEmailService interface {
	SendContactMessage(toEmail string, msg ContactEmail) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

// BuildContactMessage renders the forwarded contact form. Reply-To points at
// the visitor so support can answer directly.
func BuildContactMessage(from, fromName, toEmail string, msg ContactEmail) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromName)
	m.SetHeader("To", toEmail)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("Subject", fmt.Sprintf("Contact form: %s", msg.Name))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New contact message</h2>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p>%s</p>
		</div>
	`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>"),
	)

	m.SetBody("text/html", body)
	m.AddAlternative("text/plain", fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message))
	return m
}

func (s *emailService) SendContactMessage(toEmail string, msg ContactEmail) error {
	m := BuildContactMessage(s.senderEmail, s.senderName, toEmail, msg)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to forward contact message from %s: %v\n", msg.Email, err)
		return err
	}

	fmt.Printf("[MAILER] Contact message from %s forwarded to %s\n", msg.Email, toEmail)
	return nil
}
