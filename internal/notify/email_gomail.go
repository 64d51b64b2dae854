package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// MailSender alerts the shop inbox about each new booking.
type MailSender struct {
	host string
	port int
	user string
	pass string
	to   string
}

func NewMailSender(host string, port int, user, pass, to string) *MailSender {
	return &MailSender{
		host: host,
		port: port,
		user: user,
		pass: pass,
		to:   to,
	}
}

func (s *MailSender) SendConfirmation(_ context.Context, msg Confirmation) error {
	body := fmt.Sprintf(`
		<p>Nova marcação registada.</p>
		<ul>
			<li><strong>Cliente:</strong> %s</li>
			<li><strong>Telefone:</strong> %s</li>
			<li><strong>Horário:</strong> %s</li>
		</ul>
	`, msg.Name, msg.Phone, msg.FormattedTime)

	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", fmt.Sprintf("Nova marcação para %s", msg.FormattedTime))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	return d.DialAndSend(m)
}
