// Package notify envía los correos de confirmación de postulación.
package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/pkg/config"
)

var _ ports.Notifier = (*SMTPNotifier)(nil)

// sender abstrae gomail.Dialer para tests.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier envía correos de texto plano por SMTP.
type SMTPNotifier struct {
	from   string
	dialer sender
}

// NewSMTPNotifier construye el notificador con los datos SMTP de la configuración.
func NewSMTPNotifier(cfg config.MailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, msg ports.Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("notify: mensaje sin destinatarios")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("notify: enviar %q: %w", msg.Subject, err)
	}
	return nil
}
