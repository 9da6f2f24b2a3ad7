package ports

import "context"

// Message correo de texto plano.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Notifier envía notificaciones a los usuarios. Los casos de uso tratan sus errores como no fatales.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
