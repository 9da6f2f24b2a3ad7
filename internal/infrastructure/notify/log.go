package notify

import (
	"context"
	"strings"

	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

var _ ports.Notifier = (*LogNotifier)(nil)

// LogNotifier escribe los correos en el log; se usa cuando no hay SMTP configurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador sobre el logger.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, msg ports.Message) error {
	n.log.Info().
		Str("to", strings.Join(msg.To, ",")).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("correo (solo log)")
	return nil
}
