package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/pkg/logger"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSMTPNotifier_ArmaCabeceras(t *testing.T) {
	d := &fakeDialer{}
	n := &SMTPNotifier{from: "no-reply@empleos.local", dialer: d}

	err := n.Send(context.Background(), ports.Message{
		To:      []string{"ana@mail.io"},
		Subject: "Application Received: Backend Engineer",
		Body:    "hola",
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"no-reply@empleos.local"}, d.sent[0].GetHeader("From"))
	assert.Equal(t, []string{"ana@mail.io"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Application Received: Backend Engineer"}, d.sent[0].GetHeader("Subject"))
}

func TestSMTPNotifier_Errores(t *testing.T) {
	n := &SMTPNotifier{from: "x@y.z", dialer: &fakeDialer{err: errors.New("connection refused")}}
	assert.Error(t, n.Send(context.Background(), ports.Message{To: []string{"a@b.c"}, Subject: "s"}))
	assert.Error(t, n.Send(context.Background(), ports.Message{Subject: "sin destinatario"}))
}

func TestLogNotifier_EscribeEnLog(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(logger.NewWithWriter(&buf, "info"))
	require.NoError(t, n.Send(context.Background(), ports.Message{To: []string{"hr@acme.io"}, Subject: "New Applicant for Backend Engineer"}))
	assert.Contains(t, buf.String(), "New Applicant for Backend Engineer")
	assert.Contains(t, buf.String(), "hr@acme.io")
}
