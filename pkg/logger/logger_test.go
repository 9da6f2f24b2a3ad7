package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""), "nivel desconocido cae a info")
}

func TestNewWithWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info().Msg("no debe salir")
	log.Warn().Str("job", "backend-engineer").Msg("aviso")

	out := buf.String()
	assert.NotContains(t, out, "no debe salir")
	assert.Contains(t, out, `"job":"backend-engineer"`)
	assert.Contains(t, out, `"level":"warn"`)
}

func TestNop_NoEscribe(t *testing.T) {
	log := Nop()
	log.Error().Msg("silencio")
	assert.Equal(t, zerolog.Disabled, log.Zerolog().GetLevel())
}
