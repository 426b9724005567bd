package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test-role")

	require.NotNil(t, log)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()

	require.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Debug().Str("key", "value").Msg("should go nowhere")
	})
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger("test-role", &buf)

	child := parent.GetChildLogger("collect")
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"collect"`)
	assert.Contains(t, buf.String(), `"role":"test-role"`)

	buf.Reset()
	parent.Info().Msg("hello")
	assert.NotContains(t, buf.String(), "component")
}
