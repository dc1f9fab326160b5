package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetAndLevel(t *testing.T) {
	defer Set(Logger())

	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	SetLevel(zerolog.WarnLevel)

	log := Logger()
	log.Info().Msg("hidden")
	log.Warn().Str("curve", "y^2 = x^3 + 6").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"curve":"y^2 = x^3 + 6"`)
	assert.Contains(t, out, `"message":"shown"`)
}

func TestDisable(t *testing.T) {
	defer Set(Logger())

	var buf bytes.Buffer
	Set(zerolog.New(&buf))
	Disable()
	log := Logger()
	log.Error().Msg("dropped")
	assert.Empty(t, buf.String())
}
