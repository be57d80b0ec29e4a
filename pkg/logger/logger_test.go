package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_NivelExplicito(t *testing.T) {
	l := New(Config{Env: "production", Level: "debug", Service: "traslados-api"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelInvalidoCaeAInfo(t *testing.T) {
	for _, level := range []string{"", "verboso", "INFO "} {
		l := New(Config{Env: "production", Level: level})
		assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel %q", level)
	}
}
