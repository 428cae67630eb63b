package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetLogLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":         zerolog.WarnLevel,
		"debug":    zerolog.DebugLevel,
		"INFO":     zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"nonsense": zerolog.WarnLevel,
	}
	for in, want := range cases {
		t.Setenv("LOG_LEVEL", in)
		assert.Equal(t, want, getLogLevel(), "LOG_LEVEL=%q", in)
	}
}

func TestIsDevelopmentMode(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ENV", "")
	assert.True(t, isDevelopmentMode())

	t.Setenv("ENV", "production")
	assert.False(t, isDevelopmentMode())

	t.Setenv("ENVIRONMENT", "dev")
	assert.True(t, isDevelopmentMode())
}

func TestInitWritesJSONWithComponent(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "info")
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Init(&buf)
	SysInfo.Info().Msg("collected")

	assert.Contains(t, buf.String(), `"component":"sysinfo"`)
	assert.Contains(t, buf.String(), `"message":"collected"`)
}

func TestInitDefaultLevelIsQuiet(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "")
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Init(&buf)
	Report.Info().Msg("section done")

	assert.Empty(t, buf.String())
}
