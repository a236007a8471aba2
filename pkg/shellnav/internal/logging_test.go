package internal

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), "level %q", raw)
	}
}

func TestLoggersAreSingletons(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())
	assert.Same(t, GetInternalLogger(), GetInternalLogger())
	assert.NotSame(t, GetLogger(), GetInternalLogger())
}
