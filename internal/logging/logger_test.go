package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	require.NoError(t, Initialize("", ""))
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitializeWritesToFile(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	path := filepath.Join(t.TempDir(), "form.log")
	require.NoError(t, Initialize("warn", path))

	assert.True(t, GetLogger().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, GetLogger().Core().Enabled(zapcore.InfoLevel))
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	err := Initialize("chatty", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, GetLogger())
}

func TestLogDispatchSettingsOmitsKey(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogDispatchSettings("https://example.test/send", "svc", "tpl", true)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "svc", fields["service_id"])
	assert.Equal(t, true, fields["public_key_set"])
	assert.NotContains(t, fields, "public_key")
}
