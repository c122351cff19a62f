package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is Linux-only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "contactform"), dir)

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	assert.Equal(t, CurrentVersion, s.Version)
	assert.Equal(t, "contact_service", s.Dispatch.ServiceID)
	assert.Equal(t, "contact_form", s.Dispatch.TemplateID)
	assert.Equal(t, 3*time.Second, s.Form.ResetDelay)
	assert.True(t, s.ClearEmail())
	assert.NoError(t, s.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, NewSettings(), s)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dispatch:
  template_id: portfolio_form
  timeout: 5s
form:
  clear_email_on_reject: false
`), 0600))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, s.Version)
	assert.Equal(t, "portfolio_form", s.Dispatch.TemplateID)
	assert.Equal(t, "contact_service", s.Dispatch.ServiceID)
	assert.Equal(t, 5*time.Second, s.Dispatch.Timeout)
	assert.Equal(t, 3*time.Second, s.Form.ResetDelay)
	assert.False(t, s.ClearEmail())
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unparseable", "dispatch: [", "failed to parse"},
		{"future version", "version: 2\n", "unsupported settings version"},
		{"negative delay", "form:\n  reset_delay: -1s\n", "reset_delay must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	keep := false

	s := NewSettings()
	s.Dispatch.ServiceID = "svc"
	s.Form.ClearEmailOnReject = &keep
	require.NoError(t, s.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Contact form settings"))
	assert.NotContains(t, string(data), "public_key:")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file must be renamed away")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CONTACTFORM_EMAILJS_PUBLIC_KEY", "pk_env")
	t.Setenv("CONTACTFORM_LOG_LEVEL", "debug")
	t.Setenv("CONTACTFORM_EMAILJS_ENDPOINT", "http://localhost:9999/send")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "pk_env", e.PublicKey)
	assert.Equal(t, "debug", e.LogLevel)

	s := NewSettings()
	e.Apply(s)
	assert.Equal(t, "http://localhost:9999/send", s.Dispatch.Endpoint)
}
