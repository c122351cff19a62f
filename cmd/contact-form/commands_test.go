package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/contactform/internal/contact"
	"github.com/folio/contactform/internal/emailjs"
)

type scriptedDispatcher struct {
	ready error
	err   error
	sent  []contact.Request
}

func (d *scriptedDispatcher) Ready() error { return d.ready }

func (d *scriptedDispatcher) Dispatch(_ context.Context, req contact.Request) error {
	d.sent = append(d.sent, req)
	return d.err
}

func validFields() contact.Fields {
	return contact.Fields{Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "Hi"}
}

func labels(out string) []string {
	var got []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			got = append(got, strings.Trim(line, "[]"))
		}
	}
	return got
}

func TestSubmitOnceSuccess(t *testing.T) {
	d := &scriptedDispatcher{}
	ctrl := contact.NewController(d, contact.WithResetDelay(time.Millisecond))
	defer ctrl.Close()

	var out bytes.Buffer
	require.NoError(t, submitOnce(context.Background(), &out, ctrl, validFields()))

	assert.Equal(t, []string{contact.LabelSend, contact.LabelSending, contact.LabelSent}, labels(out.String()))
	require.Len(t, d.sent, 1)
	assert.Equal(t, validFields(), d.sent[0].Fields)
	assert.Contains(t, out.String(), "SEND A MESSAGE")
	assert.Contains(t, out.String(), d.sent[0].ID)
	assert.True(t, ctrl.Fields().IsEmpty())
}

func TestSubmitOnceDispatchFailure(t *testing.T) {
	d := &scriptedDispatcher{err: emailjs.NewStatusError(401, "bad key")}
	ctrl := contact.NewController(d)
	defer ctrl.Close()

	var out bytes.Buffer
	err := submitOnce(context.Background(), &out, ctrl, validFields())
	require.Error(t, err)
	assert.True(t, emailjs.IsAuthError(err))

	assert.Equal(t, []string{contact.LabelSend, contact.LabelSending, contact.LabelRetry}, labels(out.String()))
	assert.Contains(t, out.String(), "public key")
	assert.Equal(t, validFields(), ctrl.Fields(), "values are kept for a retry")
}

func TestSubmitOnceInvalidFields(t *testing.T) {
	d := &scriptedDispatcher{}
	ctrl := contact.NewController(d)
	defer ctrl.Close()

	fields := validFields()
	fields.Email = "nope"
	fields.Subject = ""

	var out bytes.Buffer
	err := submitOnce(context.Background(), &out, ctrl, fields)
	require.ErrorIs(t, err, contact.ErrInvalidFields)

	assert.Empty(t, d.sent)
	assert.Equal(t, []string{contact.LabelSend, contact.LabelRetry}, labels(out.String()))
	assert.Contains(t, out.String(), "Please enter a valid email")
	assert.Contains(t, out.String(), "Please enter a subject")
	assert.NotContains(t, out.String(), "Please enter your name")
}

func TestSubmitOnceNotConfigured(t *testing.T) {
	d := &scriptedDispatcher{ready: emailjs.ErrNotInitialized}
	ctrl := contact.NewController(d)
	defer ctrl.Close()

	var out bytes.Buffer
	err := submitOnce(context.Background(), &out, ctrl, validFields())
	require.ErrorIs(t, err, contact.ErrNotConfigured)
	assert.True(t, errors.Is(err, emailjs.ErrNotInitialized))

	assert.Empty(t, d.sent)
	assert.Contains(t, out.String(), "CONTACTFORM_EMAILJS_PUBLIC_KEY")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv("CONTACTFORM_CONFIG", "")
	t.Setenv("CONTACTFORM_EMAILJS_PUBLIC_KEY", "")
	t.Setenv("CONTACTFORM_EMAILJS_ENDPOINT", "")
	t.Cleanup(func() {
		configPath = ""
		forceInit = false
	})

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	out, err := run("config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = run("config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = run("config", "init", "--config", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = run("config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "service_id: contact_service")
	assert.Contains(t, out, "# public key: not set")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "contact-form "))
}
