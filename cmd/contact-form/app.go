package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/folio/contactform/internal/config"
	"github.com/folio/contactform/internal/contact"
	"github.com/folio/contactform/internal/emailjs"
	"github.com/folio/contactform/internal/logging"
)

// configPath is the --config flag
var configPath string

// app is everything a command needs after startup.
type app struct {
	env      config.Env
	settings *config.Settings
	client   *emailjs.Client
}

// setup reads the environment and settings, starts logging and initialises
// the EmailJS client. A missing public key is not an error here: the form
// still opens and reports the problem on submit.
func setup() (*app, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	if err := logging.Initialize(env.LogLevel, env.LogFile); err != nil {
		return nil, err
	}

	path := configPath
	if path == "" {
		path = env.ConfigPath
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	env.Apply(settings)

	keySet := env.PublicKey != ""
	if keySet {
		if err := emailjs.Init(env.PublicKey); err != nil && !errors.Is(err, emailjs.ErrAlreadyInitialized) {
			return nil, fmt.Errorf("failed to initialize email service: %w", err)
		}
	} else {
		logging.Warn("EmailJS public key is not set; submissions will fail",
			zap.String("env", "CONTACTFORM_EMAILJS_PUBLIC_KEY"))
	}

	client := emailjs.NewClientWithURL(settings.Dispatch.Endpoint)
	if settings.Dispatch.Timeout > 0 {
		client.SetTimeout(settings.Dispatch.Timeout)
	}
	logging.LogDispatchSettings(settings.Dispatch.Endpoint, settings.Dispatch.ServiceID, settings.Dispatch.TemplateID, keySet)

	return &app{env: env, settings: settings, client: client}, nil
}

// newController builds a controller from the loaded settings.
func (a *app) newController(d contact.Dispatcher, opts ...contact.Option) *contact.Controller {
	base := []contact.Option{
		contact.WithIdentifiers(a.settings.Dispatch.ServiceID, a.settings.Dispatch.TemplateID),
		contact.WithResetDelay(a.settings.Form.ResetDelay),
		contact.WithDispatchTimeout(a.settings.Dispatch.Timeout),
		contact.WithClearEmailOnReject(a.settings.ClearEmail()),
	}
	return contact.NewController(d, append(base, opts...)...)
}
