package config

import (
	"fmt"
	"time"
)

// These identifiers can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/folio/contactform/internal/config.ServiceID=contact_service \
//	                   -X github.com/folio/contactform/internal/config.TemplateID=contact_form"
//
// A settings file may still override them.
var (
	// ServiceID is the EmailJS service the form sends through
	ServiceID = "contact_service"
	// TemplateID is the EmailJS template rendering the message
	TemplateID = "contact_form"
)

const (
	// CurrentVersion is the settings file schema version
	CurrentVersion = 1

	defaultEndpoint   = "https://api.emailjs.com/api/v1.0/email/send"
	defaultTimeout    = 15 * time.Second
	defaultResetDelay = 3000 * time.Millisecond
)

// Settings represents the entire settings file.
// The public key is never part of it; it only comes from the environment.
type Settings struct {
	Version  int              `yaml:"version"`
	Dispatch DispatchSettings `yaml:"dispatch"`
	Form     FormSettings     `yaml:"form"`
}

// DispatchSettings controls how submissions reach the email service.
type DispatchSettings struct {
	Endpoint   string        `yaml:"endpoint"`    // EmailJS send URL
	ServiceID  string        `yaml:"service_id"`  // Overrides the build-time ServiceID
	TemplateID string        `yaml:"template_id"` // Overrides the build-time TemplateID
	Timeout    time.Duration `yaml:"timeout"`     // Upper bound for one dispatch
}

// FormSettings controls form behaviour.
type FormSettings struct {
	ResetDelay time.Duration `yaml:"reset_delay"` // How long "Message Sent" stays up

	// ClearEmailOnReject clears the email input when validation fails.
	// Nil means the default (true).
	ClearEmailOnReject *bool `yaml:"clear_email_on_reject,omitempty"`
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Dispatch: DispatchSettings{
			Endpoint:   defaultEndpoint,
			ServiceID:  ServiceID,
			TemplateID: TemplateID,
			Timeout:    defaultTimeout,
		},
		Form: FormSettings{
			ResetDelay: defaultResetDelay,
		},
	}
}

// ClearEmail reports the effective clear-email-on-reject setting.
func (s *Settings) ClearEmail() bool {
	if s.Form.ClearEmailOnReject == nil {
		return true
	}
	return *s.Form.ClearEmailOnReject
}

// applyDefaults fills zero values left by a partial settings file.
func (s *Settings) applyDefaults() {
	defaults := NewSettings()
	if s.Dispatch.Endpoint == "" {
		s.Dispatch.Endpoint = defaults.Dispatch.Endpoint
	}
	if s.Dispatch.ServiceID == "" {
		s.Dispatch.ServiceID = defaults.Dispatch.ServiceID
	}
	if s.Dispatch.TemplateID == "" {
		s.Dispatch.TemplateID = defaults.Dispatch.TemplateID
	}
	if s.Dispatch.Timeout == 0 {
		s.Dispatch.Timeout = defaults.Dispatch.Timeout
	}
	if s.Form.ResetDelay == 0 {
		s.Form.ResetDelay = defaults.Form.ResetDelay
	}
}

// Validate checks the settings for values the form cannot work with.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported settings version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if s.Dispatch.Endpoint == "" {
		return fmt.Errorf("dispatch.endpoint cannot be empty")
	}
	if s.Dispatch.ServiceID == "" {
		return fmt.Errorf("dispatch.service_id cannot be empty")
	}
	if s.Dispatch.TemplateID == "" {
		return fmt.Errorf("dispatch.template_id cannot be empty")
	}
	if s.Dispatch.Timeout < 0 {
		return fmt.Errorf("dispatch.timeout must not be negative, got %s", s.Dispatch.Timeout)
	}
	if s.Form.ResetDelay <= 0 {
		return fmt.Errorf("form.reset_delay must be positive, got %s", s.Form.ResetDelay)
	}
	return nil
}
