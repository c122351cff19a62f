package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the values read from the process environment.
type Env struct {
	// PublicKey is the EmailJS public key, the only secret the form needs.
	PublicKey  string `env:"CONTACTFORM_EMAILJS_PUBLIC_KEY"`
	LogLevel   string `env:"CONTACTFORM_LOG_LEVEL"`
	LogFile    string `env:"CONTACTFORM_LOG_FILE"`
	ConfigPath string `env:"CONTACTFORM_CONFIG"`
	Endpoint   string `env:"CONTACTFORM_EMAILJS_ENDPOINT"`
}

// LoadEnv parses the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply overlays environment overrides onto file settings.
func (e Env) Apply(s *Settings) {
	if e.Endpoint != "" {
		s.Dispatch.Endpoint = e.Endpoint
	}
}
