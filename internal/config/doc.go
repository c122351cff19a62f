// Package config loads the contact form settings.
//
// Settings come from three places:
//   - build-time identifiers (ServiceID, TemplateID) set with -ldflags
//   - an optional YAML file at the OS config location
//   - the environment, parsed with caarlos0/env
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/contactform/config.yaml or $HOME/.config/contactform/config.yaml
//   - macOS: $HOME/.config/contactform/config.yaml
//   - Windows: %LOCALAPPDATA%\contactform\config.yaml
//
// CONTACTFORM_CONFIG overrides the path.
//
// # Example
//
//	version: 1
//	dispatch:
//	  endpoint: https://api.emailjs.com/api/v1.0/email/send
//	  service_id: contact_service
//	  template_id: contact_form
//	  timeout: 15s
//	form:
//	  reset_delay: 3s
//	  clear_email_on_reject: true
//
// # Security
//
// The EmailJS public key is read only from CONTACTFORM_EMAILJS_PUBLIC_KEY and
// is never written to the settings file.
package config
