// Package logging provides structured logging for the contact form.
//
// This package wraps a process-wide zap logger. Logging is silent unless a
// level is configured, and output goes to a file or stderr because the
// interactive form draws on stdout.
//
// # Log Levels
//
//   - Debug: status transitions, dropped stale outcomes
//   - Info: dispatch started and delivered, startup settings
//   - Warn: recoverable configuration problems
//   - Error: dispatch failures, missing dispatch credential
//
// # Configuration
//
//	if err := logging.Initialize("debug", "/tmp/contact-form.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Components take a child logger:
//
//	log := logging.Named("emailjs")
//	log.Error("Send failed", zap.Error(err))
package logging
