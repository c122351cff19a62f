package emailjs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/folio/contactform/internal/urls"
)

var (
	// ErrNotInitialized is returned when Send is called before Init.
	ErrNotInitialized = errors.New("emailjs: not initialized (call Init with the public key first)")

	// ErrAlreadyInitialized is returned by a second call to Init.
	ErrAlreadyInitialized = errors.New("emailjs: already initialized")

	// ErrEmptyPublicKey is returned by Init when the key is blank.
	ErrEmptyPublicKey = errors.New("emailjs: public key is empty")
)

// maxBodyPreview bounds how much of a response body a SendError keeps.
const maxBodyPreview = 200

// ErrorType represents the category of a send failure
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request did not finish in time
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the endpoint refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates the endpoint host could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates an unexpected HTTP status
	ErrTypeHTTP
	// ErrTypeRejected indicates the service refused the request (4xx)
	ErrTypeRejected
	// ErrTypeAuth indicates the public key was not accepted
	ErrTypeAuth
	// ErrTypeCanceled indicates the caller cancelled the send
	ErrTypeCanceled
	// ErrTypeEncode indicates the request body could not be built
	ErrTypeEncode
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeRejected:
		return "Request Rejected"
	case ErrTypeAuth:
		return "Authentication Error"
	case ErrTypeCanceled:
		return "Canceled"
	case ErrTypeEncode:
		return "Encode Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// SendError describes why a message could not be delivered.
type SendError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Body       string    // Trimmed response body (if any)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *SendError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Body != "" {
		msg += fmt.Sprintf(" (%s)", e.Body)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *SendError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes a transport error and returns a typed error
func ClassifyNetworkError(message string, err error) *SendError {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &SendError{Type: ErrTypeCanceled, Message: message, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &SendError{Type: ErrTypeTimeout, Message: message, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &SendError{
			Type:    ErrTypeDNS,
			Message: fmt.Sprintf("%s: cannot resolve %s", message, dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.ECONNREFUSED) {
		return &SendError{Type: ErrTypeConnectionRefused, Message: message, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return ClassifyNetworkError(message, urlErr.Err)
	}

	return &SendError{Type: ErrTypeNetwork, Message: message, Err: err}
}

// NewStatusError maps a non-200 response to a typed error
func NewStatusError(statusCode int, body string) *SendError {
	body = truncateBody(strings.TrimSpace(body), maxBodyPreview)

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &SendError{
			Type:       ErrTypeAuth,
			Message:    "public key was not accepted",
			StatusCode: statusCode,
			Body:       body,
		}
	case statusCode >= 400 && statusCode < 500:
		return &SendError{
			Type:       ErrTypeRejected,
			Message:    fmt.Sprintf("service rejected the request with status %d", statusCode),
			StatusCode: statusCode,
			Body:       body,
		}
	default:
		return &SendError{
			Type:       ErrTypeHTTP,
			Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
			StatusCode: statusCode,
			Body:       body,
		}
	}
}

// truncateBody cuts s to at most limit bytes without splitting a rune.
func truncateBody(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	n := 0
	for n < len(s) {
		_, size := utf8.DecodeRuneInString(s[n:])
		if n+size > limit {
			break
		}
		n += size
	}
	return s[:n] + "..."
}

func errorType(err error) (ErrorType, bool) {
	var sendErr *SendError
	if errors.As(err, &sendErr) {
		return sendErr.Type, true
	}
	return 0, false
}

// IsNetworkError checks if an error is a transport failure (including timeout, connection refused, DNS)
func IsNetworkError(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeNetwork || t == ErrTypeTimeout || t == ErrTypeConnectionRefused || t == ErrTypeDNS)
}

// IsTimeout checks if an error is a timeout
func IsTimeout(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeTimeout
}

// IsAuthError checks if the public key was refused
func IsAuthError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeAuth
}

// IsRejected checks if the service refused the request
func IsRejected(err error) bool {
	t, ok := errorType(err)
	return ok && (t == ErrTypeRejected || t == ErrTypeAuth)
}

// GetTroubleshootingHint returns operator-facing advice for an error.
// The form itself never shows it; the send command prints it to stderr.
func GetTroubleshootingHint(err error) string {
	if errors.Is(err, ErrNotInitialized) {
		return "Set CONTACTFORM_EMAILJS_PUBLIC_KEY to the public key from " + urls.PublicKey
	}

	t, ok := errorType(err)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch t {
	case ErrTypeTimeout:
		return strings.Join([]string{
			"The email service did not respond in time.",
			"Troubleshooting:",
			"  • Check your internet connection",
			"  • Raise dispatch.timeout in the config file",
		}, "\n")
	case ErrTypeConnectionRefused, ErrTypeDNS, ErrTypeNetwork:
		return strings.Join([]string{
			"Could not reach the email service.",
			"Troubleshooting:",
			"  • Check your internet connection",
			"  • Verify dispatch.endpoint in the config file",
		}, "\n")
	case ErrTypeAuth:
		return strings.Join([]string{
			"The email service did not accept the public key.",
			"Troubleshooting:",
			"  • Copy the public key again from " + urls.PublicKey,
			"  • Check that API access from non-browser apps is enabled at " + urls.Security,
		}, "\n")
	case ErrTypeRejected:
		return strings.Join([]string{
			"The email service rejected the request.",
			"Troubleshooting:",
			"  • Check the service and template ids",
			"  • Check the template uses the name, email, subject and message placeholders",
			"  • See " + urls.SendAPI,
		}, "\n")
	case ErrTypeHTTP:
		return "The email service returned an error. Try again later."
	default:
		return "An error occurred. Please check the error message for details."
	}
}
