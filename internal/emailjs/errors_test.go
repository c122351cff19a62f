package emailjs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/folio/contactform/internal/urls"
)

func TestClassifyNetworkError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"canceled", context.Canceled, ErrTypeCanceled},
		{"deadline", context.DeadlineExceeded, ErrTypeTimeout},
		{"wrapped deadline", &url.Error{Op: "Post", URL: "x", Err: context.DeadlineExceeded}, ErrTypeTimeout},
		{"dns", &url.Error{Op: "Post", URL: "x", Err: &net.DNSError{Name: "api.example", Err: "no such host"}}, ErrTypeDNS},
		{"refused", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, ErrTypeConnectionRefused},
		{"generic", errors.New("connection reset"), ErrTypeNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyNetworkError("send request failed", tt.err)
			assert.Equal(t, tt.want, got.Type)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.Nil(t, ClassifyNetworkError("x", nil))
}

func TestNewStatusErrorTruncatesBody(t *testing.T) {
	err := NewStatusError(400, strings.Repeat("x", 500))

	assert.Equal(t, ErrTypeRejected, err.Type)
	assert.Len(t, err.Body, 203)
	assert.True(t, strings.HasSuffix(err.Body, "..."))
}

func TestNewStatusErrorKeepsRunesWhole(t *testing.T) {
	// 199 ASCII bytes then a 3-byte rune straddling the limit.
	body := strings.Repeat("a", 199) + "€€"
	err := NewStatusError(400, body)

	assert.True(t, utf8.ValidString(err.Body))
	assert.Equal(t, strings.Repeat("a", 199)+"...", err.Body)

	short := NewStatusError(400, "héllo")
	assert.Equal(t, "héllo", short.Body)
}

func TestSendErrorMessage(t *testing.T) {
	err := &SendError{Type: ErrTypeRejected, Message: "service rejected the request with status 400", Body: "bad template"}
	assert.Equal(t, "Request Rejected: service rejected the request with status 400 (bad template)", err.Error())

	wrapped := &SendError{Type: ErrTypeNetwork, Message: "send request failed", Err: errors.New("reset")}
	assert.Equal(t, "Network Error: send request failed (caused by: reset)", wrapped.Error())
}

func TestHelpersOnForeignErrors(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", errors.New("plain"))

	assert.False(t, IsNetworkError(err))
	assert.False(t, IsTimeout(err))
	assert.False(t, IsAuthError(err))
	assert.False(t, IsRejected(err))
	assert.Equal(t, "An unexpected error occurred. Please try again.", GetTroubleshootingHint(err))
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "Timeout", ErrTypeTimeout.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
}

func TestTroubleshootingHints(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not initialized", fmt.Errorf("dispatch: %w", ErrNotInitialized), urls.PublicKey},
		{"auth", NewStatusError(403, ""), urls.Security},
		{"rejected", NewStatusError(422, "template not found"), urls.SendAPI},
		{"timeout", &SendError{Type: ErrTypeTimeout}, "dispatch.timeout"},
		{"dns", &SendError{Type: ErrTypeDNS}, "dispatch.endpoint"},
		{"server", NewStatusError(502, ""), "Try again later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetTroubleshootingHint(tt.err), tt.want)
		})
	}
}
