package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		err   error
		want  int
	}{
		{"not a terminal", 0, errors.New("inappropriate ioctl"), MinTerminalWidth},
		{"narrow", 40, nil, MinTerminalWidth},
		{"normal", 80, nil, 80},
		{"wide", 200, nil, MaxContentWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampWidth(tt.width, tt.err))
		})
	}
}

func TestHeaderRender(t *testing.T) {
	out := NewHeader("Send a Message", "contact-form send",
		Detail{Key: "Service", Value: "contact_service"},
		Detail{Key: "Template", Value: "contact_form"},
	).SetWidth(80).Render()

	assert.Contains(t, out, "SEND A MESSAGE")
	assert.Contains(t, out, "contact-form send")
	assert.Less(t, strings.Index(out, "contact_service"), strings.Index(out, "contact_form"), "details keep their order")
}

func TestSuccessResultRender(t *testing.T) {
	out := NewSuccessResult("Message Sent").
		AddDetail("Request", "abc-123").
		SetWidth(80).
		Render()

	assert.Contains(t, out, SuccessMarker)
	assert.Contains(t, out, "Message Sent")
	assert.Contains(t, out, "abc-123")
}

func TestFailureResultRender(t *testing.T) {
	r := NewFailureResult("Message not sent", errors.New("Timeout: send request failed"),
		"The email service did not respond in time.\nTroubleshooting:\n\n  • Check your internet connection")
	assert.Len(t, r.Troubleshooting, 3, "blank hint lines are dropped")

	out := r.SetWidth(80).Render()
	assert.Contains(t, out, FailureMarker)
	assert.Contains(t, out, "Timeout: send request failed")
	assert.Contains(t, out, "Check your internet connection")
}
