package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectLabelAndDisabled(t *testing.T) {
	tests := []struct {
		name         string
		status       Status
		errs         FieldErrors
		wantLabel    string
		wantDisabled bool
		wantNotice   Notice
	}{
		{"idle", StatusIdle, FieldErrors{}, LabelSend, false, NoticeNone},
		{"sending", StatusSending, FieldErrors{}, LabelSending, true, NoticeNone},
		{"success", StatusSuccess, FieldErrors{}, LabelSent, true, NoticeNone},
		{"dispatch failed", StatusFailed, FieldErrors{}, LabelRetry, false, NoticeFailure},
		{"field errors", StatusFailed, FieldErrors{Email: true}, LabelRetry, true, NoticeFieldErrors},
		{"idle with errors", StatusIdle, FieldErrors{Name: true}, LabelRetry, true, NoticeFieldErrors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Project(tt.status, tt.errs)
			assert.Equal(t, tt.wantLabel, v.Label)
			assert.Equal(t, tt.wantDisabled, v.Disabled)
			assert.Equal(t, tt.wantNotice, v.Notice)
		})
	}
}

func TestProjectPlaceholders(t *testing.T) {
	v := Project(StatusFailed, FieldErrors{Name: true, Message: true})

	assert.Equal(t, FieldView{Field: FieldName, Errored: true, Placeholder: "Please enter your name"}, v.Field(FieldName))
	assert.Equal(t, FieldView{Field: FieldEmail, Placeholder: "Email"}, v.Field(FieldEmail))
	assert.Equal(t, FieldView{Field: FieldSubject, Placeholder: "Subject"}, v.Field(FieldSubject))
	assert.Equal(t, "Please enter a message", v.Field(FieldMessage).Placeholder)

	v = Project(StatusIdle, FieldErrors{Email: true, Subject: true})
	assert.Equal(t, "Please enter a valid email", v.Field(FieldEmail).Placeholder)
	assert.Equal(t, "Please enter a subject", v.Field(FieldSubject).Placeholder)
}

func TestProjectUnknownField(t *testing.T) {
	v := Project(StatusIdle, FieldErrors{})
	assert.Equal(t, FieldView{}, v.Field(Field(len(AllFields))))
	assert.Equal(t, FieldView{}, v.Field(Field(-1)))
}

func TestProjectIsIdempotent(t *testing.T) {
	errs := FieldErrors{Subject: true}
	assert.Equal(t, Project(StatusFailed, errs), Project(StatusFailed, errs))
}
