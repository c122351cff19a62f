package contact

// Button labels.
const (
	LabelSend    = "Send Message"
	LabelSending = "Please wait..."
	LabelSent    = "Message Sent"
	LabelRetry   = "Try again"
)

var placeholders = map[Field]string{
	FieldName:    "Name",
	FieldEmail:   "Email",
	FieldSubject: "Subject",
	FieldMessage: "Message",
}

var prompts = map[Field]string{
	FieldName:    "Please enter your name",
	FieldEmail:   "Please enter a valid email",
	FieldSubject: "Please enter a subject",
	FieldMessage: "Please enter a message",
}

// Notice is the single kind of feedback the form shows at a time.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeFieldErrors
	NoticeFailure
)

// FieldView is the presentation of one input.
type FieldView struct {
	Field       Field
	Errored     bool
	Placeholder string
}

// ViewState is the read-only projection of controller state that a host
// renders. It holds no state of its own.
type ViewState struct {
	Status   Status
	Label    string
	Disabled bool
	Notice   Notice
	Fields   [len(AllFields)]FieldView
}

// Field returns the view of a single input. Unknown fields get a zero view.
func (v ViewState) Field(f Field) FieldView {
	if f < 0 || int(f) >= len(v.Fields) {
		return FieldView{}
	}
	return v.Fields[f]
}

// Project derives the view from a status and the current error flags.
func Project(status Status, errs FieldErrors) ViewState {
	v := ViewState{
		Status:   status,
		Label:    label(status, errs),
		Disabled: status == StatusSending || status == StatusSuccess || errs.Any(),
	}

	switch {
	case errs.Any():
		v.Notice = NoticeFieldErrors
	case status == StatusFailed:
		v.Notice = NoticeFailure
	}

	for _, f := range AllFields {
		fv := FieldView{Field: f, Errored: errs.Has(f), Placeholder: placeholders[f]}
		if fv.Errored {
			fv.Placeholder = prompts[f]
		}
		v.Fields[f] = fv
	}
	return v
}

func label(status Status, errs FieldErrors) string {
	switch {
	case status == StatusSending:
		return LabelSending
	case status == StatusSuccess:
		return LabelSent
	case status == StatusFailed || errs.Any():
		return LabelRetry
	default:
		return LabelSend
	}
}
