package contact

import "fmt"

// Field identifies one of the four form inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldSubject
	FieldMessage
)

// AllFields lists the fields in form order.
var AllFields = [...]Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Key returns the template placeholder name for the field.
func (f Field) Key() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldSubject:
		return "subject"
	case FieldMessage:
		return "message"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// String returns the placeholder name.
func (f Field) String() string {
	return f.Key()
}

// ParseField maps a placeholder name back to its Field.
func ParseField(key string) (Field, error) {
	for _, f := range AllFields {
		if f.Key() == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", key)
}

// Fields holds the current values of the four inputs.
// It is a plain value: copies never alias each other.
type Fields struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Subject string `json:"subject" yaml:"subject"`
	Message string `json:"message" yaml:"message"`
}

// Get returns the value of a single field.
func (fs Fields) Get(f Field) string {
	switch f {
	case FieldName:
		return fs.Name
	case FieldEmail:
		return fs.Email
	case FieldSubject:
		return fs.Subject
	case FieldMessage:
		return fs.Message
	default:
		return ""
	}
}

// With returns a copy of fs with one field replaced.
func (fs Fields) With(f Field, value string) Fields {
	switch f {
	case FieldName:
		fs.Name = value
	case FieldEmail:
		fs.Email = value
	case FieldSubject:
		fs.Subject = value
	case FieldMessage:
		fs.Message = value
	}
	return fs
}

// IsEmpty reports whether every field is the empty string.
func (fs Fields) IsEmpty() bool {
	return fs == Fields{}
}

// TemplateParams returns the fields keyed by template placeholder name.
func (fs Fields) TemplateParams() map[string]string {
	params := make(map[string]string, len(AllFields))
	for _, f := range AllFields {
		params[f.Key()] = fs.Get(f)
	}
	return params
}

// FieldErrors holds one validity-failure flag per field.
type FieldErrors struct {
	Name    bool
	Email   bool
	Subject bool
	Message bool
}

// Any reports whether at least one flag is set.
func (e FieldErrors) Any() bool {
	return e.Name || e.Email || e.Subject || e.Message
}

// Has reports whether the flag for f is set.
func (e FieldErrors) Has(f Field) bool {
	switch f {
	case FieldName:
		return e.Name
	case FieldEmail:
		return e.Email
	case FieldSubject:
		return e.Subject
	case FieldMessage:
		return e.Message
	default:
		return false
	}
}

// Clear returns a copy of e with the flag for f unset.
func (e FieldErrors) Clear(f Field) FieldErrors {
	switch f {
	case FieldName:
		e.Name = false
	case FieldEmail:
		e.Email = false
	case FieldSubject:
		e.Subject = false
	case FieldMessage:
		e.Message = false
	}
	return e
}

// Fields returns the flagged fields in form order.
func (e FieldErrors) Fields() []Field {
	var flagged []Field
	for _, f := range AllFields {
		if e.Has(f) {
			flagged = append(flagged, f)
		}
	}
	return flagged
}
