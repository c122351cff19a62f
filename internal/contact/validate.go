package contact

import (
	"regexp"
	"strings"
)

const (
	maxEmailLength  = 254
	maxLocalLength  = 64
	maxDomainLength = 255
	maxLabelLength  = 63
)

// emailPattern accepts local@domain.tld where the local part is dot-atom
// text and the top-level label starts with a letter and has at least two
// characters.
var emailPattern = regexp.MustCompile(
	"^[-!#$%&'*+/0-9=?A-Z^_a-z`{|}~](\\.?[-!#$%&'*+/0-9=?A-Z^_a-z`{|}~])*" +
		"@[a-zA-Z0-9](-*\\.?[a-zA-Z0-9])*\\.[a-zA-Z](-?[a-zA-Z0-9])+$",
)

// ValidEmail reports whether s is a structurally valid email address.
func ValidEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength {
		return false
	}

	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return false
	}
	local, domain := parts[0], parts[1]
	if len(local) > maxLocalLength || len(domain) > maxDomainLength {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if len(label) > maxLabelLength {
			return false
		}
	}

	return emailPattern.MatchString(s)
}

// Validate maps the current field values to per-field error flags.
// It has no side effects and always returns the same flags for the same input.
func Validate(fs Fields) FieldErrors {
	return FieldErrors{
		Name:    strings.TrimSpace(fs.Name) == "",
		Email:   fs.Email == "" || !ValidEmail(fs.Email),
		Subject: fs.Subject == "",
		Message: fs.Message == "",
	}
}
