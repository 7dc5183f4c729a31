// Package validation checks registration form input and reports
// field-level errors suitable for inline form rendering.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// FieldError is a single user-correctable problem with a form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// Errors collects field errors for one form submission.
type Errors []FieldError

func (e Errors) Empty() bool { return len(e) == 0 }

// Messages returns just the human-readable messages, in field order.
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return msgs
}

var (
	alphanumericRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	emailRe        = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe        = regexp.MustCompile(`^\+?[0-9][0-9\-\s]{6,18}[0-9]$`)
	digitRe        = regexp.MustCompile(`[0-9]`)
	symbolRe       = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// Registration validates the registration form. All rules run so the
// user sees every problem at once rather than one per submission.
func Registration(username, email, phone, password string) Errors {
	var errs Errors

	if err := Username(username); err != "" {
		errs = append(errs, FieldError{Field: "username", Message: err})
	}
	if err := Email(email); err != "" {
		errs = append(errs, FieldError{Field: "email", Message: err})
	}
	if phone != "" {
		if err := Phone(phone); err != "" {
			errs = append(errs, FieldError{Field: "phone", Message: err})
		}
	}
	if err := Password(password); err != "" {
		errs = append(errs, FieldError{Field: "password", Message: err})
	}

	return errs
}

// Username requires at least 5 alphanumeric characters.
func Username(username string) string {
	if len(username) < 5 {
		return "Username must be at least 5 characters long"
	}
	if len(username) > 30 {
		return "Username must not exceed 30 characters"
	}
	if !alphanumericRe.MatchString(username) {
		return "Username must contain only letters and numbers"
	}
	return ""
}

// Email checks basic address shape and a sane maximum length.
func Email(email string) string {
	if !emailRe.MatchString(email) {
		return "Please enter a valid email"
	}
	if len(email) > 254 {
		return "Email must not exceed 254 characters"
	}
	return ""
}

// Phone accepts digits with optional leading + and internal separators.
func Phone(phone string) string {
	if !phoneRe.MatchString(strings.TrimSpace(phone)) {
		return "Please enter a valid phone number"
	}
	return ""
}

// Password requires at least 8 characters with one lowercase letter, one
// uppercase letter, one digit, and one symbol.
func Password(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}
	if len(password) > 128 {
		return "Password must not exceed 128 characters"
	}

	hasLower := false
	hasUpper := false
	for _, r := range password {
		if unicode.IsLower(r) {
			hasLower = true
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	if !hasLower || !hasUpper || !digitRe.MatchString(password) || !symbolRe.MatchString(password) {
		return "Password must include one lowercase character, one uppercase character, a number, and a special character"
	}
	return ""
}
