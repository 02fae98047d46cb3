// Package validation implements the client-side field rules the screens run
// before submitting a form. The email shape rule is shared with the session
// manager.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	MinNameLength     = 2
)

// Messages produced by the validators. Screens route an error to an input by
// the field name it contains, so keep "email", "password" and "name" in them.
const (
	MsgEmailRequired    = "email is required"
	MsgInvalidEmail     = "invalid email format"
	MsgPasswordRequired = "password is required"
	MsgPasswordTooShort = "password must be at least 6 characters"
	MsgNameRequired     = "name is required"
	MsgNameTooShort     = "name must be at least 2 characters"
)

// notSpaceOrAt matches one character that is neither '@' nor whitespace in
// the JavaScript sense (ASCII space and controls, \v, Unicode separators and
// U+FEFF).
const notSpaceOrAt = `[^\s\v\p{Z}\x{FEFF}@]`

// EmailPattern is deliberately permissive: local@domain.tld with no spaces
// and a single '@'.
var EmailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// IsEmail reports whether s has the accepted email shape. s is not trimmed.
func IsEmail(s string) bool {
	return EmailPattern.MatchString(s)
}

// Length counts characters, not bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Result is the outcome of one field validator.
type Result struct {
	Valid bool
	Error string
}

func ok() Result { return Result{Valid: true} }

func fail(msg string) Result { return Result{Error: msg} }

// Rule validates a single field value.
type Rule func(value string) Result

func Email(s string) Result {
	if strings.TrimSpace(s) == "" {
		return fail(MsgEmailRequired)
	}
	if !IsEmail(s) {
		return fail(MsgInvalidEmail)
	}
	return ok()
}

func Password(s string) Result {
	if s == "" {
		return fail(MsgPasswordRequired)
	}
	if Length(s) < MinPasswordLength {
		return fail(MsgPasswordTooShort)
	}
	return ok()
}

func Name(s string) Result {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fail(MsgNameRequired)
	}
	if Length(trimmed) < MinNameLength {
		return fail(MsgNameTooShort)
	}
	return ok()
}

// Form runs the rule registered for each field and returns the failing
// fields with their messages. Fields without a rule are skipped. An empty
// map means the form is valid.
func Form(fields map[string]string, rules map[string]Rule) map[string]string {
	errs := make(map[string]string)
	for field, value := range fields {
		rule, found := rules[field]
		if !found {
			continue
		}
		if res := rule(value); !res.Valid && res.Error != "" {
			errs[field] = res.Error
		}
	}
	return errs
}
