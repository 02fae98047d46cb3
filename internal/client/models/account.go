// Package models defines the records the client persists.
package models

import (
	"strings"
	"unicode/utf8"
)

// Account is a locally registered user.
//
// Password is kept exactly as submitted. Accounts exist only on this device
// and authentication is simulated; never reuse this record for real
// credentials.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NormalizeEmail returns the form used for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(email)
}

// LocalPart returns the part of the email before the first '@'.
func (a Account) LocalPart() string {
	local, _, _ := strings.Cut(a.Email, "@")
	return local
}

// Valid reports whether a decoded snapshot carries enough to identify an
// account.
func (a Account) Valid() bool {
	return a.ID != "" && a.Email != ""
}

// Initials returns up to two upper-cased leading letters of the
// space-separated words in Name.
func (a Account) Initials() string {
	var b strings.Builder
	for _, word := range strings.Split(a.Name, " ") {
		r, size := utf8.DecodeRuneInString(word)
		if size == 0 {
			continue
		}
		b.WriteString(strings.ToUpper(string(r)))
	}

	initials := b.String()
	if utf8.RuneCountInString(initials) > 2 {
		initials = string([]rune(initials)[:2])
	}
	return initials
}
