package services

import (
	"crypto/subtle"

	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/models"
)

// FallbackPassword is accepted for every account by DemoMatcher.
const FallbackPassword = "password"

// CredentialMatcher decides whether password unlocks account.
type CredentialMatcher interface {
	Match(account models.Account, password string) bool
}

// DemoMatcher is the simulated policy of the demo build. It accepts the
// stored password, the local part of the account email, or FallbackPassword.
//
// It grants access to any account whose email is known. Simulation only.
type DemoMatcher struct{}

func (DemoMatcher) Match(account models.Account, password string) bool {
	return (account.Password != "" && password == account.Password) ||
		password == account.LocalPart() ||
		password == FallbackPassword
}

// ExactMatcher accepts the stored password only.
type ExactMatcher struct{}

func (ExactMatcher) Match(account models.Account, password string) bool {
	if account.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) == 1
}

// MatcherForPolicy maps a config credential policy name to a matcher.
// Unknown names get DemoMatcher.
func MatcherForPolicy(policy string) CredentialMatcher {
	if policy == config.PolicyExact {
		return ExactMatcher{}
	}
	return DemoMatcher{}
}
