package services

import (
	"testing"

	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestDemoMatcher(t *testing.T) {
	acc := models.Account{Email: "ann@example.com", Password: "secret1"}

	tests := []struct {
		password string
		want     bool
	}{
		{"secret1", true},
		{"ann", true},
		{FallbackPassword, true},
		{"Secret1", false},
		{"ANN", false},
		{"ann@example.com", false},
		{"wrong", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DemoMatcher{}.Match(acc, tt.password), tt.password)
	}
}

func TestDemoMatcher_EmptyStoredPasswordNeverMatchesItself(t *testing.T) {
	acc := models.Account{Email: "ann@example.com"}
	assert.False(t, DemoMatcher{}.Match(acc, ""))
	assert.True(t, DemoMatcher{}.Match(acc, "ann"))
}

func TestExactMatcher(t *testing.T) {
	acc := models.Account{Email: "ann@example.com", Password: "secret1"}
	assert.True(t, ExactMatcher{}.Match(acc, "secret1"))
	assert.False(t, ExactMatcher{}.Match(acc, "ann"))
	assert.False(t, ExactMatcher{}.Match(acc, FallbackPassword))
	assert.False(t, ExactMatcher{}.Match(models.Account{}, ""))
}

func TestMatcherForPolicy(t *testing.T) {
	assert.IsType(t, ExactMatcher{}, MatcherForPolicy("exact"))
	assert.IsType(t, DemoMatcher{}, MatcherForPolicy("demo"))
	assert.IsType(t, DemoMatcher{}, MatcherForPolicy(""))
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "restoring", StateRestoring.String())
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "unknown", SessionState(9).String())
}
