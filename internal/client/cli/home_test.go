package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_ShowsProfileCard(t *testing.T) {
	out := capturePrintln(t)

	a := newTestApp(&fakeAuth{current: &models.Account{ID: "id-7", Name: "ann marie lee", Email: "ann@example.com"}}, "")
	require.NoError(t, a.Home(context.Background()))

	s := out.String()
	assert.Contains(t, s, "AM")
	assert.Contains(t, s, "Hello,")
	assert.Contains(t, s, "ann marie lee")
	assert.Contains(t, s, "ann@example.com")
	assert.Contains(t, s, "id-7")
	assert.Contains(t, s, "Active")
}

func TestHome_EmptyNameFallsBackToU(t *testing.T) {
	out := capturePrintln(t)

	a := newTestApp(&fakeAuth{current: &models.Account{ID: "1", Email: "x@y.z"}}, "")
	require.NoError(t, a.Home(context.Background()))

	assert.Contains(t, out.String(), " U ")
}

func TestHome_SignedOut(t *testing.T) {
	out := capturePrintln(t)

	a := newTestApp(&fakeAuth{}, "")
	require.NoError(t, a.Home(context.Background()))
	assert.Contains(t, out.String(), "Please login first.")
}
