package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Home prints the profile card of the signed-in account.
func (a *App) Home(_ context.Context) error {
	u := a.auth.CurrentUser()
	if u == nil {
		printlnFn("Please login first.")
		return nil
	}

	name := u.Name
	if strings.TrimSpace(name) == "" {
		name = "U"
	}
	initials := u.Initials()
	if initials == "" {
		initials = "U"
	}

	info := lipgloss.JoinVertical(lipgloss.Left,
		a.theme.Label.Render("Hello,"),
		a.theme.Title.Render(name),
		u.Email,
	)
	header := lipgloss.JoinHorizontal(lipgloss.Center, a.theme.Avatar.Render(initials), " ", info)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		a.theme.Label.Render("Account status: ")+"Active",
		a.theme.Label.Render("Member since:   ")+"Today",
		a.theme.Label.Render("ID:             ")+u.ID,
	)

	printlnFn(a.theme.Card.Render(body))
	return nil
}
