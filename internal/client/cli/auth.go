package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authshell/internal/client/validation"
)

// getSimpleText, getPassword and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

// errInvalidForm is returned by a screen whose fields failed validation.
var errInvalidForm = errors.New("invalid form")

var (
	loginFields = []string{"email", "password"}
	loginRules  = map[string]validation.Rule{
		"email":    validation.Email,
		"password": validation.Password,
	}

	signupFields = []string{"name", "email", "password"}
	signupRules  = map[string]validation.Rule{
		"name":     validation.Name,
		"email":    validation.Email,
		"password": validation.Password,
	}
)

// readPasswordString reads a password and wipes the raw bytes.
func readPasswordString(a *App) (string, error) {
	pw, err := getPassword(a.out)
	if err != nil {
		return "", err
	}
	s := string(pw)
	clear(pw)
	return s, nil
}

// Login runs the sign-in screen: email and password are validated locally,
// then submitted to the session manager.
func (a *App) Login(ctx context.Context) error {
	printlnFn(a.theme.Title.Render("Sign In"))

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := readPasswordString(a)
	if err != nil {
		return err
	}

	values := map[string]string{"email": email, "password": password}
	if errs := validation.Form(values, loginRules); len(errs) > 0 {
		a.showFieldErrors(errs, loginFields...)
		return errInvalidForm
	}

	if err := a.auth.Login(ctx, email, password); err != nil {
		a.showSubmitError(ctx, err, loginFields...)
		return err
	}

	printlnFn(a.theme.Success.Render("Login successful"))
	return a.Home(ctx)
}

// Signup runs the account creation screen. A successful signup signs the
// new account in.
func (a *App) Signup(ctx context.Context) error {
	printlnFn(a.theme.Title.Render("Create Account"))

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := readPasswordString(a)
	if err != nil {
		return err
	}

	values := map[string]string{"name": name, "email": email, "password": password}
	if errs := validation.Form(values, signupRules); len(errs) > 0 {
		a.showFieldErrors(errs, signupFields...)
		return errInvalidForm
	}

	if err := a.auth.Signup(ctx, name, email, password); err != nil {
		a.showSubmitError(ctx, err, signupFields...)
		return err
	}

	printlnFn(a.theme.Success.Render("Account created"))
	return a.Home(ctx)
}

// Logout asks for confirmation and then ends the session.
func (a *App) Logout(ctx context.Context) error {
	ok, err := confirm(a.reader, "Are you sure you want to logout?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		printlnFn(a.theme.Muted.Render("Cancelled"))
		return nil
	}

	a.auth.Logout(ctx)
	printlnFn("Logged out")
	return nil
}
