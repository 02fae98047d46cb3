package services

import "errors"

// Outcomes of Login and Signup. Messages name the form field they concern
// ("email", "password", "name") so a screen can place them next to an input.
var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrNameRequired       = errors.New("name is required")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// Catch-alls for storage and other unexpected failures. The cause is
	// logged, never wrapped.
	ErrLoginFailed  = errors.New("login failed, please try again")
	ErrSignupFailed = errors.New("signup failed, please try again")
)
