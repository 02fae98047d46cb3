// Package services contains application services for the authshell client.
// This file defines the session manager: it owns the current user, restores
// it at start-up, and runs login, signup and logout against the account
// store.
package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/authshell/internal/client/repositories/storage"
	"github.com/dmitrijs2005/authshell/internal/client/validation"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

// SessionKey is the storage key holding the JSON snapshot of the current
// account.
const SessionKey = "@auth_user"

// AuthService is what screens and the router see of the session.
//
// Contract:
//   - Restore: load the persisted session once; until it returns, Restoring
//     reports true and State is StateRestoring.
//   - CurrentUser: a copy of the signed-in account, or nil.
//   - Login / Signup: nil on success, otherwise one of the Err* values of
//     this package. Signup signs the new account in.
//   - Logout: always leaves the session empty.
//
// Operations are serialised: at most one of Restore, Login, Signup and
// Logout runs at a time.
type AuthService interface {
	Restore(ctx context.Context)
	Restoring() bool
	State() SessionState
	CurrentUser() *models.Account
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, name, email, password string) error
	Logout(ctx context.Context)
}

// authService is the concrete AuthService. The account collection and the
// session snapshot live in the same storage but under different keys.
type authService struct {
	accounts accounts.Repository
	store    storage.Repository
	matcher  CredentialMatcher
	log      logging.Logger

	mu        sync.Mutex
	restored  bool
	restoring atomic.Bool
	current   atomic.Pointer[models.Account]
}

// NewAuthService constructs an AuthService in the restoring state. A nil
// matcher means DemoMatcher.
func NewAuthService(accounts accounts.Repository, store storage.Repository, matcher CredentialMatcher, log logging.Logger) AuthService {
	if matcher == nil {
		matcher = DemoMatcher{}
	}
	a := &authService{
		accounts: accounts,
		store:    store,
		matcher:  matcher,
		log:      log.With("component", "session"),
	}
	a.restoring.Store(true)
	return a
}

// Restore adopts the persisted snapshot as-is, without checking it against
// the account store. A missing, unreadable or malformed snapshot leaves the
// session empty. Only the first call does anything.
func (a *authService) Restore(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.restored {
		return
	}
	defer func() {
		a.restored = true
		a.restoring.Store(false)
	}()

	data, err := a.store.Get(ctx, SessionKey)
	if err != nil {
		a.log.Warn(ctx, "session could not be read, starting signed out", "error", err)
		return
	}
	if data == nil {
		a.log.Debug(ctx, "no saved session")
		return
	}

	var snapshot *models.Account
	if err := json.Unmarshal(data, &snapshot); err != nil || snapshot == nil || !snapshot.Valid() {
		a.log.Warn(ctx, "saved session is malformed, starting signed out", "key", SessionKey, "error", err)
		return
	}

	a.current.Store(snapshot)
	a.log.Info(ctx, "session restored", "user_id", snapshot.ID)
}

func (a *authService) Restoring() bool {
	return a.restoring.Load()
}

func (a *authService) State() SessionState {
	if a.restoring.Load() {
		return StateRestoring
	}
	if a.current.Load() != nil {
		return StateAuthenticated
	}
	return StateUnauthenticated
}

func (a *authService) CurrentUser() *models.Account {
	cur := a.current.Load()
	if cur == nil {
		return nil
	}
	c := *cur
	return &c
}

// Login checks the email shape and a non-empty password before touching
// storage, then applies the CredentialMatcher to the stored account.
func (a *authService) Login(ctx context.Context, email, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !validation.IsEmail(email) {
		return ErrInvalidEmailFormat
	}
	if password == "" {
		return ErrPasswordRequired
	}

	account, err := a.accounts.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		return ErrLoginFailed
	}
	if account == nil {
		return ErrUserNotFound
	}
	if !a.matcher.Match(*account, password) {
		return ErrIncorrectPassword
	}

	a.setSession(ctx, account)
	a.log.Info(ctx, "logged in", "user_id", account.ID)
	return nil
}

// Signup validates the input, refuses a taken email, creates the account
// and signs it in.
func (a *authService) Signup(ctx context.Context, name, email, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if !validation.IsEmail(email) {
		return ErrInvalidEmailFormat
	}
	if validation.Length(password) < validation.MinPasswordLength {
		return ErrPasswordTooShort
	}

	exists, err := a.accounts.Exists(ctx, email)
	if err != nil {
		a.log.Error(ctx, "signup failed", "error", err)
		return ErrSignupFailed
	}
	if exists {
		return ErrEmailAlreadyExists
	}

	account, err := a.accounts.Create(ctx, name, email, password)
	if err != nil {
		a.log.Error(ctx, "signup failed", "error", err)
		return ErrSignupFailed
	}

	a.setSession(ctx, account)
	a.log.Info(ctx, "signed up", "user_id", account.ID)
	return nil
}

// Logout clears the session in memory first, then removes the snapshot.
// A failed removal is logged only.
func (a *authService) Logout(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	prev := a.current.Swap(nil)

	if err := a.store.Delete(ctx, SessionKey); err != nil {
		a.log.Error(ctx, "failed to remove saved session", "error", err)
	}

	if prev != nil {
		a.log.Info(ctx, "logged out", "user_id", prev.ID)
	}
}

// setSession makes account current and persists a snapshot of it. The
// in-memory session is kept even when the write fails.
func (a *authService) setSession(ctx context.Context, account *models.Account) {
	snapshot := *account
	a.current.Store(&snapshot)

	data, err := json.Marshal(snapshot)
	if err == nil {
		err = a.store.Set(ctx, SessionKey, data)
	}
	if err != nil {
		a.log.Error(ctx, "failed to save session", "user_id", snapshot.ID, "error", err)
	}
}
