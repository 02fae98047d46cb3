package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/models"
	"github.com/dmitrijs2005/authshell/internal/client/services"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

// capturePrintln redirects printlnFn into a buffer for the test's lifetime.
func capturePrintln(t *testing.T) *strings.Builder {
	t.Helper()
	var mu sync.Mutex
	var sb strings.Builder
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Fprintln(&sb, a...)
	}
	t.Cleanup(func() { printlnFn = orig })
	return &sb
}

// stubInputs answers text prompts from texts in order and password
// prompts with password.
func stubInputs(t *testing.T, password string, texts ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubConfirm(t *testing.T, answer bool, err error) {
	t.Helper()
	orig := confirm
	confirm = func(*bufio.Reader, string, io.Writer) (bool, error) { return answer, err }
	t.Cleanup(func() { confirm = orig })
}

type fakeAuth struct {
	restoring bool
	restored  int
	current   *models.Account

	loginEmail, loginPass string
	loginErr              error

	signupName, signupEmail, signupPass string
	signupErr                           error

	loggedOut int
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) Restore(context.Context) {
	f.restored++
	f.restoring = false
}
func (f *fakeAuth) Restoring() bool { return f.restoring }
func (f *fakeAuth) State() services.SessionState {
	switch {
	case f.restoring:
		return services.StateRestoring
	case f.current != nil:
		return services.StateAuthenticated
	}
	return services.StateUnauthenticated
}
func (f *fakeAuth) CurrentUser() *models.Account {
	if f.current == nil {
		return nil
	}
	c := *f.current
	return &c
}
func (f *fakeAuth) Login(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.current = &models.Account{ID: "1", Name: "Ann Lee", Email: email}
	return nil
}
func (f *fakeAuth) Signup(_ context.Context, name, email, password string) error {
	f.signupName, f.signupEmail, f.signupPass = name, email, password
	if f.signupErr != nil {
		return f.signupErr
	}
	f.current = &models.Account{ID: "2", Name: name, Email: email}
	return nil
}
func (f *fakeAuth) Logout(context.Context) {
	f.loggedOut++
	f.current = nil
}

func newTestApp(auth services.AuthService, input string) *App {
	return &App{
		config: &config.Config{},
		auth:   auth,
		log:    logging.Nop(),
		theme:  DefaultTheme,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    io.Discard,
	}
}
