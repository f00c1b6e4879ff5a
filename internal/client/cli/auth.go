package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/duosync/internal/client/client"
	"github.com/dmitrijs2005/duosync/internal/client/session"
	"github.com/dmitrijs2005/duosync/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// signIn starts the sync session; swapped in tests.
var signIn = session.SignIn

// Register prompts for an email and password and creates an account. The
// user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.authService.Register(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered as %s, type 'login' to sign in\n", id)
	return nil
}

// Login prompts for credentials, authenticates and starts the sync session.
//
// When the server cannot be reached the app switches to offline mode and
// the error is returned; there is no offline login.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		return errors.New("already logged in, logout first")
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		return err
	}

	s, err := signIn(ctx, a.store, id, email, a.sessionOptions()...)
	if err != nil {
		a.authService.Logout()
		if errors.Is(err, session.ErrRemoteUnavailable) {
			a.setMode(ModeOffline)
		}
		return fmt.Errorf("start session: %w", err)
	}

	a.mu.Lock()
	a.session, a.email, a.unread = s, email, 0
	a.mu.Unlock()
	a.setMode(ModeOnline)

	a.logger.Info(ctx, "logged in", "identity", string(id))
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout pushes pending changes, ends the session and forgets the tokens.
// The local state is cleared even when the final push fails.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	s := a.session
	a.session, a.email, a.unread = nil, "", 0
	a.mu.Unlock()

	var err error
	if s != nil {
		err = s.SignOut(ctx)
	}
	a.authService.Logout()
	return err
}
