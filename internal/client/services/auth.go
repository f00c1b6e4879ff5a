// Package services contains application services for the duosync client.
// This file defines the authentication service: register, login, logout and
// the liveness probe.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/duosync/internal/common"
	"github.com/dmitrijs2005/duosync/internal/cryptox"
	"github.com/dmitrijs2005/duosync/internal/document"
)

// AuthClient is the part of the server API the auth service needs.
type AuthClient interface {
	Close() error
	Register(ctx context.Context, email string, salt []byte, verifier []byte) (document.Identity, error)
	GetSalt(ctx context.Context, email string) ([]byte, error)
	Login(ctx context.Context, email string, verifier []byte) (document.Identity, error)
	Logout()
	Ping(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Passwords handed to Register and Login are wiped before the call returns.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte) (document.Identity, error)
	Login(ctx context.Context, email string, password []byte) (document.Identity, error)
	Logout()
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client AuthClient
}

func NewAuthService(client AuthClient) AuthService {
	return &authService{client: client}
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", fmt.Errorf("%w: %q is not an email address", common.ErrorInvalidInput, email)
	}
	return email, nil
}

// Register creates an account. A random salt is generated, the password is
// stretched with it and only the verifier of the result is sent.
func (a *authService) Register(ctx context.Context, email string, password []byte) (document.Identity, error) {
	defer common.WipeByteArray(password)

	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	if len(password) == 0 {
		return "", fmt.Errorf("%w: empty password", common.ErrorInvalidInput)
	}

	salt := cryptox.NewSalt()
	key := cryptox.DeriveKey(password, salt)
	defer common.WipeByteArray(key)

	id, err := a.client.Register(ctx, email, salt, cryptox.MakeVerifier(key))
	if err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	return id, nil
}

// Login fetches the account salt, derives the verifier candidate and logs
// in, returning the identity the session is keyed by.
func (a *authService) Login(ctx context.Context, email string, password []byte) (document.Identity, error) {
	defer common.WipeByteArray(password)

	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}

	salt, err := a.client.GetSalt(ctx, email)
	if err != nil {
		return "", fmt.Errorf("get salt error: %w", err)
	}

	key := cryptox.DeriveKey(password, salt)
	defer common.WipeByteArray(key)

	id, err := a.client.Login(ctx, email, cryptox.MakeVerifier(key))
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}
	return id, nil
}

func (a *authService) Logout() {
	a.client.Logout()
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
