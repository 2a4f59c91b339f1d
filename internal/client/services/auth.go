// Package services contains the application services composing the API
// client, the local settings store and the session state. This file defines
// the authentication service: register, login, logout.
package services

import (
	"context"
	"fmt"

	"github.com/hady-bs/blog-mobile-application/internal/client/api"
	"github.com/hady-bs/blog-mobile-application/internal/client/session"
	"github.com/hady-bs/blog-mobile-application/internal/client/store"
)

// AuthService defines the credential lifecycle operations.
//
// Contract:
//   - Register/Login: authenticate against the backend, persist the token,
//     then flip the session flag. The token is persisted before the flag so
//     the session never claims a login with no stored credential.
//   - Logout: notify the backend, then delete the token and clear the flag.
type AuthService interface {
	Register(ctx context.Context, userName, password string) error
	Login(ctx context.Context, userName, password string) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

type authService struct {
	client  api.Client
	store   store.Repository
	session *session.Session
}

func NewAuthService(client api.Client, st store.Repository, s *session.Session) AuthService {
	return &authService{client: client, store: st, session: s}
}

func (a *authService) Register(ctx context.Context, userName, password string) error {
	if userName == "" || password == "" {
		return ErrMissingFields
	}
	token, err := a.client.Register(ctx, userName, password)
	if err != nil {
		return err
	}
	return a.establish(ctx, token)
}

func (a *authService) Login(ctx context.Context, userName, password string) error {
	if userName == "" || password == "" {
		return ErrMissingFields
	}
	token, err := a.client.Login(ctx, userName, password)
	if err != nil {
		return err
	}
	return a.establish(ctx, token)
}

// establish persists the token and only then flips the session flag.
func (a *authService) establish(ctx context.Context, token string) error {
	if err := a.store.Set(ctx, store.KeyToken, token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	a.session.Login()
	return nil
}

// Logout posts to the backend first; the stored token is only removed after
// a successful response, matching the server-side session invalidation.
func (a *authService) Logout(ctx context.Context) error {
	token, err := a.store.Get(ctx, store.KeyToken)
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoToken
	}
	if err := a.client.Logout(ctx, token); err != nil {
		return err
	}
	return a.session.Logout(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
