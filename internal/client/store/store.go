// Package store persists the client's small pieces of local state: the
// bearer token and the theme override. It is a single key/value namespace
// backed by SQLite, surviving process restarts.
package store

import "context"

// Keys used by the application. The namespace is shared; writes are rare
// and human-paced (login, logout, theme toggle).
const (
	KeyToken       = "token"
	KeyColorScheme = "colorScheme"
)

// Repository is the secure key/value store boundary.
//
// Get returns the empty string for an absent key, not an error.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
