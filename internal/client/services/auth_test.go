package services

import (
	"context"
	"errors"
	"testing"

	"github.com/hady-bs/blog-mobile-application/internal/client/session"
	"github.com/hady-bs/blog-mobile-application/internal/client/store"
)

// orderStore records the sequence of writes so tests can assert that the
// token lands in storage before the session flag flips.
type orderStore struct {
	memStore
	events  []string
	session *session.Session
	setErr  error
}

func (o *orderStore) Set(ctx context.Context, key, value string) error {
	if o.setErr != nil {
		return o.setErr
	}
	if o.session != nil && key == store.KeyToken {
		if o.session.IsLoggedIn() {
			o.events = append(o.events, "flag-before-token")
		}
	}
	o.events = append(o.events, "set:"+key)
	return o.memStore.Set(ctx, key, value)
}

func newAuthFixture(client *fakeClient) (AuthService, *orderStore, *session.Session) {
	st := &orderStore{memStore: memStore{values: map[string]string{}}}
	sess := session.New(st)
	st.session = sess
	return NewAuthService(client, st, sess), st, sess
}

func TestLogin_PersistsTokenBeforeFlippingSession(t *testing.T) {
	client := &fakeClient{loginToken: "opaque-token"}
	auth, st, sess := newAuthFixture(client)

	if err := auth.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if !sess.IsLoggedIn() {
		t.Fatalf("expected logged in after Login")
	}
	if st.values[store.KeyToken] != "opaque-token" {
		t.Fatalf("stored token = %q", st.values[store.KeyToken])
	}
	for _, e := range st.events {
		if e == "flag-before-token" {
			t.Fatalf("session flag flipped before the token was persisted")
		}
	}
}

func TestLogin_MissingFields(t *testing.T) {
	client := &fakeClient{}
	auth, _, _ := newAuthFixture(client)

	if err := auth.Login(context.Background(), "", "pw"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	if err := auth.Login(context.Background(), "alice", ""); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("err = %v, want ErrMissingFields", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected zero HTTP calls, got %d", client.calls)
	}
}

func TestLogin_BackendFailureLeavesSessionLoggedOut(t *testing.T) {
	client := &fakeClient{loginErr: errors.New("Invalid credentials")}
	auth, st, sess := newAuthFixture(client)

	if err := auth.Login(context.Background(), "alice", "bad"); err == nil {
		t.Fatalf("want login error")
	}
	if sess.IsLoggedIn() {
		t.Fatalf("session must stay logged out")
	}
	if _, ok := st.values[store.KeyToken]; ok {
		t.Fatalf("no token must be stored on failure")
	}
}

func TestLogin_PersistFailureDoesNotFlipSession(t *testing.T) {
	client := &fakeClient{loginToken: "opaque-token"}
	st := &orderStore{memStore: memStore{values: map[string]string{}}, setErr: errors.New("store broken")}
	sess := session.New(st)
	auth := NewAuthService(client, st, sess)

	if err := auth.Login(context.Background(), "alice", "pw"); err == nil {
		t.Fatalf("want persistence error")
	}
	if sess.IsLoggedIn() {
		t.Fatalf("session flag must not flip when the token was not persisted")
	}
}

func TestRegister_EstablishesSession(t *testing.T) {
	client := &fakeClient{registerToken: "fresh"}
	auth, st, sess := newAuthFixture(client)

	if err := auth.Register(context.Background(), "bob", "pw"); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if !sess.IsLoggedIn() {
		t.Fatalf("expected logged in after Register")
	}
	if st.values[store.KeyToken] != "fresh" {
		t.Fatalf("stored token = %q", st.values[store.KeyToken])
	}
}

func TestLogout_RequiresToken(t *testing.T) {
	client := &fakeClient{}
	auth, _, _ := newAuthFixture(client)

	if err := auth.Logout(context.Background()); !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
	if client.calls != 0 {
		t.Fatalf("expected zero HTTP calls, got %d", client.calls)
	}
}

func TestLogout_BackendFirstThenTokenRemoval(t *testing.T) {
	client := &fakeClient{}
	auth, st, sess := newAuthFixture(client)

	st.values[store.KeyToken] = "opaque"
	sess.Login()

	if err := auth.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if client.logoutToken != "opaque" {
		t.Fatalf("logout sent token %q", client.logoutToken)
	}
	if sess.IsLoggedIn() {
		t.Fatalf("expected logged out")
	}
	if _, ok := st.values[store.KeyToken]; ok {
		t.Fatalf("token must be removed after logout")
	}
}

func TestLogout_BackendFailureKeepsToken(t *testing.T) {
	client := &fakeClient{logoutErr: errors.New("HTTP error! status: 500")}
	auth, st, sess := newAuthFixture(client)

	st.values[store.KeyToken] = "opaque"
	sess.Login()

	if err := auth.Logout(context.Background()); err == nil {
		t.Fatalf("want logout error")
	}
	if st.values[store.KeyToken] != "opaque" {
		t.Fatalf("token must be kept when the backend rejects the logout")
	}
	if !sess.IsLoggedIn() {
		t.Fatalf("session must stay logged in when the backend rejects the logout")
	}
}
