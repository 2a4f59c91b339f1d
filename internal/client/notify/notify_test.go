package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/hady-bs/blog-mobile-application/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeNotifier struct {
	permErr   error
	permAsked int
	sendErr   error
	sent      []Notification
}

func (f *fakeNotifier) RequestPermission(_ context.Context) error {
	f.permAsked++
	return f.permErr
}

func (f *fakeNotifier) Send(_ context.Context, n Notification) error {
	f.sent = append(f.sent, n)
	return f.sendErr
}

func TestNewBridge_RequestsPermissionOnce(t *testing.T) {
	f := &fakeNotifier{}
	NewBridge(context.Background(), f, testLogger())
	if f.permAsked != 1 {
		t.Fatalf("permission asked %d times, want 1", f.permAsked)
	}
}

func TestNewBridge_DenialDoesNotBlockNotify(t *testing.T) {
	f := &fakeNotifier{permErr: errors.New("denied")}
	b := NewBridge(context.Background(), f, testLogger())

	if err := b.Notify(context.Background(), "Error", "something broke"); err != nil {
		t.Fatalf("Notify err: %v", err)
	}
	if len(f.sent) != 1 {
		t.Fatalf("sent %d notifications, want 1", len(f.sent))
	}
}

func TestNotify_AssignsIDAndForwardsContent(t *testing.T) {
	f := &fakeNotifier{}
	b := NewBridge(context.Background(), f, testLogger())

	if err := b.Notify(context.Background(), "Error", "Failed to fetch blogs: boom"); err != nil {
		t.Fatalf("Notify err: %v", err)
	}

	n := f.sent[0]
	if n.ID == "" {
		t.Fatalf("expected a notification id")
	}
	if n.Title != "Error" || n.Body != "Failed to fetch blogs: boom" {
		t.Fatalf("notification = %+v", n)
	}
}

func TestNotify_DispatchErrorReturned(t *testing.T) {
	f := &fakeNotifier{sendErr: errors.New("dispatch broken")}
	b := NewBridge(context.Background(), f, testLogger())

	if err := b.Notify(context.Background(), "Error", "x"); err == nil {
		t.Fatalf("want dispatch error returned to the caller")
	}
}

func TestTerminalNotifier_WritesTitleAndBody(t *testing.T) {
	var buf bytes.Buffer
	n := &TerminalNotifier{Out: &buf}

	if err := n.Send(context.Background(), Notification{Title: "Error", Body: "down"}); err != nil {
		t.Fatalf("Send err: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "[Error]") || !strings.Contains(out, "down") {
		t.Fatalf("output = %q", out)
	}
}
