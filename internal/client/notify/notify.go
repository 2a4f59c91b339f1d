// Package notify wraps device notifications: a one-time permission request
// plus immediate local dispatch. It is used to surface background fetch
// failures after the fact.
package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/hady-bs/blog-mobile-application/internal/logging"
)

// Notification is a single immediate local notification.
type Notification struct {
	ID    string
	Title string
	Body  string
}

// Notifier is the device notification boundary.
type Notifier interface {
	RequestPermission(ctx context.Context) error
	Send(ctx context.Context, n Notification) error
}

// Bridge fronts a Notifier for the views. Permission is requested once at
// construction; denial is logged and does not block later sends.
type Bridge struct {
	notifier Notifier
	log      logging.Logger
}

func NewBridge(ctx context.Context, n Notifier, log logging.Logger) *Bridge {
	b := &Bridge{notifier: n, log: log.With("component", "notify")}
	if err := n.RequestPermission(ctx); err != nil {
		b.log.Warn(ctx, "notification permissions not granted", "error", err)
	}
	return b
}

// Notify dispatches an immediate notification. The error is returned so
// direct callers can surface it; background callers ignore it.
func (b *Bridge) Notify(ctx context.Context, title, body string) error {
	n := Notification{ID: uuid.NewString(), Title: title, Body: body}
	if err := b.notifier.Send(ctx, n); err != nil {
		b.log.Warn(ctx, "notification dispatch failed", "id", n.ID, "error", err)
		return err
	}
	return nil
}

// TerminalNotifier renders notifications to a terminal writer with a bell.
// It stands in for the platform notification service.
type TerminalNotifier struct {
	Out io.Writer
}

func (t *TerminalNotifier) RequestPermission(ctx context.Context) error { return nil }

func (t *TerminalNotifier) Send(ctx context.Context, n Notification) error {
	_, err := fmt.Fprintf(t.Out, "\a[%s] %s\n", n.Title, n.Body)
	return err
}
