// Package fetch provides the data-fetching state container shared by every
// view: one loading/error/data snapshot per resource, a guaranteed settle,
// and monotonic sequence numbers so a stale response never clobbers a newer
// one.
package fetch

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/hady-bs/blog-mobile-application/internal/logging"
)

// State is the per-resource fetch state. Transitions:
// Idle -> Loading -> {Success, Failed}, re-entrant from any terminal state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrStale reports that a load completed after a newer load had already
// been issued; its result was discarded without touching the snapshot.
var ErrStale = errors.New("stale response discarded")

// Snapshot is a point-in-time copy of a resource's state.
type Snapshot[T any] struct {
	State State
	Data  T
	Err   error
}

// ErrorHook receives load failures. Views wire it to the notification
// bridge for background fetches.
type ErrorHook func(ctx context.Context, err error)

// Resource holds the fetched data for one view. Concurrent loads are
// permitted; whichever was issued last wins, regardless of completion
// order.
type Resource[T any] struct {
	mu   sync.Mutex
	seq  uint64
	snap Snapshot[T]

	log  logging.Logger
	hook ErrorHook
}

// New returns an idle resource. hook may be nil.
func New[T any](log logging.Logger, hook ErrorHook) *Resource[T] {
	return &Resource[T]{log: log.With("component", "fetch"), hook: hook}
}

// Load runs fn and applies its result to the snapshot unless a newer Load
// was issued in the meantime, in which case ErrStale is returned and the
// snapshot is left alone. The loading state is always settled, success or
// failure.
func (r *Resource[T]) Load(ctx context.Context, fn func(ctx context.Context) (T, error)) error {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.snap.State = StateLoading
	r.snap.Err = nil
	r.mu.Unlock()

	reqID := uuid.NewString()
	r.log.Debug(ctx, "load started", "request", reqID)

	data, err := fn(ctx)

	r.mu.Lock()
	if seq != r.seq {
		r.mu.Unlock()
		r.log.Debug(ctx, "stale response discarded", "request", reqID)
		return ErrStale
	}
	if err != nil {
		r.snap.State = StateFailed
		r.snap.Err = err
		r.mu.Unlock()
		r.log.Debug(ctx, "load failed", "request", reqID, "error", err)
		if r.hook != nil {
			r.hook(ctx, err)
		}
		return err
	}
	r.snap = Snapshot[T]{State: StateSuccess, Data: data}
	r.mu.Unlock()
	r.log.Debug(ctx, "load finished", "request", reqID)
	return nil
}

// Snapshot returns a copy of the current state.
func (r *Resource[T]) Snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Reset drops any held data and returns the resource to idle. Invalidates
// in-flight loads.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	r.seq++
	r.snap = Snapshot[T]{}
	r.mu.Unlock()
}
