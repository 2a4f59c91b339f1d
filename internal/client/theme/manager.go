package theme

import (
	"context"
	"sync"

	"github.com/hady-bs/blog-mobile-application/internal/client/store"
	"github.com/hady-bs/blog-mobile-application/internal/logging"
)

// Appearance is the OS appearance boundary: the current system scheme plus
// a stream of change events. Changes delivers until the manager's watcher
// context is cancelled.
type Appearance interface {
	Scheme() Scheme
	Changes() <-chan Scheme
}

// StaticAppearance reports a fixed scheme and never emits changes. It is the
// default when the platform exposes no appearance events to a terminal.
type StaticAppearance struct {
	Current Scheme
}

func (a StaticAppearance) Scheme() Scheme         { return a.Current }
func (a StaticAppearance) Changes() <-chan Scheme { return nil }

// Manager tracks the active scheme, persists explicit toggles and follows
// OS appearance changes while running.
type Manager struct {
	mu         sync.Mutex
	scheme     Scheme
	store      store.Repository
	appearance Appearance
	log        logging.Logger

	watchOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewManager(st store.Repository, ap Appearance, log logging.Logger) *Manager {
	return &Manager{
		store:      st,
		appearance: ap,
		log:        log.With("component", "theme"),
		done:       make(chan struct{}),
	}
}

// Init loads the persisted override, falling back to the OS appearance, and
// starts the appearance watcher. Close releases the watcher.
func (m *Manager) Init(ctx context.Context) error {
	stored, err := m.store.Get(ctx, store.KeyColorScheme)
	if err != nil {
		return err
	}

	scheme := m.appearance.Scheme()
	if stored != "" {
		scheme = Scheme(stored)
	}

	m.mu.Lock()
	m.scheme = scheme
	m.mu.Unlock()

	m.watchOnce.Do(func() {
		watchCtx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		go m.watch(watchCtx)
	})
	return nil
}

// watch follows OS appearance changes for the lifetime of the manager.
func (m *Manager) watch(ctx context.Context) {
	defer close(m.done)

	changes := m.appearance.Changes()
	if changes == nil {
		<-ctx.Done()
		return
	}

	for {
		select {
		case s, ok := <-changes:
			if !ok {
				return
			}
			m.mu.Lock()
			m.scheme = s
			m.mu.Unlock()
			m.log.Info(ctx, "system appearance changed", "scheme", s)
		case <-ctx.Done():
			return
		}
	}
}

// Close releases the appearance subscription and waits for the watcher to
// stop.
func (m *Manager) Close() {
	if m.cancel != nil {
		m.cancel()
		<-m.done
	}
}

func (m *Manager) ColorScheme() Scheme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheme
}

// Theme returns the palette for the active scheme.
func (m *Manager) Theme() Palette {
	return PaletteFor(m.ColorScheme())
}

// Toggle flips between the two palettes. The in-memory state changes first;
// persistence is best effort and its error is returned for callers that
// care (no rollback on failure).
func (m *Manager) Toggle(ctx context.Context) error {
	m.mu.Lock()
	next := SchemeDark
	if m.scheme == SchemeDark {
		next = SchemeLight
	}
	m.scheme = next
	m.mu.Unlock()

	if err := m.store.Set(ctx, store.KeyColorScheme, string(next)); err != nil {
		m.log.Warn(ctx, "failed to persist color scheme", "error", err)
		return err
	}
	return nil
}
