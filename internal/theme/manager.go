package theme

import (
	"sync"

	"github.com/alexisbeaulieu97/palettekit/internal/palette"
)

// Manager guards a palette graph shared between goroutines. Resolution runs
// under the read lock; anything that writes a slot or moves a redirector
// runs under the write lock.
type Manager struct {
	mu      sync.RWMutex
	palette *Palette
}

// NewManager wraps p.
func NewManager(p *Palette) *Manager {
	return &Manager{palette: p}
}

// View runs fn with read access.
func (m *Manager) View(fn func(p *Palette) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(m.palette)
}

// Update runs fn with write access inside a single notification batch.
func (m *Manager) Update(fn func(p *Palette) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.palette.Batch(func() error { return fn(m.palette) })
}

// Resolve resolves a value under the read lock.
func (m *Manager) Resolve(feature string, k palette.Kind, state palette.State) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette.ResolveValue(feature, k, state)
}

// ManagedResolve is the typed form of (*Manager).Resolve.
func ManagedResolve[T comparable](m *Manager, feature string, attr palette.Attribute[T], state palette.State) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return ResolveAs(m.palette, feature, attr, state)
}
