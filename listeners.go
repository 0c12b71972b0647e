package observer

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
)

const defaultAsyncLimit = 4096

// Registration represents a binding added to a Listeners registry.
// Call Close to remove that binding alone.
type Registration struct {
	listeners atomic.Pointer[Listeners]
	id        uint64
}

// ID returns the binding identifier, as reported by InvocationError.BindingID.
func (r *Registration) ID() uint64 {
	if r == nil {
		return 0
	}
	return r.id
}

// Close removes the binding from the registry.
// It is safe to call multiple times or on a nil Registration.
func (r *Registration) Close() {
	if r == nil {
		return
	}
	l := r.listeners.Swap(nil)
	if l == nil {
		return
	}
	l.mu.Lock()
	l.bindings = removeByID(l.bindings, r.id)
	l.mu.Unlock()
	l.logger.Debug("listener closed", "binding", r.id)
}

// Listeners is a registry of event bindings.
//
// Bindings fire in registration order. All methods are safe for
// concurrent use, and handlers may add or remove bindings or fire
// further events from within a dispatch.
type Listeners struct {
	id           string
	logger       log15.Logger
	errorHandler ErrorHandler
	nextID       atomic.Uint64
	asyncSem     chan struct{}

	mu       sync.RWMutex
	bindings []*binding
}

// New creates an empty registry with the given options.
func New(opts ...Option) *Listeners {
	id := uuid.NewString()
	logger := log15.New("listeners", id)
	logger.SetHandler(log15.DiscardHandler())

	l := &Listeners{
		id:       id,
		logger:   logger,
		asyncSem: make(chan struct{}, defaultAsyncLimit),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ID returns the unique identifier of this registry.
func (l *Listeners) ID() string {
	return l.id
}

// Len returns the number of registered bindings.
func (l *Listeners) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bindings)
}

// add appends a binding, assigning its ID.
func (l *Listeners) add(b *binding) *Registration {
	b.id = l.nextID.Add(1)
	l.appendBinding(b)

	l.logger.Debug("listener added", "kind", b.kind, "binding", b.id)
	r := &Registration{id: b.id}
	r.listeners.Store(l)
	return r
}

func (l *Listeners) appendBinding(b *binding) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bindings = append(l.bindings, b)
}

// remove drops every binding matching the triple and returns how many
// were removed.
func (l *Listeners) remove(kind Kind, target any, handler uintptr) int {
	removed := l.dropMatching(kind, target, handler)
	if removed > 0 {
		l.logger.Debug("listeners removed", "kind", kind, "count", removed)
	}
	return removed
}

func (l *Listeners) dropMatching(kind Kind, target any, handler uintptr) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := make([]*binding, 0, len(l.bindings))
	for _, b := range l.bindings {
		if !b.matches(kind, target, handler) {
			kept = append(kept, b)
		}
	}
	removed := len(l.bindings) - len(kept)
	if removed > 0 {
		l.bindings = kept
	}
	return removed
}

// snapshot returns a copy of the current bindings. Dispatch iterates
// the copy outside the lock.
func (l *Listeners) snapshot() []*binding {
	l.mu.RLock()
	defer l.mu.RUnlock()
	bindings := make([]*binding, len(l.bindings))
	copy(bindings, l.bindings)
	return bindings
}

// reportError calls the configured ErrorHandler, or logs the error.
func (l *Listeners) reportError(err error) {
	if l.errorHandler != nil {
		l.errorHandler(err)
		return
	}
	l.logger.Error("async fire failed", "err", err)
}

func removeByID(bindings []*binding, id uint64) []*binding {
	for i, b := range bindings {
		if b.id == id {
			out := make([]*binding, 0, len(bindings)-1)
			out = append(out, bindings[:i]...)
			return append(out, bindings[i+1:]...)
		}
	}
	return bindings
}
