package scrolllock

import (
	"sync"

	"github.com/overlaykit/scrollgate/internal/event"
	"github.com/overlaykit/scrollgate/internal/logging"
)

// entry pairs a lock with the number of live handles bound to its container.
// The lock outlives its holders: a consumer that releases and re-acquires
// within its lifetime must get the same Lock object back, so an entry is
// only reclaimed once it is both unheld and unreferenced.
type entry struct {
	lock    *Lock
	handles int
}

// Registry maps containers to their locks. It is an explicit service
// object rather than package-level state so tests can construct and reset
// their own instances.
type Registry struct {
	mu    sync.Mutex
	locks map[Container]*entry
	bus   *event.Bus
	log   *logging.Logger
}

// NewRegistry creates an empty registry. A nil bus or logger is replaced
// with a no-op implementation.
func NewRegistry(bus *event.Bus, log *logging.Logger) *Registry {
	if bus == nil {
		bus = event.NewBus()
	}
	if log == nil {
		log = logging.NopLogger()
	}
	return &Registry{
		locks: make(map[Container]*entry),
		bus:   bus,
		log:   log,
	}
}

// Bind associates a new consumer with c's lock, creating the lock if this
// is the container's first consumer, and returns a handle scoped to that
// consumer. The caller must Close the handle on teardown.
func (r *Registry) Bind(c Container) *Handle {
	id := newHolderID()

	r.mu.Lock()
	e := r.entryLocked(c)
	e.handles++
	lock := e.lock
	r.mu.Unlock()

	r.bus.Publish(event.NewHandleBoundEvent(c.Name(), id))
	return &Handle{
		id:        id,
		reg:       r,
		container: c,
		lock:      lock,
	}
}

// GetOrCreate returns the lock for c, creating it if absent. Most callers
// want [Registry.Bind] instead; GetOrCreate exists for consumers that manage
// holder identity themselves.
func (r *Registry) GetOrCreate(c Container) *Lock {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entryLocked(c).lock
}

// Lookup returns the lock for c without creating one.
func (r *Registry) Lookup(c Container) (*Lock, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.locks[c]
	if !ok {
		return nil, false
	}
	return e.lock, true
}

// ReleaseIfUnused drops the registry entry for c if its lock is unheld and
// no handle references it. A held or referenced entry is left alone.
func (r *Registry) ReleaseIfUnused(c Container) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reclaimLocked(c)
}

// Len returns the number of containers with a live registry entry.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}

// Reset force-releases every lock, restoring any suspended containers, and
// drops all entries. Handles bound before the reset become inert.
func (r *Registry) Reset() {
	r.mu.Lock()
	locks := make([]*Lock, 0, len(r.locks))
	for _, e := range r.locks {
		locks = append(locks, e.lock)
	}
	r.locks = make(map[Container]*entry)
	r.mu.Unlock()

	for _, l := range locks {
		l.reset()
	}
}

// entryLocked returns c's entry, creating it if absent. Caller holds r.mu.
func (r *Registry) entryLocked(c Container) *entry {
	e, ok := r.locks[c]
	if !ok {
		e = &entry{lock: newLock(c, r.bus, r.log)}
		r.locks[c] = e
		r.log.Debug("lock created", "container", c.Name())
	}
	return e
}

// unbind records that a handle for c has gone away and reclaims the entry
// if nothing else needs it.
func (r *Registry) unbind(c Container) {
	r.mu.Lock()
	if e, ok := r.locks[c]; ok && e.handles > 0 {
		e.handles--
	}
	r.reclaimLocked(c)
	r.mu.Unlock()
}

// reclaimLocked removes c's entry when it is unheld and unreferenced.
// Caller holds r.mu.
func (r *Registry) reclaimLocked(c Container) {
	e, ok := r.locks[c]
	if !ok {
		return
	}
	if e.handles == 0 && !e.lock.Held() {
		delete(r.locks, c)
		r.log.Debug("lock reclaimed", "container", c.Name())
	}
}
