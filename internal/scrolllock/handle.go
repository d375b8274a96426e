package scrolllock

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/overlaykit/scrollgate/internal/event"
)

// Handle is one consumer's binding to a container's lock. The holder ID is
// generated once, when the handle is created, and stays stable for the
// handle's whole lifetime — it is the key the lock reference-counts on.
//
// A handle must be closed when its consumer tears down. Close releases the
// lock unconditionally (a harmless no-op if the consumer never acquired),
// which is what makes unmount ordering irrelevant: whichever consumer
// disappears last triggers restoration.
type Handle struct {
	id  string
	reg *Registry

	mu        sync.Mutex
	container Container
	lock      *Lock
	closed    bool
}

// ID returns the handle's holder identifier.
func (h *Handle) ID() string {
	return h.id
}

// Acquire requests scroll suspension on the bound container. Idempotent;
// no-op after Close.
func (h *Handle) Acquire() {
	h.mu.Lock()
	lock, closed := h.lock, h.closed
	h.mu.Unlock()
	if closed {
		return
	}
	lock.Acquire(h.id)
}

// Release withdraws this handle's interest in suspension. Idempotent, and
// valid even if Acquire was never called; no-op after Close.
func (h *Handle) Release() {
	h.mu.Lock()
	lock, closed := h.lock, h.closed
	h.mu.Unlock()
	if closed {
		return
	}
	lock.Release(h.id)
}

// Rebind moves the handle to a different container. Membership on the old
// container's lock is released first, so no stale holder is left behind,
// and the old entry is reclaimed if this handle was its last reference.
// The handle does not re-acquire on the new container; the consumer decides
// whether it still wants suspension.
func (h *Handle) Rebind(c Container) {
	h.mu.Lock()
	if h.closed || h.container == c {
		h.mu.Unlock()
		return
	}
	old, oldContainer := h.lock, h.container
	h.container = c
	h.mu.Unlock()

	old.Release(h.id)
	h.reg.unbind(oldContainer)

	h.reg.mu.Lock()
	e := h.reg.entryLocked(c)
	e.handles++
	lock := e.lock
	h.reg.mu.Unlock()

	h.mu.Lock()
	h.lock = lock
	h.mu.Unlock()

	h.reg.bus.Publish(event.NewHandleBoundEvent(c.Name(), h.id))
}

// Close releases the lock unconditionally and detaches the handle from the
// registry, reclaiming the container's entry if nothing else references it.
// Idempotent.
func (h *Handle) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	lock, container := h.lock, h.container
	h.mu.Unlock()

	lock.Release(h.id)
	h.reg.unbind(container)
	h.reg.bus.Publish(event.NewHandleClosedEvent(container.Name(), h.id))
}

// newHolderID generates a unique identifier for lock holders.
func newHolderID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// Fallback to timestamp-based ID
		return fmt.Sprintf("%d-%d", os.Getpid(), time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
