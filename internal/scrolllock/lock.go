package scrolllock

import (
	"sync"

	"github.com/overlaykit/scrollgate/internal/event"
	"github.com/overlaykit/scrollgate/internal/logging"
)

// Lock is the reference-counted suspension gate for a single container.
// The first holder to acquire captures the container's current style and
// hides overflow; the last holder to release restores it. Holders in
// between observe no style change at all.
//
// Locks are created by a [Registry]; use [Registry.Bind] to obtain one
// indirectly through a [Handle].
type Lock struct {
	mu        sync.Mutex
	container Container
	// acquiredBy holds the IDs of active holders. Membership is a set:
	// re-acquiring an ID already present is a no-op, and a single release
	// removes the ID no matter how many times it acquired.
	acquiredBy map[string]struct{}

	// Captured on the unheld->held transition, nil otherwise.
	savedOverflow     *string
	savedPaddingRight *int

	bus *event.Bus
	log *logging.Logger
}

func newLock(c Container, bus *event.Bus, log *logging.Logger) *Lock {
	return &Lock{
		container:  c,
		acquiredBy: make(map[string]struct{}),
		bus:        bus,
		log:        log.WithContainer(c.Name()),
	}
}

// Acquire adds id to the holder set. On the transition from no holders to
// one holder it suspends the container; otherwise the container is left
// untouched. Acquiring with an id already present is a no-op.
func (l *Lock) Acquire(id string) {
	l.mu.Lock()
	if _, ok := l.acquiredBy[id]; ok {
		l.mu.Unlock()
		return
	}
	l.acquiredBy[id] = struct{}{}
	first := len(l.acquiredBy) == 1
	var saved string
	if first {
		saved = l.suspendLocked()
	}
	holders := len(l.acquiredBy)
	l.mu.Unlock()

	if first {
		l.log.Debug("scroll suspended", "holder", id, "saved_overflow", saved)
		l.bus.Publish(event.NewLockSuspendedEvent(l.container.Name(), saved))
	}
	l.bus.Publish(event.NewLockAcquiredEvent(l.container.Name(), id, holders))
}

// Release removes id from the holder set. On the transition from one holder
// to none it restores the style captured at suspension. Releasing an id that
// is not a holder is a no-op.
func (l *Lock) Release(id string) {
	l.mu.Lock()
	if _, ok := l.acquiredBy[id]; !ok {
		l.mu.Unlock()
		return
	}
	delete(l.acquiredBy, id)
	last := len(l.acquiredBy) == 0
	var restored string
	if last {
		restored = l.restoreLocked()
	}
	holders := len(l.acquiredBy)
	l.mu.Unlock()

	l.bus.Publish(event.NewLockReleasedEvent(l.container.Name(), id, holders))
	if last {
		l.log.Debug("scroll restored", "holder", id, "overflow", restored)
		l.bus.Publish(event.NewLockRestoredEvent(l.container.Name(), restored))
	}
}

// Held reports whether any holder is active.
func (l *Lock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.acquiredBy) > 0
}

// Holders returns the number of active holders.
func (l *Lock) Holders() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.acquiredBy)
}

// Container returns the surface this lock gates.
func (l *Lock) Container() Container {
	return l.container
}

// suspendLocked captures the container's style and hides overflow.
// For a root container the scrollbar gap is measured while the scrollbar
// is still shown; hiding overflow first would change the measurement.
func (l *Lock) suspendLocked() string {
	if root, ok := l.container.(Root); ok {
		gap := root.WindowWidth() - root.ContentWidth()
		if gap < 0 {
			gap = 0
		}
		pad := root.PaddingRight()
		l.savedPaddingRight = &pad
		root.SetPaddingRight(pad + gap)
	}
	ov := l.container.Overflow()
	l.savedOverflow = &ov
	l.container.SetOverflow(OverflowHidden)
	return ov
}

// restoreLocked puts the container back to the style captured at suspension
// and clears the saved values.
func (l *Lock) restoreLocked() string {
	restored := ""
	if l.savedOverflow != nil {
		restored = *l.savedOverflow
		l.container.SetOverflow(restored)
		l.savedOverflow = nil
	}
	if l.savedPaddingRight != nil {
		if root, ok := l.container.(Root); ok {
			root.SetPaddingRight(*l.savedPaddingRight)
		}
		l.savedPaddingRight = nil
	}
	return restored
}

// reset force-releases every holder, restoring the container if held.
// Used by Registry.Reset.
func (l *Lock) reset() {
	l.mu.Lock()
	held := len(l.acquiredBy) > 0
	l.acquiredBy = make(map[string]struct{})
	var restored string
	if held {
		restored = l.restoreLocked()
	}
	l.mu.Unlock()

	if held {
		l.bus.Publish(event.NewLockRestoredEvent(l.container.Name(), restored))
	}
}
