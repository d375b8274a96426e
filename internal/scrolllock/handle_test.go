package scrolllock

import (
	"testing"

	"github.com/overlaykit/scrollgate/internal/event"
)

func TestBindAssignsStableUniqueIDs(t *testing.T) {
	reg := newTestRegistry(t)
	c := newTestContainer("main")

	h1 := reg.Bind(c)
	h2 := reg.Bind(c)

	if h1.ID() == "" || h2.ID() == "" {
		t.Fatal("handle ID is empty")
	}
	if h1.ID() == h2.ID() {
		t.Errorf("two handles share ID %q", h1.ID())
	}
}

func TestHandlesShareOneLock(t *testing.T) {
	reg := newTestRegistry(t)
	c := newTestContainer("main")

	h1 := reg.Bind(c)
	h2 := reg.Bind(c)

	h1.Acquire()
	h2.Acquire()

	lock, ok := reg.Lookup(c)
	if !ok {
		t.Fatal("no lock for container")
	}
	if got := lock.Holders(); got != 2 {
		t.Fatalf("Holders() = %d, want 2 (side effects must be shared, not duplicated)", got)
	}

	h1.Release()
	if got := c.Overflow(); got != OverflowHidden {
		t.Errorf("overflow = %q after first release, want %q", got, OverflowHidden)
	}

	h2.Release()
	if got := c.Overflow(); got != "auto" {
		t.Errorf("overflow = %q after second release, want %q", got, "auto")
	}
}

func TestCloseReleasesUnconditionally(t *testing.T) {
	reg := newTestRegistry(t)
	c := newTestContainer("main")

	h := reg.Bind(c)
	h.Acquire()

	h.Close()

	if got := c.Overflow(); got != "auto" {
		t.Errorf("overflow = %q after Close, want %q", got, "auto")
	}
	if got := reg.Len(); got != 0 {
		t.Errorf("Len() = %d after Close, want 0", got)
	}
}

func TestCloseWithoutAcquire(t *testing.T) {
	reg := newTestRegistry(t)
	c := newTestContainer("main")

	h := reg.Bind(c)
	h.Close()

	if got := c.Overflow(); got != "auto" {
		t.Errorf("overflow = %q, want %q (never suspended)", got, "auto")
	}
	if got := reg.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestCloseIdempotent(t *testing.T) {
	reg := newTestRegistry(t)
	c := newTestContainer("main")

	h1 := reg.Bind(c)
	h2 := reg.Bind(c)
	h1.Acquire()
	h2.Acquire()

	// Double-close of h1 must not decrement the handle count twice or
	// disturb h2's hold.
	h1.Close()
	h1.Close()

	if got := c.Overflow(); got != OverflowHidden {
		t.Errorf("overflow = %q, want %q (h2 still holds)", got, OverflowHidden)
	}
	if got := reg.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	h2.Close()
	if got := c.Overflow(); got != "auto" {
		t.Errorf("overflow = %q after final close, want %q", got, "auto")
	}
}

func TestOperationsAfterCloseAreInert(t *testing.T) {
	reg := newTestRegistry(t)
	c := newTestContainer("main")

	h := reg.Bind(c)
	h.Close()

	h.Acquire()
	h.Release()

	if got := c.Overflow(); got != "auto" {
		t.Errorf("overflow = %q after post-close acquire, want %q", got, "auto")
	}
	if got := reg.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

// permutations returns every ordering of 0..n-1.
func permutations(n int) [][]int {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			perm := make([]int, n)
			copy(perm, base)
			out = append(out, perm)
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			recurse(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	recurse(0)
	return out
}

func TestTeardownOrderIndependence(t *testing.T) {
	// Three holders, torn down in every possible order. The style must be
	// restored only after the last close, whatever the order.
	for _, perm := range permutations(3) {
		reg := newTestRegistry(t)
		c := newTestContainer("main")

		handles := []*Handle{reg.Bind(c), reg.Bind(c), reg.Bind(c)}
		for _, h := range handles {
			h.Acquire()
		}

		for step, idx := range perm {
			handles[idx].Close()

			last := step == len(perm)-1
			got := c.Overflow()
			if last && got != "auto" {
				t.Errorf("perm %v: overflow = %q after last close, want %q", perm, got, "auto")
			}
			if !last && got != OverflowHidden {
				t.Errorf("perm %v: overflow = %q after close %d, want %q", perm, got, step, OverflowHidden)
			}
		}

		if got := reg.Len(); got != 0 {
			t.Errorf("perm %v: Len() = %d after all closes, want 0", perm, got)
		}
	}
}

func TestInterleavedContainers(t *testing.T) {
	reg := newTestRegistry(t)
	a := newTestContainer("a")
	b := newTestContainer("b")

	ha := reg.Bind(a)
	hb := reg.Bind(b)

	ha.Acquire()
	hb.Acquire()
	ha.Release()

	if got := b.Overflow(); got != OverflowHidden {
		t.Errorf("container b overflow = %q, want %q", got, OverflowHidden)
	}
	if got := a.Overflow(); got != "auto" {
		t.Errorf("container a overflow = %q, want %q", got, "auto")
	}

	ha.Close()
	hb.Close()
}

func TestRebind(t *testing.T) {
	reg := newTestRegistry(t)
	old := newTestContainer("old")
	next := newTestContainer("next")

	h := reg.Bind(old)
	h.Acquire()

	h.Rebind(next)

	// Membership on the stale lock must be gone and the old entry reclaimed.
	if got := old.Overflow(); got != "auto" {
		t.Errorf("old overflow = %q after rebind, want %q", got, "auto")
	}
	if _, ok := reg.Lookup(old); ok {
		t.Error("old container entry leaked after rebind")
	}

	// The handle does not re-acquire on its own.
	if got := next.Overflow(); got != "auto" {
		t.Errorf("next overflow = %q before acquire, want %q", got, "auto")
	}

	h.Acquire()
	if got := next.Overflow(); got != OverflowHidden {
		t.Errorf("next overflow = %q after acquire, want %q", got, OverflowHidden)
	}

	h.Close()
	if got := reg.Len(); got != 0 {
		t.Errorf("Len() = %d after close, want 0", got)
	}
}

func TestRebindSameContainerIsNoop(t *testing.T) {
	reg := newTestRegistry(t)
	c := newTestContainer("main")

	h := reg.Bind(c)
	h.Acquire()
	h.Rebind(c)

	if got := c.Overflow(); got != OverflowHidden {
		t.Errorf("overflow = %q after same-container rebind, want %q", got, OverflowHidden)
	}

	h.Close()
}

func TestHandleLifecycleEvents(t *testing.T) {
	bus := event.NewBus()
	reg := NewRegistry(bus, nil)
	c := newTestContainer("main")

	var bound, closed int
	bus.Subscribe("handle.bound", func(e event.Event) { bound++ })
	bus.Subscribe("handle.closed", func(e event.Event) { closed++ })

	h := reg.Bind(c)
	h.Close()
	h.Close() // second close must not re-publish

	if bound != 1 {
		t.Errorf("handle.bound events = %d, want 1", bound)
	}
	if closed != 1 {
		t.Errorf("handle.closed events = %d, want 1", closed)
	}
}
