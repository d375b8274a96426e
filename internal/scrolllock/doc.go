// Package scrolllock coordinates scroll suspension across independent UI
// consumers sharing a container.
//
// Overlays, modals, and drawers frequently need the surface beneath them to
// stop scrolling. When several of them are open at once, naive save/restore
// logic breaks: whichever consumer closes last would restore a style value
// captured after another consumer had already hidden overflow. The package
// solves this with a reference-counted [Lock] per container: the container's
// original style is captured exactly once, on the transition from unheld to
// held, and restored exactly once, when the last holder releases — regardless
// of the order in which holders come and go.
//
// # Architecture
//
// The [Registry] maps each [Container] to its [Lock], creating locks lazily
// and reclaiming them once no consumer references the container. Consumers
// never touch a Lock directly: [Registry.Bind] returns a [Handle] carrying a
// stable process-unique holder ID, with Acquire and Release pre-bound to that
// ID and the resolved lock. Closing the handle releases unconditionally, so a
// consumer that tears down without ever acquiring — or while still holding —
// leaves no stale membership behind.
//
// # Basic Usage
//
//	reg := scrolllock.NewRegistry(bus, log)
//
//	h := reg.Bind(page)
//	defer h.Close()
//
//	h.Acquire() // page overflow becomes "hidden" on the first holder
//	...
//	h.Release() // restored only when the last holder releases
//
// Acquire and Release are idempotent in both directions: double-acquire,
// double-release, and release-without-acquire are valid no-ops, never errors.
//
// # Thread Safety
//
// Registry, Lock, and Handle are safe for concurrent use. Events are
// published to the bus outside internal mutexes.
package scrolllock
