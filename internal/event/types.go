package event

import "time"

// Event is implemented by everything published on the bus.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "lock.suspended", "handle.bound")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides the common fields; embed it in concrete event types.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Lock transition events
// -----------------------------------------------------------------------------

// LockSuspendedEvent is emitted when a container transitions from unheld to
// held and its overflow style is hidden.
type LockSuspendedEvent struct {
	baseEvent
	Container     string // Name of the suspended container
	SavedOverflow string // Overflow value captured for later restoration
}

// NewLockSuspendedEvent creates a LockSuspendedEvent.
func NewLockSuspendedEvent(container, savedOverflow string) LockSuspendedEvent {
	return LockSuspendedEvent{
		baseEvent:     newBaseEvent("lock.suspended"),
		Container:     container,
		SavedOverflow: savedOverflow,
	}
}

// LockRestoredEvent is emitted when the last holder releases and the
// container's captured style is put back.
type LockRestoredEvent struct {
	baseEvent
	Container string // Name of the restored container
	Overflow  string // Overflow value that was restored
}

// NewLockRestoredEvent creates a LockRestoredEvent.
func NewLockRestoredEvent(container, overflow string) LockRestoredEvent {
	return LockRestoredEvent{
		baseEvent: newBaseEvent("lock.restored"),
		Container: container,
		Overflow:  overflow,
	}
}

// -----------------------------------------------------------------------------
// Holder membership events
// -----------------------------------------------------------------------------

// LockAcquiredEvent is emitted when a holder joins a lock's set.
type LockAcquiredEvent struct {
	baseEvent
	Container string // Container whose lock was acquired
	HolderID  string // Holder that acquired
	Holders   int    // Holder count after the acquire
}

// NewLockAcquiredEvent creates a LockAcquiredEvent.
func NewLockAcquiredEvent(container, holderID string, holders int) LockAcquiredEvent {
	return LockAcquiredEvent{
		baseEvent: newBaseEvent("lock.acquired"),
		Container: container,
		HolderID:  holderID,
		Holders:   holders,
	}
}

// LockReleasedEvent is emitted when a holder leaves a lock's set.
type LockReleasedEvent struct {
	baseEvent
	Container string // Container whose lock was released
	HolderID  string // Holder that released
	Holders   int    // Holder count after the release
}

// NewLockReleasedEvent creates a LockReleasedEvent.
func NewLockReleasedEvent(container, holderID string, holders int) LockReleasedEvent {
	return LockReleasedEvent{
		baseEvent: newBaseEvent("lock.released"),
		Container: container,
		HolderID:  holderID,
		Holders:   holders,
	}
}

// -----------------------------------------------------------------------------
// Consumer lifecycle events
// -----------------------------------------------------------------------------

// HandleBoundEvent is emitted when a consumer handle binds to a container.
type HandleBoundEvent struct {
	baseEvent
	Container string // Container the handle is bound to
	HandleID  string // The handle's holder ID
}

// NewHandleBoundEvent creates a HandleBoundEvent.
func NewHandleBoundEvent(container, handleID string) HandleBoundEvent {
	return HandleBoundEvent{
		baseEvent: newBaseEvent("handle.bound"),
		Container: container,
		HandleID:  handleID,
	}
}

// HandleClosedEvent is emitted when a consumer handle is closed.
type HandleClosedEvent struct {
	baseEvent
	Container string // Container the handle was bound to
	HandleID  string // The handle's holder ID
}

// NewHandleClosedEvent creates a HandleClosedEvent.
func NewHandleClosedEvent(container, handleID string) HandleClosedEvent {
	return HandleClosedEvent{
		baseEvent: newBaseEvent("handle.closed"),
		Container: container,
		HandleID:  handleID,
	}
}
