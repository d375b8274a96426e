package scrolllock

// OverflowHidden is the style value a held lock writes to its container's
// overflow property.
const OverflowHidden = "hidden"

// Container is a scrollable surface whose overflow style can be gated.
// A [Lock] is the sole writer of the style while any holder is active;
// consumers must not mutate it directly.
type Container interface {
	// Name identifies the container in logs and events.
	Name() string

	// Overflow returns the current overflow style value.
	Overflow() string

	// SetOverflow replaces the overflow style value.
	SetOverflow(v string)
}

// Root is implemented by the page-level scrolling container. Its scrollbar
// occupies layout width, so suspending scroll makes the scrollbar disappear
// and shifts content sideways. A lock compensates by widening the right
// padding by the scrollbar gap while it is held.
//
// ContentWidth excludes the scrollbar while one is shown, which means the
// gap must be measured before overflow is hidden.
type Root interface {
	Container

	// PaddingRight returns the current right padding, in columns.
	PaddingRight() int

	// SetPaddingRight replaces the right padding.
	SetPaddingRight(cols int)

	// WindowWidth returns the full width of the window owning the surface.
	WindowWidth() int

	// ContentWidth returns the width available to content, excluding any
	// visible scrollbar.
	ContentWidth() int
}
