package surface

import "sync"

// Page is the root scrolling surface. It satisfies scrolllock.Root.
//
// While the page is scrollable and overflow is not hidden, a scrollbar of
// scrollbarWidth columns is shown and ContentWidth shrinks by that amount.
// Hiding overflow removes the scrollbar, so a caller that wants to know the
// scrollbar gap must measure before hiding.
type Page struct {
	mu             sync.Mutex
	name           string
	overflow       string
	paddingRight   int
	windowWidth    int
	scrollbarWidth int

	// Content extent, in lines. A page with contentLines == 0 has not been
	// measured yet and is treated as overflowing.
	contentLines int
	viewLines    int
}

// NewPage creates a page with overflow set to DefaultOverflow.
func NewPage(name string, windowWidth, scrollbarWidth int) *Page {
	return &Page{
		name:           name,
		overflow:       DefaultOverflow,
		windowWidth:    windowWidth,
		scrollbarWidth: scrollbarWidth,
	}
}

// Name identifies the page in logs and events.
func (p *Page) Name() string {
	return p.name
}

// Overflow returns the current overflow style value.
func (p *Page) Overflow() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.overflow
}

// SetOverflow replaces the overflow style value.
func (p *Page) SetOverflow(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overflow = v
}

// PaddingRight returns the current right padding, in columns.
func (p *Page) PaddingRight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paddingRight
}

// SetPaddingRight replaces the right padding.
func (p *Page) SetPaddingRight(cols int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paddingRight = cols
}

// WindowWidth returns the full width of the window owning the page.
func (p *Page) WindowWidth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.windowWidth
}

// ContentWidth returns the width available to content. It excludes the
// scrollbar while one is shown.
func (p *Page) ContentWidth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.scrollbarShownLocked() {
		return p.windowWidth - p.scrollbarWidth
	}
	return p.windowWidth
}

// Resize updates the window width.
func (p *Page) Resize(windowWidth int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.windowWidth = windowWidth
}

// SetExtent records the content height and visible height, in lines.
// The scrollbar is only shown while the content overflows the view.
func (p *Page) SetExtent(contentLines, viewLines int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.contentLines = contentLines
	p.viewLines = viewLines
}

// scrollbarShownLocked reports whether the scrollbar currently occupies
// layout width. Caller holds p.mu.
func (p *Page) scrollbarShownLocked() bool {
	if p.overflow == "hidden" || p.scrollbarWidth <= 0 {
		return false
	}
	return p.contentLines == 0 || p.contentLines > p.viewLines
}
