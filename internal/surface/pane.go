package surface

import "sync"

// DefaultOverflow is the overflow style a fresh surface starts with.
const DefaultOverflow = "auto"

// Pane is a named scrollable region. It satisfies scrolllock.Container.
type Pane struct {
	mu       sync.Mutex
	name     string
	overflow string
}

// NewPane creates a pane with overflow set to DefaultOverflow.
func NewPane(name string) *Pane {
	return &Pane{
		name:     name,
		overflow: DefaultOverflow,
	}
}

// Name identifies the pane in logs and events.
func (p *Pane) Name() string {
	return p.name
}

// Overflow returns the current overflow style value.
func (p *Pane) Overflow() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.overflow
}

// SetOverflow replaces the overflow style value.
func (p *Pane) SetOverflow(v string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.overflow = v
}
