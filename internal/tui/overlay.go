package tui

import (
	"fmt"
	"strings"

	"github.com/overlaykit/scrollgate/internal/scrolllock"
)

// overlayKind names the demo overlay flavors. They differ only in copy;
// what matters is that each one is an independent lock consumer.
type overlayKind string

const (
	overlayModal   overlayKind = "modal"
	overlayDrawer  overlayKind = "drawer"
	overlayPalette overlayKind = "palette"
)

// overlay is one open surface layered above the page. It holds its own
// scroll-lock handle for as long as it is open.
type overlay struct {
	kind   overlayKind
	handle *scrolllock.Handle
}

func newOverlay(kind overlayKind, handle *scrolllock.Handle) *overlay {
	return &overlay{
		kind:   kind,
		handle: handle,
	}
}

// render draws the overlay box. depth is the number of overlays currently
// open, shown so stacking is visible in the demo.
func (o *overlay) render(maxWidth, depth int) string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render(strings.ToUpper(string(o.kind))))
	b.WriteString("\n\n")
	b.WriteString(o.body())
	b.WriteString("\n\n")
	b.WriteString(overlayFooterStyle.Render(
		fmt.Sprintf("handle %s · %d open · esc closes", shortID(o.handle.ID()), depth)))

	width := 48
	if maxWidth > 0 && width > maxWidth-4 {
		width = maxWidth - 4
	}
	return overlayBoxStyle.Width(width).Render(b.String())
}

func (o *overlay) body() string {
	switch o.kind {
	case overlayModal:
		return "While this modal is open the page cannot scroll.\nOpen more overlays with m, d, or p; the page\nstays suspended until the last one closes."
	case overlayDrawer:
		return "A drawer holds the same page lock as a modal.\nClose overlays in any order — restoration only\nhappens when the final holder lets go."
	case overlayPalette:
		return "Command palettes suspend scrolling too.\nEvery overlay reference-counts the shared lock\ninstead of saving the style itself."
	default:
		return ""
	}
}
