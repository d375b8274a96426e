package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/overlaykit/scrollgate/internal/config"
	"github.com/overlaykit/scrollgate/internal/event"
	"github.com/overlaykit/scrollgate/internal/logging"
	"github.com/overlaykit/scrollgate/internal/scrolllock"
	"github.com/overlaykit/scrollgate/internal/surface"
)

// Layout constants
const (
	headerHeight = 1
	statusHeight = 1
)

// lockEventMsg carries a bus event into the Bubbletea update loop.
type lockEventMsg struct {
	event event.Event
}

// configReloadedMsg carries a hot-reloaded config into the update loop.
type configReloadedMsg struct {
	cfg *config.Config
}

// Model holds the TUI application state
type Model struct {
	cfg *config.Config
	reg *scrolllock.Registry
	log *logging.Logger

	// page is the shared root surface every overlay locks.
	page *surface.Page

	viewport viewport.Model
	overlays []*overlay

	width    int
	height   int
	ready    bool
	quitting bool

	// lastEvent is the most recent bus event, shown in the status bar.
	lastEvent string
}

// NewModel creates a new TUI model
func NewModel(cfg *config.Config, reg *scrolllock.Registry, log *logging.Logger) Model {
	return Model{
		cfg:  cfg,
		reg:  reg,
		log:  log,
		page: surface.NewPage("page", 0, cfg.TUI.ScrollbarWidth),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.page.Resize(msg.Width)

		bodyHeight := msg.Height - headerHeight - statusHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.viewport.SetContent(generateContent(m.cfg.TUI.ContentLines, msg.Width))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.page.SetExtent(m.cfg.TUI.ContentLines, bodyHeight)
		return m, nil

	case lockEventMsg:
		m.lastEvent = describeEvent(msg.event)
		return m, nil

	case configReloadedMsg:
		m.cfg = msg.cfg
		if m.ready {
			m.viewport.SetContent(generateContent(m.cfg.TUI.ContentLines, m.width))
			m.page.SetExtent(m.cfg.TUI.ContentLines, m.viewport.Height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes key presses to overlays, the viewport, or quit handling.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "q":
		if len(m.overlays) > 0 {
			m = m.closeTopOverlay()
			return m, nil
		}
		return m.quit()

	case "esc":
		if len(m.overlays) > 0 {
			m = m.closeTopOverlay()
		}
		return m, nil

	case "m":
		m = m.openOverlay(overlayModal)
		return m, nil

	case "d":
		m = m.openOverlay(overlayDrawer)
		return m, nil

	case "p":
		m = m.openOverlay(overlayPalette)
		return m, nil
	}

	// Scroll input reaches the page only while scrolling is not suspended.
	if m.ready && m.page.Overflow() != scrolllock.OverflowHidden {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// quit closes every overlay so each handle releases its lock, then exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	for len(m.overlays) > 0 {
		m = m.closeTopOverlay()
	}
	m.quitting = true
	return m, tea.Quit
}

// openOverlay binds a fresh handle for the new overlay and acquires the
// page lock. Each overlay is an independent consumer: opening a second
// one must not re-capture the page style.
func (m Model) openOverlay(kind overlayKind) Model {
	h := m.reg.Bind(m.page)
	h.Acquire()

	ov := newOverlay(kind, h)
	m.overlays = append(m.overlays, ov)
	m.log.Info("overlay opened", "kind", string(kind), "handle", h.ID(), "open", len(m.overlays))
	return m
}

// closeTopOverlay tears down the most recent overlay. Closing the handle
// releases unconditionally; the page style comes back only when the last
// overlay is gone.
func (m Model) closeTopOverlay() Model {
	if len(m.overlays) == 0 {
		return m
	}
	ov := m.overlays[len(m.overlays)-1]
	m.overlays = m.overlays[:len(m.overlays)-1]
	ov.handle.Close()
	m.log.Info("overlay closed", "kind", string(ov.kind), "handle", ov.handle.ID(), "open", len(m.overlays))
	return m
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	header := headerStyle.Width(m.width).Render("scrollgate demo — m: modal  d: drawer  p: palette  esc: close  q: quit")

	body := m.viewport.View()
	if len(m.overlays) > 0 {
		top := m.overlays[len(m.overlays)-1]
		box := top.render(m.width, len(m.overlays))
		body = lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center, box)
	}

	if !m.cfg.TUI.ShowStatusBar {
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusBar())
}

// statusBar reports the live lock state for the page surface.
func (m Model) statusBar() string {
	holders := 0
	if lock, ok := m.reg.Lookup(m.page); ok {
		holders = lock.Holders()
	}

	status := fmt.Sprintf(" overflow=%s  holders=%d  pad=%d  overlays=%d",
		m.page.Overflow(), holders, m.page.PaddingRight(), len(m.overlays))
	if m.lastEvent != "" {
		status += "  │ " + m.lastEvent
	}

	style := statusStyle
	if m.page.Overflow() == scrolllock.OverflowHidden {
		style = statusSuspendedStyle
	}
	return style.Width(m.width).Render(status)
}

// describeEvent renders a bus event for the status bar.
func describeEvent(e event.Event) string {
	switch ev := e.(type) {
	case event.LockSuspendedEvent:
		return fmt.Sprintf("%s: suspended (saved %q)", ev.Container, ev.SavedOverflow)
	case event.LockRestoredEvent:
		return fmt.Sprintf("%s: restored to %q", ev.Container, ev.Overflow)
	case event.LockAcquiredEvent:
		return fmt.Sprintf("%s: +%s (%d holders)", ev.Container, shortID(ev.HolderID), ev.Holders)
	case event.LockReleasedEvent:
		return fmt.Sprintf("%s: -%s (%d holders)", ev.Container, shortID(ev.HolderID), ev.Holders)
	default:
		return e.EventType()
	}
}

// shortID truncates a holder ID for display.
func shortID(id string) string {
	if len(id) > 6 {
		return id[:6]
	}
	return id
}
