// Package dragscroll pans a scrollable surface by pressing and dragging
// anywhere on it, the way touch interfaces scroll. Text selection is
// suppressed while a pan is active so the terminal does not select the
// content sliding under the pointer.
package dragscroll

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudgeui/nudge"
)

// Scroller consumes scroll deltas in cells.
type Scroller interface {
	ScrollBy(dx, dy int)
}

// Axis restricts which pointer axis reaches the scroller.
type Axis int

const (
	Both Axis = iota
	Vertical
	Horizontal
)

// Options configures a pan surface. The zero value pans both axes with
// natural direction.
type Options struct {
	// Axis defaults to Both.
	Axis Axis

	// Invert flips the direction. By default the content follows the
	// pointer: dragging down reveals what is above.
	Invert *bool

	// Zone restricts the starting press to a zone ID; empty means the
	// element itself. Ignored when the Manager has no zone manager.
	Zone string

	// Enabled defaults to true.
	Enabled *bool
}

type config struct {
	axis    Axis
	invert  bool
	zone    string
	enabled bool
}

func resolveOptions(o Options) config {
	cfg := config{axis: o.Axis, zone: o.Zone, enabled: true}
	if o.Axis < Both || o.Axis > Horizontal {
		cfg.axis = Both
	}
	if o.Invert != nil {
		cfg.invert = *o.Invert
	}
	if o.Enabled != nil {
		cfg.enabled = *o.Enabled
	}
	return cfg
}

// Handle controls one pan surface.
type Handle struct {
	mgr *nudge.Manager
	el  nudge.Element
	sc  Scroller

	cfg       config
	pressID   nudge.ListenerID
	pointerID nudge.ListenerID
	installed bool
	detached  bool

	panning bool
	last    nudge.Point
	prevSel bool
}

// Attach makes el a pan surface feeding sc. A nil manager, element or
// scroller yields an inert handle.
func Attach(mgr *nudge.Manager, el nudge.Element, sc Scroller, opts Options) *Handle {
	h := &Handle{mgr: mgr, el: el, sc: sc}
	if mgr == nil || el == nil || sc == nil {
		h.detached = true
		return h
	}
	h.apply(opts)
	return h
}

// Update reconfigures the surface in place, force-ending an active pan.
func (h *Handle) Update(opts Options) {
	if h.detached {
		return
	}
	h.teardown()
	h.apply(opts)
}

// Detach removes everything the surface installed. Further calls are
// no-ops.
func (h *Handle) Detach() {
	if h.detached {
		return
	}
	h.detached = true
	h.teardown()
}

// Panning reports whether a pan is active.
func (h *Handle) Panning() bool {
	return h.panning
}

func (h *Handle) apply(opts Options) {
	h.cfg = resolveOptions(opts)
	// A zone-named surface needs a zone manager; without one the element
	// is its own surface.
	if h.mgr.Zones() == nil {
		h.cfg.zone = ""
	}
	if !h.cfg.enabled {
		return
	}
	h.pressID = h.mgr.OnPress(h.press)
	h.installed = true
}

func (h *Handle) teardown() {
	h.end()
	if !h.installed {
		return
	}
	h.installed = false
	h.mgr.Off(h.pressID)
}

func (h *Handle) press(msg tea.MouseMsg) bool {
	if h.panning || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if h.cfg.zone != "" {
		if !h.mgr.HitZone(h.cfg.zone, msg) {
			return false
		}
	} else if !h.mgr.HitElement(h.el, msg) {
		return false
	}

	h.panning = true
	h.last = nudge.Point{X: msg.X, Y: msg.Y}
	env := h.mgr.Env()
	h.prevSel = env.SelectionEnabled()
	env.SetSelectionEnabled(false)
	h.pointerID = h.mgr.OnPointer(h.move, h.release)
	return true
}

func (h *Handle) move(msg tea.MouseMsg) {
	if !h.panning {
		return
	}
	dx, dy := msg.X-h.last.X, msg.Y-h.last.Y
	h.last = nudge.Point{X: msg.X, Y: msg.Y}

	switch h.cfg.axis {
	case Vertical:
		dx = 0
	case Horizontal:
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return
	}
	if h.cfg.invert {
		h.sc.ScrollBy(dx, dy)
	} else {
		h.sc.ScrollBy(-dx, -dy)
	}
}

func (h *Handle) release(tea.MouseMsg) {
	h.end()
}

func (h *Handle) end() {
	if !h.panning {
		return
	}
	h.panning = false
	h.mgr.Off(h.pointerID)
	env := h.mgr.Env()
	if !env.SelectionEnabled() {
		env.SetSelectionEnabled(h.prevSel)
	}
}
