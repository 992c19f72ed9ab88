// Package clickout reports presses that land outside an element. Hosts
// use it to dismiss menus, popovers and focused panes. The press is never
// consumed, so the element that was actually hit still sees it.
package clickout

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudgeui/nudge"
)

// Msg is emitted when a press lands outside the watched element and
// outside every configured ignore zone.
type Msg struct {
	ID string
}

// Options configures the watch. The zero value watches the element alone.
type Options struct {
	// Ignore lists zone IDs that do not count as outside, e.g. the
	// button that opened the popover.
	Ignore []string

	// Enabled defaults to true; set an explicit value with nudge.Bool.
	Enabled *bool
}

type config struct {
	ignore  []string
	enabled bool
}

func resolveOptions(o Options) config {
	cfg := config{enabled: true}
	if o.Enabled != nil {
		cfg.enabled = *o.Enabled
	}
	if len(o.Ignore) > 0 {
		cfg.ignore = append([]string(nil), o.Ignore...)
	}
	return cfg
}

// Handle controls one watch. Obtain it from Attach.
type Handle struct {
	mgr *nudge.Manager
	el  nudge.Element

	cfg       config
	pressID   nudge.ListenerID
	installed bool
	detached  bool
}

// Attach watches for presses outside el. A nil manager or element yields
// an inert handle.
func Attach(mgr *nudge.Manager, el nudge.Element, opts Options) *Handle {
	h := &Handle{mgr: mgr, el: el}
	if mgr == nil || el == nil {
		h.detached = true
		return h
	}
	h.apply(opts)
	return h
}

// Update swaps the configuration in place.
func (h *Handle) Update(opts Options) {
	if h.detached {
		return
	}
	h.teardown()
	h.apply(opts)
}

// Detach removes the listener. Further calls are no-ops.
func (h *Handle) Detach() {
	if h.detached {
		return
	}
	h.detached = true
	h.teardown()
}

func (h *Handle) apply(opts Options) {
	h.cfg = resolveOptions(opts)
	if !h.cfg.enabled {
		return
	}
	h.pressID = h.mgr.OnPress(h.press)
	h.installed = true
}

func (h *Handle) teardown() {
	if !h.installed {
		return
	}
	h.installed = false
	h.mgr.Off(h.pressID)
}

func (h *Handle) press(msg tea.MouseMsg) bool {
	if isWheel(msg.Button) {
		return false
	}
	if h.mgr.HitElement(h.el, msg) {
		return false
	}
	for _, id := range h.cfg.ignore {
		if h.mgr.HitZone(id, msg) {
			return false
		}
	}
	h.mgr.Emit(Msg{ID: h.el.ID()})
	return false
}

func isWheel(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}
