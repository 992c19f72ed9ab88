package movable

import (
	"github.com/nudgeui/nudge"
)

// Handle controls one attachment. Obtain it from Attach, reconfigure with
// Update, and release every resource with Detach.
type Handle struct {
	mgr *nudge.Manager
	el  nudge.Element

	sess *session
	eff  *effects

	pressID   nudge.ListenerID
	mountTask nudge.TaskID
	installed bool
	detached  bool
}

// Attach wires el up for dragging on mgr and returns the controlling
// Handle. A nil manager or element yields an inert handle whose methods
// do nothing.
func Attach(mgr *nudge.Manager, el nudge.Element, opts Options) *Handle {
	h := &Handle{mgr: mgr, el: el}
	if mgr == nil || el == nil {
		h.detached = true
		return h
	}
	h.sess = newSession(mgr, el)
	h.apply(opts)
	return h
}

// Update reconfigures the attachment in place. A drag in progress is
// force-ended first, so the end notification fires with the element where
// the pointer left it and no global listener outlives the old
// configuration. Cumulative displacement is retained.
func (h *Handle) Update(opts Options) {
	if h.detached {
		return
	}
	h.teardown()
	h.apply(opts)
}

// Detach removes everything the attachment installed. Further Update or
// Detach calls are no-ops.
func (h *Handle) Detach() {
	if h.detached {
		return
	}
	h.detached = true
	h.teardown()
}

// Dragging reports whether a drag session is active.
func (h *Handle) Dragging() bool {
	return !h.detached && h.sess.dragging
}

func (h *Handle) apply(opts Options) {
	cfg := resolve(opts)
	// A zone-named handle needs a zone manager; without one the element
	// is its own handle.
	if h.mgr.Zones() == nil {
		cfg.handle = ""
	}

	zone := cfg.handle
	if zone == "" {
		zone = h.el.ID()
	}
	h.eff = newEffects(h.mgr.Env(), zone, cfg.ignore, cfg.cursor)
	h.sess.configure(cfg, h.eff)

	if !cfg.enabled {
		return
	}
	h.pressID = h.mgr.OnPress(h.sess.press)
	// The mount task can outlive its cancellation when teardown runs from
	// another task in the same flush, so it re-checks before touching Env.
	eff := h.eff
	h.mountTask = h.mgr.NextFrame(func() {
		if h.detached || h.eff != eff {
			return
		}
		eff.onMount()
	})
	h.installed = true
}

func (h *Handle) teardown() {
	h.sess.end()
	if !h.installed {
		return
	}
	h.installed = false
	h.mgr.CancelFrame(h.mountTask)
	h.eff.onUnmount()
	h.mgr.Off(h.pressID)
}
