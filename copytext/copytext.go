// Package copytext copies a configured string to the system clipboard
// when its trigger is pressed. Clipboard failures are not errors on the
// press path; they ride along in the emitted message.
package copytext

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudgeui/nudge"
)

// Msg reports one copy attempt, successful or not.
type Msg struct {
	ID   string
	Text string
	Err  error
}

// Options configures the trigger. The zero value copies the empty string
// on any press within the element.
type Options struct {
	// Text is the literal to copy.
	Text string

	// TextFunc, when set, supplies the text at press time and takes
	// precedence over Text.
	TextFunc func() string

	// Trigger is the zone ID that accepts the press; empty means the
	// element itself. Ignored when the Manager has no zone manager.
	Trigger string

	// Enabled defaults to true.
	Enabled *bool
}

type config struct {
	text     string
	textFunc func() string
	trigger  string
	enabled  bool
}

func resolveOptions(o Options) config {
	cfg := config{text: o.Text, textFunc: o.TextFunc, trigger: o.Trigger, enabled: true}
	if o.Enabled != nil {
		cfg.enabled = *o.Enabled
	}
	return cfg
}

// Swappable for tests; headless environments have no clipboard.
var writeClipboard = clipboard.WriteAll

// Handle controls one trigger.
type Handle struct {
	mgr *nudge.Manager
	el  nudge.Element

	cfg       config
	pressID   nudge.ListenerID
	installed bool
	detached  bool
}

// Attach makes presses on el (or on Options.Trigger) copy text. A nil
// manager or element yields an inert handle.
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
	// A zone-named trigger needs a zone manager; without one the element
	// is its own trigger.
	if h.mgr.Zones() == nil {
		h.cfg.trigger = ""
	}
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

// press copies and consumes when the left button lands on the trigger.
// While selection is suppressed (a drag is in flight) presses pass
// through untouched.
func (h *Handle) press(msg tea.MouseMsg) bool {
	if msg.Button != tea.MouseButtonLeft {
		return false
	}
	if !h.mgr.Env().SelectionEnabled() {
		return false
	}
	if h.cfg.trigger != "" {
		if !h.mgr.HitZone(h.cfg.trigger, msg) {
			return false
		}
	} else if !h.mgr.HitElement(h.el, msg) {
		return false
	}

	text := h.cfg.text
	if h.cfg.textFunc != nil {
		text = h.cfg.textFunc()
	}
	h.mgr.Emit(Msg{ID: h.el.ID(), Text: text, Err: writeClipboard(text)})
	return true
}
