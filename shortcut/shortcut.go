// Package shortcut turns bubbles key bindings into emitted messages. It
// rides the manager's key routing, so a binding marked consuming stops
// the key from reaching listeners registered after it.
package shortcut

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudgeui/nudge"
)

// Msg reports a matched shortcut.
type Msg struct {
	// ID is the Binding.ID, or its first key when none was given.
	ID string

	// Keys are the binding's key names.
	Keys []string
}

// Binding pairs a bubbles key binding with the ID to emit.
type Binding struct {
	ID   string
	Keys key.Binding

	// Consume defaults to true.
	Consume *bool
}

// Options configures the set of shortcuts one handle listens for.
type Options struct {
	Bindings []Binding

	// Enabled defaults to true.
	Enabled *bool
}

type binding struct {
	id      string
	keys    key.Binding
	consume bool
}

type config struct {
	bindings []binding
	enabled  bool
}

func resolveOptions(o Options) config {
	cfg := config{enabled: true}
	if o.Enabled != nil {
		cfg.enabled = *o.Enabled
	}
	for _, b := range o.Bindings {
		rb := binding{id: b.ID, keys: b.Keys, consume: true}
		if b.Consume != nil {
			rb.consume = *b.Consume
		}
		if rb.id == "" {
			if keys := b.Keys.Keys(); len(keys) > 0 {
				rb.id = keys[0]
			}
		}
		cfg.bindings = append(cfg.bindings, rb)
	}
	return cfg
}

// Handle controls one set of shortcuts.
type Handle struct {
	mgr *nudge.Manager

	cfg       config
	keyID     nudge.ListenerID
	installed bool
	detached  bool
}

// Attach registers the shortcuts on mgr. A nil manager yields an inert
// handle.
func Attach(mgr *nudge.Manager, opts Options) *Handle {
	h := &Handle{mgr: mgr}
	if mgr == nil {
		h.detached = true
		return h
	}
	h.apply(opts)
	return h
}

// Update swaps the shortcut set in place.
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
	if !h.cfg.enabled || len(h.cfg.bindings) == 0 {
		return
	}
	h.keyID = h.mgr.OnKey(h.key)
	h.installed = true
}

func (h *Handle) teardown() {
	if !h.installed {
		return
	}
	h.installed = false
	h.mgr.Off(h.keyID)
}

// key emits for the first matching binding. Disabled bubbles bindings
// never match.
func (h *Handle) key(msg tea.KeyMsg) bool {
	for _, b := range h.cfg.bindings {
		if !key.Matches(msg, b.keys) {
			continue
		}
		h.mgr.Emit(Msg{ID: b.id, Keys: b.keys.Keys()})
		return b.consume
	}
	return false
}
