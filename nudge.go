package nudge

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Manager routes Bubble Tea messages to attached behaviors and owns the
// state they share: the listener registry, the next-frame task queue, the
// pointer/selection environment and the live screen size.
//
// The host model forwards every message through Update and returns the
// command it produces:
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		cmd := m.behaviors.Update(msg)
//		...
//		return m, cmd
//	}
//
// A Manager is not safe for concurrent use. Like the rest of a Bubble Tea
// program it lives on the update goroutine; behaviors never touch it from
// anywhere else.
type Manager struct {
	zones  *zone.Manager
	env    *Env
	screen Rect

	listeners listeners
	frames    frameQueue
	emitted   []tea.Msg
}

// Option configures a Manager.
type Option func(*Manager)

// WithZones supplies a bubblezone manager for zone-based hit testing.
// Without one, behaviors fall back to element rect containment: options
// naming a zone as a handle or trigger resolve to the element itself,
// and ignore lists match nothing.
func WithZones(z *zone.Manager) Option {
	return func(m *Manager) { m.zones = z }
}

// New creates a Manager.
func New(opts ...Option) *Manager {
	m := &Manager{env: NewEnv()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Bool returns a pointer to v. Behavior options use *bool fields so that
// the zero value means "default", which is usually true; Bool spells the
// explicit override.
func Bool(v bool) *bool { return &v }

// Update processes one message. It first runs frame tasks queued before
// this call, then routes the message:
//
//   - tea.WindowSizeMsg updates the screen rect.
//   - Mouse presses walk the press listeners in registration order until
//     one consumes the event.
//   - Mouse motion and release are broadcast to all pointer listeners.
//   - Key messages walk the key listeners in registration order until one
//     consumes the event.
//
// The returned command delivers every message queued with Emit during this
// call; it is nil when nothing was emitted.
func (m *Manager) Update(msg tea.Msg) tea.Cmd {
	m.frames.flush()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen = Rect{W: msg.Width, H: msg.Height}
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			m.routePress(msg)
		case tea.MouseActionMotion:
			m.routeMotion(msg)
		case tea.MouseActionRelease:
			m.routeRelease(msg)
		}
	case tea.KeyMsg:
		m.routeKey(msg)
	}

	return m.drain()
}

// routePress walks a snapshot of the press listeners so handlers may
// register or remove listeners mid-dispatch; entries removed by an earlier
// handler are skipped. The first handler returning true consumes the press.
func (m *Manager) routePress(msg tea.MouseMsg) {
	snap := append([]pressEntry(nil), m.listeners.press...)
	for _, e := range snap {
		if !m.listeners.has(e.id) {
			continue
		}
		if e.fn(msg) {
			return
		}
	}
}

func (m *Manager) routeMotion(msg tea.MouseMsg) {
	snap := append([]pointerEntry(nil), m.listeners.pointer...)
	for _, e := range snap {
		if !m.listeners.has(e.id) {
			continue
		}
		e.move(msg)
	}
}

func (m *Manager) routeRelease(msg tea.MouseMsg) {
	snap := append([]pointerEntry(nil), m.listeners.pointer...)
	for _, e := range snap {
		if !m.listeners.has(e.id) {
			continue
		}
		e.release(msg)
	}
}

func (m *Manager) routeKey(msg tea.KeyMsg) {
	snap := append([]keyEntry(nil), m.listeners.key...)
	for _, e := range snap {
		if !m.listeners.has(e.id) {
			continue
		}
		if e.fn(msg) {
			return
		}
	}
}

func (m *Manager) drain() tea.Cmd {
	if len(m.emitted) == 0 {
		return nil
	}
	msgs := m.emitted
	m.emitted = nil
	cmds := make([]tea.Cmd, len(msgs))
	for i, em := range msgs {
		em := em
		cmds[i] = func() tea.Msg { return em }
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// OnPress registers a press listener. Press listeners run in registration
// order; returning true consumes the event and stops dispatch.
func (m *Manager) OnPress(fn func(tea.MouseMsg) bool) ListenerID {
	return m.listeners.addPress(fn)
}

// OnPointer registers a pair of global motion/release listeners. Behaviors
// install these when a session starts and must remove them with Off when it
// ends; install and remove calls pair exactly per session.
func (m *Manager) OnPointer(move, release func(tea.MouseMsg)) ListenerID {
	return m.listeners.addPointer(move, release)
}

// OnKey registers a key listener. Key listeners run in registration order;
// returning true consumes the event and stops dispatch.
func (m *Manager) OnKey(fn func(tea.KeyMsg) bool) ListenerID {
	return m.listeners.addKey(fn)
}

// Off removes a listener and reports whether it was still registered.
func (m *Manager) Off(id ListenerID) bool {
	return m.listeners.remove(id)
}

// NextFrame queues fn to run at the start of the next Update.
func (m *Manager) NextFrame(fn func()) TaskID {
	return m.frames.add(fn)
}

// CancelFrame drops a queued frame task and reports whether it was still
// pending.
func (m *Manager) CancelFrame(id TaskID) bool {
	return m.frames.cancel(id)
}

// Emit queues a notification to be delivered through the command returned
// by the current (or next) Update call.
func (m *Manager) Emit(msg tea.Msg) {
	m.emitted = append(m.emitted, msg)
}

// Env returns the shared pointer/selection environment.
func (m *Manager) Env() *Env { return m.env }

// Screen returns the screen rect from the last tea.WindowSizeMsg seen.
func (m *Manager) Screen() Rect { return m.screen }

// Zones returns the configured bubblezone manager, or nil.
func (m *Manager) Zones() *zone.Manager { return m.zones }

// HitZone reports whether a mouse event falls inside the zone with the
// given ID. It is false when no zone manager is configured or the zone has
// not been scanned yet.
func (m *Manager) HitZone(id string, msg tea.MouseMsg) bool {
	if m.zones == nil || id == "" {
		return false
	}
	return m.zones.Get(id).InBounds(msg)
}

// HitElement reports whether a mouse event lands on el: by zone lookup when
// a zone manager is configured and the element has an ID, by rect
// containment otherwise.
func (m *Manager) HitElement(el Element, msg tea.MouseMsg) bool {
	if m.zones != nil && el.ID() != "" {
		return m.zones.Get(el.ID()).InBounds(msg)
	}
	return el.Bounds().Contains(msg.X, msg.Y)
}

// Counts reports the live number of registered listeners and pending frame
// tasks. Tests and debug overlays use it to verify that attach, update and
// detach cycles leak nothing.
type Counts struct {
	Press   int
	Pointer int
	Key     int
	Tasks   int
}

// Counts returns the current registry sizes.
func (m *Manager) Counts() Counts {
	return Counts{
		Press:   len(m.listeners.press),
		Pointer: len(m.listeners.pointer),
		Key:     len(m.listeners.key),
		Tasks:   m.frames.len(),
	}
}
