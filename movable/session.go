package movable

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudgeui/nudge"
)

// session is the press/move/release state machine of one attachment. It
// lives as long as the attachment does, so the cumulative displacement it
// tracks survives both release/press cycles and reconfiguration.
type session struct {
	mgr *nudge.Manager
	el  nudge.Element

	cfg config
	eff *effects

	dragging  bool
	pointerID nudge.ListenerID
	last      nudge.Point
	pos       nudge.Position
	cum       nudge.Delta
}

func newSession(mgr *nudge.Manager, el nudge.Element) *session {
	return &session{mgr: mgr, el: el}
}

// configure swaps in the current snapshot. The cumulative displacement is
// deliberately not reset here.
func (s *session) configure(cfg config, eff *effects) {
	s.cfg = cfg
	s.eff = eff
}

// press starts a drag when the left button lands on the handle and not on
// an ignored descendant. Reports whether the press was consumed.
func (s *session) press(msg tea.MouseMsg) bool {
	if s.dragging || msg.Button != tea.MouseButtonLeft {
		return false
	}
	for _, id := range s.cfg.ignore {
		if s.mgr.HitZone(id, msg) {
			return false
		}
	}
	if s.cfg.handle != "" {
		if !s.mgr.HitZone(s.cfg.handle, msg) {
			return false
		}
	} else if !s.mgr.HitElement(s.el, msg) {
		return false
	}

	if s.el.Positioning() == nudge.Static {
		s.el.SetPositioning(nudge.Relative)
	}

	s.dragging = true
	s.last = nudge.Point{X: msg.X, Y: msg.Y}
	s.pos = s.el.Offset()
	s.eff.onStart()
	s.mgr.Emit(StartMsg{ID: s.el.ID(), Position: s.pos})
	s.pointerID = s.mgr.OnPointer(s.move, s.release)
	return true
}

// move applies one pointer step: delta from the previous point, clamped,
// written back as the element offset. No notification is emitted.
func (s *session) move(msg tea.MouseMsg) {
	if !s.dragging {
		return
	}
	d := nudge.Delta{DX: msg.X - s.last.X, DY: msg.Y - s.last.Y}
	s.last = nudge.Point{X: msg.X, Y: msg.Y}

	var region *nudge.Rect
	if r, ok := s.cfg.boundary.region(s.mgr); ok {
		region = &r
	}

	s.pos, s.cum = clampMove(s.pos, d, s.el.Bounds(), region, s.cfg.limit, s.cum)
	s.el.SetOffset(s.pos)
}

// release ends the drag on any button release. Duplicates are no-ops.
func (s *session) release(tea.MouseMsg) {
	s.end()
}

// end tears the active drag down: global listeners out, effects reverted,
// end notification with the final position. Safe to call while idle.
func (s *session) end() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.mgr.Off(s.pointerID)
	s.eff.onEnd()
	s.mgr.Emit(EndMsg{ID: s.el.ID(), Position: s.pos})
}
