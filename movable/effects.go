package movable

import "github.com/nudgeui/nudge"

// zoneEdit records one pointer-shape write so it can be reverted later,
// but only while the zone still holds the value this instance wrote.
type zoneEdit struct {
	id   string
	prev string
	set  string
}

// effects owns the cursor and selection side effects of one attachment.
// Every method is idempotent; end/unmount without a prior start/mount do
// nothing. Reverts are exact: a value changed by the host after we set it
// is left alone.
type effects struct {
	env    *nudge.Env
	zone   string
	ignore []string
	cursor bool

	mounted bool
	edits   []zoneEdit

	active  bool
	prevSel bool
}

func newEffects(env *nudge.Env, zone string, ignore []string, cursor bool) *effects {
	return &effects{env: env, zone: zone, ignore: ignore, cursor: cursor}
}

// onMount marks the handle zone as grabbable and gives ignored zones a
// neutral shape unless they already declare one.
func (e *effects) onMount() {
	if e.mounted {
		return
	}
	e.mounted = true
	if !e.cursor {
		return
	}
	if e.zone != "" {
		e.writeZone(e.zone, nudge.ShapeGrab)
	}
	for _, id := range e.ignore {
		if id == "" || e.env.ZoneShape(id) != "" {
			continue
		}
		e.writeZone(id, nudge.ShapeAuto)
	}
}

func (e *effects) writeZone(id, shape string) {
	e.edits = append(e.edits, zoneEdit{id: id, prev: e.env.ZoneShape(id), set: shape})
	e.env.SetZoneShape(id, shape)
}

// onStart suppresses text selection for the duration of the drag and
// switches the pointer to the grabbing shape.
func (e *effects) onStart() {
	if e.active {
		return
	}
	e.active = true
	e.prevSel = e.env.SelectionEnabled()
	e.env.SetSelectionEnabled(false)
	if e.cursor {
		e.env.SetRootShape(nudge.ShapeGrabbing)
		if e.zone != "" {
			e.env.SetZoneShape(e.zone, nudge.ShapeGrabbing)
		}
	}
}

// onEnd undoes onStart. Values the host replaced mid-drag stay as the
// host left them.
func (e *effects) onEnd() {
	if !e.active {
		return
	}
	e.active = false
	if !e.env.SelectionEnabled() {
		e.env.SetSelectionEnabled(e.prevSel)
	}
	if e.cursor {
		if e.env.RootShape() == nudge.ShapeGrabbing {
			e.env.SetRootShape("")
		}
		if e.zone != "" && e.env.ZoneShape(e.zone) == nudge.ShapeGrabbing {
			e.env.SetZoneShape(e.zone, nudge.ShapeGrab)
		}
	}
}

// onUnmount reverts the zones onMount touched, newest first.
func (e *effects) onUnmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	for i := len(e.edits) - 1; i >= 0; i-- {
		ed := e.edits[i]
		if e.env.ZoneShape(ed.id) != ed.set {
			continue
		}
		e.env.SetZoneShape(ed.id, ed.prev)
	}
	e.edits = nil
}
