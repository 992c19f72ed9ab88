package nudge

import "fmt"

// Pointer shape names understood by terminals that implement the xterm
// OSC 22 extension (xterm, kitty, foot, contour, ghostty). The names follow
// the CSS cursor vocabulary.
const (
	ShapeAuto     = "auto"
	ShapeGrab     = "grab"
	ShapeGrabbing = "grabbing"
)

// Env holds the pointer-shape and text-selection state shared by every
// behavior attached to one Manager. Behaviors write it through exact
// save-and-restore bookkeeping so that state set by the host, or by another
// behavior, is never clobbered.
//
// Env only records intent. Hosts that want the terminal pointer to actually
// change render PointerShapeSeq(env.RootShape()) as part of their output;
// selection-style behaviors consult SelectionEnabled before acting.
type Env struct {
	root      string
	zones     map[string]string
	selection bool
}

// NewEnv returns an environment with no pointer shapes set and text
// selection enabled.
func NewEnv() *Env {
	return &Env{
		zones:     make(map[string]string),
		selection: true,
	}
}

// RootShape returns the pointer shape set on the root, or "" if none is set.
func (e *Env) RootShape() string { return e.root }

// SetRootShape sets the root pointer shape. An empty string clears it.
func (e *Env) SetRootShape(shape string) { e.root = shape }

// ZoneShape returns the pointer shape declared for a zone, or "" if the zone
// declares none.
func (e *Env) ZoneShape(id string) string { return e.zones[id] }

// SetZoneShape declares a pointer shape for a zone. An empty shape removes
// the declaration.
func (e *Env) SetZoneShape(id, shape string) {
	if shape == "" {
		delete(e.zones, id)
		return
	}
	e.zones[id] = shape
}

// SelectionEnabled reports whether text selection is currently allowed.
// Drag behaviors suppress selection for the duration of a session.
func (e *Env) SelectionEnabled() bool { return e.selection }

// SetSelectionEnabled sets the selection flag.
func (e *Env) SetSelectionEnabled(v bool) { e.selection = v }

// PointerShapeSeq returns the OSC 22 escape sequence selecting the given
// pointer shape. An empty shape resets the pointer to the terminal default.
func PointerShapeSeq(shape string) string {
	return fmt.Sprintf("\x1b]22;%s\x07", shape)
}
