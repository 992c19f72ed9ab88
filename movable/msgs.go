package movable

import "github.com/nudgeui/nudge"

// StartMsg is emitted when a drag session begins. Position is the element's
// offset at the moment of the press.
type StartMsg struct {
	ID       string
	Position nudge.Position
}

// EndMsg is emitted when a drag session ends, on release or when the
// attachment is reconfigured or detached mid-drag. Position is the final
// applied offset.
type EndMsg struct {
	ID       string
	Position nudge.Position
}
