// Package movable turns any positioned element into a pointer-draggable
// one: press on the handle, drag, release.
//
// Movement is constrained in one of two mutually exclusive ways. With a
// Boundary the element's box is kept inside a region, give or take an
// optional per-axis margin. Without one, the Limit option caps the
// element's total displacement since attachment per axis. Margins and
// limits accept absolute cells ("12") or a percentage of the element's
// own size ("25%").
//
// While a drag is active the pointer switches to a grabbing shape and
// text selection is suppressed; both are restored on release, unless the
// host changed them in the meantime. Session starts and ends surface as
// StartMsg and EndMsg through the manager's command stream.
//
//	pane := nudge.NewPane(mgr, "win", "Window")
//	h := movable.Attach(mgr, pane, movable.Options{
//		Boundary: movable.Screen(),
//		Ignore:   []string{"win-input"},
//	})
//	defer h.Detach()
package movable
