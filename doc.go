// Package nudge provides reusable pointer and key behaviors for Bubble Tea
// elements: drag-to-reposition (package movable), click-outside
// notifications (clickout), press-to-copy (copytext), key combos (shortcut)
// and press-and-drag scrolling (dragscroll).
//
// A Manager is the single routing point: the host forwards every tea.Msg
// through it, behaviors attach to elements through it, and notifications
// come back as messages through the command it returns. Hit testing uses
// bubblezone when a zone manager is supplied and element rects otherwise.
//
//	zones := zone.New()
//	behaviors := nudge.New(nudge.WithZones(zones))
//
//	pane := nudge.NewPane(behaviors, "pane/files", "Files")
//	pane.SetBase(nudge.Rect{X: 4, Y: 2, W: 30, H: 10})
//	handle := movable.Attach(behaviors, pane, movable.Options{
//		Boundary: movable.Screen(),
//	})
//
// Behaviors share one lifecycle contract: Attach returns a handle, Update
// swaps the configuration wholesale, Detach tears everything down. All
// three degrade malformed configuration to permissive defaults instead of
// returning errors, and duplicate lifecycle calls are no-ops.
package nudge
