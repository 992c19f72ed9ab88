package movable

import (
	"strconv"
	"strings"

	"github.com/nudgeui/nudge"
)

// Options configures a movable attachment. Every field is optional: the
// zero value attaches an unconstrained drag with cursor effects enabled.
// Malformed values degrade to their defaults; Attach and Update never
// reject a configuration.
type Options struct {
	// Boundary constrains movement to a region read live on every move.
	// The zero value leaves movement unconstrained (or limited by Limit).
	Boundary Boundary

	// Limit is the per-axis margin. With a boundary it is how close to the
	// boundary edge the element may approach; without one it bounds the
	// cumulative displacement from the attachment point. Each axis accepts
	// a cell count ("12") or a percentage of the element's own size on
	// that axis ("25%"); anything else means zero, i.e. no limit on that
	// axis.
	Limit LimitSpec

	// Handle is the zone ID that accepts presses. Empty means the element
	// itself. Ignored when the Manager has no zone manager.
	Handle string

	// Ignore lists zone IDs inside the handle that never start a drag, so
	// interactive descendants (inputs, buttons) stay usable.
	Ignore []string

	// Enabled toggles the behavior; nil means true.
	Enabled *bool

	// Cursor toggles pointer-shape side effects; nil means true.
	Cursor *bool
}

// Bool is a convenience for the *bool option fields:
//
//	movable.Options{Enabled: movable.Bool(false)}
func Bool(v bool) *bool { return &v }

// LimitSpec is a raw per-axis limit.
type LimitSpec struct {
	X, Y string
}

// Limit applies the same raw limit to both axes.
func Limit(v string) LimitSpec { return LimitSpec{X: v, Y: v} }

type boundaryKind uint8

const (
	boundaryNone boundaryKind = iota
	boundaryScreen
	boundaryWithin
)

// Boundary selects the region an element is clamped against. The zero
// value is no boundary.
type Boundary struct {
	kind boundaryKind
	el   nudge.Element
}

// Screen clamps against the live terminal window rect.
func Screen() Boundary { return Boundary{kind: boundaryScreen} }

// Within clamps against another element's live bounds. A nil element means
// no boundary.
func Within(el nudge.Element) Boundary {
	if el == nil {
		return Boundary{}
	}
	return Boundary{kind: boundaryWithin, el: el}
}

// region resolves the boundary to a rect, reporting false when movement is
// unconstrained.
func (b Boundary) region(mgr *nudge.Manager) (nudge.Rect, bool) {
	switch b.kind {
	case boundaryScreen:
		return mgr.Screen(), true
	case boundaryWithin:
		return b.el.Bounds(), true
	default:
		return nudge.Rect{}, false
	}
}

// axisLimit is one resolved axis of a limit: a cell count, or a percentage
// of the element's own size on that axis.
type axisLimit struct {
	percent bool
	value   int
}

// resolve converts the limit to cells for an element of the given size.
// Percentages floor.
func (a axisLimit) resolve(size int) int {
	if a.percent {
		return a.value * size / 100
	}
	return a.value
}

type normLimit struct {
	x, y axisLimit
}

// config is the resolved, immutable form of Options. It is replaced
// wholesale on every reconfiguration.
type config struct {
	boundary Boundary
	limit    normLimit
	handle   string
	ignore   []string
	enabled  bool
	cursor   bool
}

// resolve normalizes raw options. It is pure and safe to call on every
// reconfiguration.
func resolve(o Options) config {
	return config{
		boundary: o.Boundary,
		limit:    normLimit{x: parseAxis(o.Limit.X), y: parseAxis(o.Limit.Y)},
		handle:   o.Handle,
		ignore:   append([]string(nil), o.Ignore...),
		enabled:  o.Enabled == nil || *o.Enabled,
		cursor:   o.Cursor == nil || *o.Cursor,
	}
}

// parseAxis parses one raw axis limit. Unparseable input resolves to the
// zero limit rather than an error.
func parseAxis(raw string) axisLimit {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return axisLimit{}
	}
	if rest, ok := strings.CutSuffix(raw, "%"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return axisLimit{}
		}
		return axisLimit{percent: true, value: n}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return axisLimit{}
	}
	return axisLimit{value: n}
}
