package nudge

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is a rendered view placed at a screen cell offset, usually an
// element's View() at its Bounds() origin.
type Layer struct {
	View string
	X, Y int
}

// Composite draws layers over a base view in argument order, so later
// layers sit on top. Hosts render their normal frame, composite floating
// elements over it, and zone-scan the result:
//
//	return zones.Scan(nudge.Composite(backdrop,
//		nudge.Layer{View: pane.View(), X: pane.Bounds().X, Y: pane.Bounds().Y},
//	))
//
// Splicing is ANSI-aware: styling and zone markers on both sides of a cut
// are preserved cell-accurately.
func Composite(base string, layers ...Layer) string {
	lines := strings.Split(base, "\n")
	for _, l := range layers {
		lines = overlayLayer(lines, l)
	}
	return strings.Join(lines, "\n")
}

func overlayLayer(lines []string, l Layer) []string {
	if l.View == "" {
		return lines
	}
	for i, fgLine := range strings.Split(l.View, "\n") {
		row := l.Y + i
		if row < 0 {
			continue
		}
		x := l.X
		if x < 0 {
			fgLine = ansi.TruncateLeft(fgLine, -x, "")
			x = 0
		}
		for row >= len(lines) {
			lines = append(lines, "")
		}
		lines[row] = overlayLine(lines[row], fgLine, x)
	}
	return lines
}

// overlayLine splices fg into bg starting at column x, padding with spaces
// when bg is narrower than the splice point.
func overlayLine(bg, fg string, x int) string {
	fgWidth := ansi.StringWidth(fg)
	if fgWidth == 0 {
		return bg
	}
	bgWidth := ansi.StringWidth(bg)

	left := ansi.Truncate(bg, x, "")
	if pad := x - bgWidth; pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	right := ""
	if bgWidth > x+fgWidth {
		right = ansi.TruncateLeft(bg, x+fgWidth, "")
	}

	return left + fg + right
}
