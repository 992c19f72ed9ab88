package dragscroll

import "github.com/charmbracelet/bubbles/viewport"

// ViewportScroller adapts a bubbles viewport to the Scroller interface.
// Terminal viewports scroll vertically; horizontal deltas are dropped.
type ViewportScroller struct {
	V *viewport.Model
}

func (s ViewportScroller) ScrollBy(dx, dy int) {
	s.V.SetYOffset(s.V.YOffset + dy)
}
