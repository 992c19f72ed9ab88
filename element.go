package nudge

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Positioning describes how an element's offset is interpreted.
type Positioning int

const (
	// Static elements sit where the host's layout put them; the offset is
	// ignored. Behaviors that move an element promote it out of Static
	// before applying the first offset.
	Static Positioning = iota

	// Relative offsets shift the element from its layout position.
	Relative

	// Absolute offsets place the element at (Left, Top) in its container.
	// Terminal cells have a single positioning context, so this anchors at
	// the screen origin.
	Absolute

	// Fixed offsets place the element at (Left, Top) on the screen.
	Fixed
)

func (p Positioning) String() string {
	switch p {
	case Static:
		return "static"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Element is a positioned visual element a behavior can attach to. The
// library ships Pane; hosts with their own window or widget types implement
// the interface directly.
//
// Bounds must reflect the element's current on-screen rectangle, including
// any applied offset: drag clamping reads it live on every move.
type Element interface {
	// ID is the bubblezone ID the element marks its view with. It doubles
	// as the identifier carried by behavior notifications. Empty disables
	// zone hit testing for the element.
	ID() string

	Bounds() Rect

	Offset() Position
	SetOffset(Position)

	Positioning() Positioning
	SetPositioning(Positioning)
}

var (
	paneBorder = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	paneTitle  = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
)

// Pane is a bordered floating box: the reference Element implementation.
// Its base rect is where the host placed it; the offset and positioning
// mode decide where it actually appears. Pane renders itself marked with
// its zone ID so zone-configured managers can hit test it.
type Pane struct {
	id    string
	title string
	body  string
	base  Rect
	off   Position
	mode  Positioning
	zones *zone.Manager

	// Style renders the pane frame; TitleStyle the title line.
	Style      lipgloss.Style
	TitleStyle lipgloss.Style
}

// NewPane creates a pane marked with the manager's zone manager (when one
// is configured) under the given ID.
func NewPane(mgr *Manager, id, title string) *Pane {
	p := &Pane{
		id:    id,
		title: title,
		Style: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(paneBorder),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(paneTitle),
	}
	if mgr != nil {
		p.zones = mgr.Zones()
	}
	return p
}

// ID returns the pane's zone ID.
func (p *Pane) ID() string { return p.id }

// SetBase places the pane's un-offset rectangle.
func (p *Pane) SetBase(r Rect) { p.base = r }

// Base returns the pane's un-offset rectangle.
func (p *Pane) Base() Rect { return p.base }

// SetBody replaces the pane's content.
func (p *Pane) SetBody(s string) { p.body = s }

// SetTitle replaces the pane's title.
func (p *Pane) SetTitle(s string) { p.title = s }

// Bounds returns the pane's current screen rectangle: the base rect for
// Static panes, the base shifted by the offset for Relative panes, and the
// offset itself as the origin for Absolute and Fixed panes.
func (p *Pane) Bounds() Rect {
	switch p.mode {
	case Relative:
		return p.base.Shifted(p.off.Left, p.off.Top)
	case Absolute, Fixed:
		return Rect{X: p.off.Left, Y: p.off.Top, W: p.base.W, H: p.base.H}
	default:
		return p.base
	}
}

// Offset returns the pane's current offset.
func (p *Pane) Offset() Position { return p.off }

// SetOffset moves the pane.
func (p *Pane) SetOffset(pos Position) { p.off = pos }

// Positioning returns the pane's positioning mode.
func (p *Pane) Positioning() Positioning { return p.mode }

// SetPositioning sets the pane's positioning mode.
func (p *Pane) SetPositioning(m Positioning) { p.mode = m }

// View renders the pane at its current size, zone-marked when a zone
// manager is configured. The caller composites it at Bounds().X/Y, usually
// via Composite.
func (p *Pane) View() string {
	w, h := p.base.W-2, p.base.H-2
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	content := p.body
	if p.title != "" {
		content = p.TitleStyle.Render(p.title) + "\n" + p.body
	}
	v := p.Style.Width(w).Height(h).MaxWidth(p.base.W).Render(content)
	if p.zones != nil && p.id != "" {
		return p.zones.Mark(p.id, v)
	}
	return v
}
