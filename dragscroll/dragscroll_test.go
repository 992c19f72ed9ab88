package dragscroll

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudgeui/nudge"
)

type box struct {
	id string
	r  nudge.Rect
}

func (b *box) ID() string { return b.id }

func (b *box) Bounds() nudge.Rect { return b.r }

func (b *box) Offset() nudge.Position { return nudge.Position{} }

func (b *box) SetOffset(nudge.Position) {}

func (b *box) Positioning() nudge.Positioning { return nudge.Static }

func (b *box) SetPositioning(nudge.Positioning) {}

type recorder struct {
	dx, dy int
	calls  int
}

func (r *recorder) ScrollBy(dx, dy int) {
	r.dx += dx
	r.dy += dy
	r.calls++
}

func pressAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motionAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func releaseAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func newRig(t *testing.T, opts Options) (*nudge.Manager, *recorder, *Handle) {
	t.Helper()
	mgr := nudge.New()
	mgr.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	el := &box{id: "log", r: nudge.Rect{X: 0, Y: 0, W: 40, H: 10}}
	rec := &recorder{}
	h := Attach(mgr, el, rec, opts)
	t.Cleanup(h.Detach)
	return mgr, rec, h
}

func TestPanNatural(t *testing.T) {
	mgr, rec, h := newRig(t, Options{})

	mgr.Update(pressAt(10, 5))
	if !h.Panning() {
		t.Fatal("not panning after press")
	}
	mgr.Update(motionAt(10, 8))
	mgr.Update(motionAt(15, 8))
	mgr.Update(releaseAt(15, 8))

	if rec.dx != -5 || rec.dy != -3 {
		t.Errorf("scrolled (%d,%d), want natural (-5,-3)", rec.dx, rec.dy)
	}
	if h.Panning() {
		t.Error("still panning after release")
	}

	// Motion without a press scrolls nothing.
	before := rec.calls
	mgr.Update(motionAt(20, 20))
	if rec.calls != before {
		t.Error("motion outside a pan reached the scroller")
	}
}

func TestPanInverted(t *testing.T) {
	mgr, rec, _ := newRig(t, Options{Invert: nudge.Bool(true)})

	mgr.Update(pressAt(10, 5))
	mgr.Update(motionAt(13, 9))
	mgr.Update(releaseAt(13, 9))

	if rec.dx != 3 || rec.dy != 4 {
		t.Errorf("scrolled (%d,%d), want inverted (3,4)", rec.dx, rec.dy)
	}
}

func TestAxisFilter(t *testing.T) {
	tests := []struct {
		name   string
		axis   Axis
		wantDX int
		wantDY int
	}{
		{"vertical", Vertical, 0, -4},
		{"horizontal", Horizontal, -3, 0},
		{"both", Both, -3, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, rec, _ := newRig(t, Options{Axis: tt.axis})
			mgr.Update(pressAt(10, 5))
			mgr.Update(motionAt(13, 9))
			mgr.Update(releaseAt(13, 9))
			if rec.dx != tt.wantDX || rec.dy != tt.wantDY {
				t.Errorf("scrolled (%d,%d), want (%d,%d)", rec.dx, rec.dy, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestZoneWithoutZoneManager(t *testing.T) {
	// No zone manager: the named zone resolves to the element itself.
	mgr, rec, h := newRig(t, Options{Zone: "log-body"})

	mgr.Update(pressAt(10, 5))
	if !h.Panning() {
		t.Fatal("not panning after press on element")
	}
	mgr.Update(motionAt(10, 9))
	mgr.Update(releaseAt(10, 9))
	if rec.dy != -4 {
		t.Errorf("dy = %d, want -4", rec.dy)
	}
}

func TestSelectionSuppressedWhilePanning(t *testing.T) {
	mgr, _, _ := newRig(t, Options{})
	env := mgr.Env()

	mgr.Update(pressAt(10, 5))
	if env.SelectionEnabled() {
		t.Error("selection enabled mid-pan")
	}
	mgr.Update(releaseAt(10, 5))
	if !env.SelectionEnabled() {
		t.Error("selection not restored after pan")
	}

	// A host override mid-pan survives the restore.
	mgr.Update(pressAt(10, 5))
	env.SetSelectionEnabled(true)
	mgr.Update(releaseAt(10, 5))
	if !env.SelectionEnabled() {
		t.Error("restore clobbered host selection value")
	}
}

func TestLifecycle(t *testing.T) {
	mgr, rec, h := newRig(t, Options{})

	mgr.Update(pressAt(10, 5))
	h.Update(Options{Axis: Vertical})
	if h.Panning() {
		t.Error("pan survived reconfiguration")
	}
	if got := mgr.Counts().Pointer; got != 0 {
		t.Errorf("pointer listeners after update = %d, want 0", got)
	}
	if !mgr.Env().SelectionEnabled() {
		t.Error("selection not restored by forced end")
	}

	mgr.Update(pressAt(10, 5))
	mgr.Update(motionAt(10, 8))
	if rec.dy != -3 {
		t.Errorf("dy after reattach = %d, want -3", rec.dy)
	}
	mgr.Update(releaseAt(10, 8))

	h.Detach()
	c := mgr.Counts()
	if c.Press != 0 || c.Pointer != 0 {
		t.Errorf("counts after detach = %+v, want zero", c)
	}
	h.Update(Options{})
	if mgr.Counts().Press != 0 {
		t.Error("update after detach re-registered")
	}
}

func TestViewportScroller(t *testing.T) {
	vp := viewport.New(20, 5)
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = "line"
	}
	vp.SetContent(strings.Join(lines, "\n"))

	sc := ViewportScroller{V: &vp}
	sc.ScrollBy(0, 3)
	if vp.YOffset != 3 {
		t.Fatalf("YOffset = %d, want 3", vp.YOffset)
	}
	sc.ScrollBy(7, 2) // horizontal component dropped
	if vp.YOffset != 5 {
		t.Fatalf("YOffset = %d, want 5", vp.YOffset)
	}
	sc.ScrollBy(0, -100)
	if vp.YOffset != 0 {
		t.Fatalf("YOffset = %d, want clamped 0", vp.YOffset)
	}
}
