package copytext

import (
	"errors"
	"testing"

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

func pressAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
	case nil:
	default:
		out = append(out, msg)
	}
	return out
}

func stubClipboard(t *testing.T, fn func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = fn
	t.Cleanup(func() { writeClipboard = orig })
}

func TestCopyOnPress(t *testing.T) {
	var wrote string
	stubClipboard(t, func(s string) error { wrote = s; return nil })

	mgr := nudge.New()
	mgr.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	el := &box{id: "path", r: nudge.Rect{X: 0, Y: 0, W: 30, H: 1}}
	h := Attach(mgr, el, Options{Text: "/tmp/report.txt"})
	defer h.Detach()

	msgs := drain(mgr.Update(pressAt(5, 0)))
	if len(msgs) != 1 {
		t.Fatalf("press emitted %d msgs, want 1", len(msgs))
	}
	m, ok := msgs[0].(Msg)
	if !ok || m.ID != "path" || m.Text != "/tmp/report.txt" || m.Err != nil {
		t.Fatalf("emitted %#v, want clean Msg for path", msgs[0])
	}
	if wrote != "/tmp/report.txt" {
		t.Errorf("clipboard received %q", wrote)
	}

	if msgs := drain(mgr.Update(pressAt(50, 20))); len(msgs) != 0 {
		t.Errorf("press outside emitted %v", msgs)
	}
}

func TestTextFuncWins(t *testing.T) {
	var wrote string
	stubClipboard(t, func(s string) error { wrote = s; return nil })

	mgr := nudge.New()
	mgr.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	el := &box{id: "cell", r: nudge.Rect{X: 0, Y: 0, W: 10, H: 1}}
	n := 0
	h := Attach(mgr, el, Options{
		Text:     "static",
		TextFunc: func() string { n++; return "dynamic" },
	})
	defer h.Detach()

	msgs := drain(mgr.Update(pressAt(1, 0)))
	if len(msgs) != 1 || msgs[0].(Msg).Text != "dynamic" {
		t.Fatalf("emitted %#v, want dynamic text", msgs)
	}
	if wrote != "dynamic" || n != 1 {
		t.Errorf("clipboard %q, func calls %d", wrote, n)
	}
}

func TestTriggerWithoutZoneManager(t *testing.T) {
	var wrote string
	stubClipboard(t, func(s string) error { wrote = s; return nil })

	mgr := nudge.New()
	mgr.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	el := &box{id: "cell", r: nudge.Rect{X: 0, Y: 0, W: 10, H: 1}}

	// No zone manager: the named trigger resolves to the element itself.
	h := Attach(mgr, el, Options{Text: "x", Trigger: "cell-button"})
	defer h.Detach()

	msgs := drain(mgr.Update(pressAt(1, 0)))
	if len(msgs) != 1 {
		t.Fatalf("press emitted %d msgs, want 1", len(msgs))
	}
	if wrote != "x" {
		t.Errorf("clipboard received %q, want %q", wrote, "x")
	}
}

func TestClipboardErrorInMsg(t *testing.T) {
	boom := errors.New("no clipboard utility")
	stubClipboard(t, func(string) error { return boom })

	mgr := nudge.New()
	mgr.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	el := &box{id: "cell", r: nudge.Rect{X: 0, Y: 0, W: 10, H: 1}}
	h := Attach(mgr, el, Options{Text: "x"})
	defer h.Detach()

	msgs := drain(mgr.Update(pressAt(1, 0)))
	if len(msgs) != 1 {
		t.Fatalf("press emitted %d msgs, want 1", len(msgs))
	}
	if !errors.Is(msgs[0].(Msg).Err, boom) {
		t.Errorf("err = %v, want %v", msgs[0].(Msg).Err, boom)
	}
}

func TestSuppressedSelectionIgnoresPress(t *testing.T) {
	stubClipboard(t, func(string) error {
		t.Error("clipboard written while selection suppressed")
		return nil
	})

	mgr := nudge.New()
	mgr.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	mgr.Env().SetSelectionEnabled(false)
	el := &box{id: "cell", r: nudge.Rect{X: 0, Y: 0, W: 10, H: 1}}
	h := Attach(mgr, el, Options{Text: "x"})
	defer h.Detach()

	if msgs := drain(mgr.Update(pressAt(1, 0))); len(msgs) != 0 {
		t.Errorf("suppressed press emitted %v", msgs)
	}
}

func TestPressConsumed(t *testing.T) {
	stubClipboard(t, func(string) error { return nil })

	mgr := nudge.New()
	mgr.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	el := &box{id: "cell", r: nudge.Rect{X: 0, Y: 0, W: 10, H: 1}}
	h := Attach(mgr, el, Options{Text: "x"})
	defer h.Detach()

	var leaked bool
	id := mgr.OnPress(func(tea.MouseMsg) bool { leaked = true; return false })
	defer mgr.Off(id)

	drain(mgr.Update(pressAt(1, 0)))
	if leaked {
		t.Error("copy press reached a later listener")
	}
}
