package nudge

import tea "github.com/charmbracelet/bubbletea"

// ListenerID identifies one registered listener. Every registration returns
// a fresh ID so that install and remove calls pair exactly, even when the
// same function is registered twice.
type ListenerID int64

type pressEntry struct {
	id ListenerID
	fn func(tea.MouseMsg) bool
}

type pointerEntry struct {
	id      ListenerID
	move    func(tea.MouseMsg)
	release func(tea.MouseMsg)
}

type keyEntry struct {
	id ListenerID
	fn func(tea.KeyMsg) bool
}

// listeners is the Manager's registry. Press and key listeners are ordered
// and consumable: dispatch walks them in registration order and stops at the
// first one that returns true. Pointer listeners are broadcast: they exist
// only while a drag-style session is active and all of them see every
// motion and release event.
type listeners struct {
	nextID  ListenerID
	press   []pressEntry
	pointer []pointerEntry
	key     []keyEntry
}

func (l *listeners) id() ListenerID {
	l.nextID++
	return l.nextID
}

func (l *listeners) addPress(fn func(tea.MouseMsg) bool) ListenerID {
	id := l.id()
	l.press = append(l.press, pressEntry{id: id, fn: fn})
	return id
}

func (l *listeners) addPointer(move, release func(tea.MouseMsg)) ListenerID {
	id := l.id()
	l.pointer = append(l.pointer, pointerEntry{id: id, move: move, release: release})
	return id
}

func (l *listeners) addKey(fn func(tea.KeyMsg) bool) ListenerID {
	id := l.id()
	l.key = append(l.key, keyEntry{id: id, fn: fn})
	return id
}

// remove drops the listener with the given ID from whichever list holds it.
// It reports whether a listener was actually removed, so callers can assert
// their install/remove calls stay paired.
func (l *listeners) remove(id ListenerID) bool {
	for i, e := range l.press {
		if e.id == id {
			l.press = append(l.press[:i], l.press[i+1:]...)
			return true
		}
	}
	for i, e := range l.pointer {
		if e.id == id {
			l.pointer = append(l.pointer[:i], l.pointer[i+1:]...)
			return true
		}
	}
	for i, e := range l.key {
		if e.id == id {
			l.key = append(l.key[:i], l.key[i+1:]...)
			return true
		}
	}
	return false
}

// has reports whether the ID is still registered. Dispatch snapshots a
// listener list before walking it and re-checks each entry here, so a
// handler may remove listeners (including itself) mid-dispatch.
func (l *listeners) has(id ListenerID) bool {
	for _, e := range l.press {
		if e.id == id {
			return true
		}
	}
	for _, e := range l.pointer {
		if e.id == id {
			return true
		}
	}
	for _, e := range l.key {
		if e.id == id {
			return true
		}
	}
	return false
}
