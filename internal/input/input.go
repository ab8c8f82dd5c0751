// Package input defines the hardware-independent key and event model the
// orchestrator routes to the active view.
package input

import "strings"

// Key identifies a key the game reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeySpace
	KeyEscape
	KeyBackspace
	KeyC
	KeyE
	KeyS
	KeyX
	KeyZ
	KeyCount // sentinel
)

var keyNames = [KeyCount]string{
	KeyNone:      "none",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyEscape:    "escape",
	KeyBackspace: "backspace",
	KeyC:         "c",
	KeyE:         "e",
	KeyS:         "s",
	KeyX:         "x",
	KeyZ:         "z",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return "unknown"
}

// ParseKey returns the key with the given name (case-insensitive).
func ParseKey(name string) (Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KeyUp; k < KeyCount; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KeyNone, false
}

// KeySet is a snapshot of currently pressed keys.
type KeySet uint32

// Keys builds a set from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is pressed.
func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet { return s | 1<<k }

// Without returns the set with k removed.
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// Confirm reports whether any of the accept keys is pressed.
func (s KeySet) Confirm() bool { return s.Has(KeyEnter) || s.Has(KeySpace) || s.Has(KeyZ) }

// Cancel reports whether any of the back keys is pressed.
func (s KeySet) Cancel() bool { return s.Has(KeyX) || s.Has(KeyBackspace) }

func (s KeySet) String() string {
	var names []string
	for k := KeyUp; k < KeyCount; k++ {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}

// EventKind is the type of an input event.
type EventKind uint8

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventKeyUp
	EventResize
)

// Event is a single entry of the input queue.
type Event struct {
	Kind   EventKind
	Key    Key // KeyDown / KeyUp
	Width  int // Resize
	Height int // Resize
}

// Quit returns a window-close event.
func Quit() Event { return Event{Kind: EventQuit} }

// Press returns a key-down event for k.
func Press(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// Release returns a key-up event for k.
func Release(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// Resize returns a window resize event.
func Resize(w, h int) Event { return Event{Kind: EventResize, Width: w, Height: h} }
