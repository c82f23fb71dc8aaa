// This file is part of TinyCanvas.
//
// TinyCanvas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TinyCanvas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TinyCanvas.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import (
	"os"

	"github.com/jetsetilly/tinycanvas/curated"
	"github.com/jetsetilly/tinycanvas/hardware/controller"
	"github.com/jetsetilly/tinycanvas/userinput/easyterm"
)

// Event is one user action translated into the button levels of the gamepad
// contract. The levels are held for a single press; the consumer is expected
// to release them afterwards.
type Event struct {
	State controller.State

	// out-of-band actions not part of the gamepad contract
	Quit  bool
	Reset bool
}

// Keyboard translates terminal keypresses into gamepad button events. The
// terminal is placed into cbreak mode for the lifetime of the keyboard so
// individual keypresses arrive without waiting for a newline.
type Keyboard struct {
	term   *easyterm.Terminal
	events chan Event
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard() (*Keyboard, error) {
	kb := &Keyboard{
		term:   &easyterm.Terminal{},
		events: make(chan Event, 8),
	}

	err := kb.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, curated.Errorf("userinput: %v", err)
	}
	kb.term.CBreakMode()

	go kb.readLoop()

	return kb, nil
}

// CleanUp returns the terminal to canonical mode.
func (kb *Keyboard) CleanUp() {
	kb.term.CleanUp()
}

// Events is the stream of translated keypresses.
func (kb *Keyboard) Events() <-chan Event {
	return kb.events
}

func (kb *Keyboard) readLoop() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			kb.events <- Event{Quit: true}
			return
		}

		if ev, ok := MapKey(buf[0]); ok {
			kb.events <- ev
			if ev.Quit {
				return
			}
		}
	}
}

// MapKey translates a single keypress into an Event. The boolean return
// value is false if the key has no mapping.
func MapKey(key byte) (Event, bool) {
	st := controller.State{Present: true}

	switch key {
	case 'w':
		st.Up = true
	case 's':
		st.Down = true
	case 'a':
		st.Left = true
	case 'd':
		st.Right = true
	case 'r':
		st.A = true
	case 'g':
		st.Y = true
	case 'b':
		st.X = true
	case ' ':
		st.B = true
	case ']':
		st.R = true
	case '[':
		st.L = true
	case 'y':
		st.Start = true
	case 'f':
		st.Select = true
	case 'u':
		st.L = true
		st.R = true
	case 'i':
		st.Select = true
		st.Start = true
	case 'x':
		return Event{Reset: true}, true
	case 'q', 0x03:
		// ctrl-c in cbreak mode arrives as a plain byte
		return Event{Quit: true}, true
	default:
		return Event{}, false
	}

	return Event{State: st}, true
}
