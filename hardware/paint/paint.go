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

// Package paint defines the Event type, the unit of work that flows through
// the paint pipeline, and the Mailbox used to expose the most recent Event to
// the bus protocol in the external clock domain.
package paint

import "fmt"

// Colour is a 3-bit additive RGB value. Bit 2 is red, bit 1 is green and bit
// 0 is blue. A set bit means the channel is present.
type Colour uint8

// The eight possible Colour values.
const (
	Black Colour = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
)

// ColourMask defines the valid bits of a Colour value.
const ColourMask = 0x07

func (col Colour) String() string {
	switch col & ColourMask {
	case Black:
		return "black"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Cyan:
		return "cyan"
	case Red:
		return "red"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	case White:
		return "white"
	}
	panic("unreachable")
}

// Event is one committed pixel emission. It is a transient value, never
// persisted beyond the step in which it is produced. The canvas image itself
// is never stored by this core.
type Event struct {
	X      uint8
	Y      uint8
	Colour Colour
}

func (ev Event) String() string {
	return fmt.Sprintf("(%d,%d) %s", ev.X, ev.Y, ev.Colour)
}

// StatusByte packs the live directional button levels, the brush/eraser mode
// and the most recently committed colour into the third byte of the bus
// protocol payload.
//
//	bit 7     up button level
//	bit 6     down button level
//	bit 5     left button level
//	bit 4     right button level
//	bit 3     brush mode (1=brush, 0=eraser)
//	bits 2-0  colour of last committed paint event
func StatusByte(up, down, left, right, brushMode bool, col Colour) uint8 {
	var b uint8
	if up {
		b |= 0x80
	}
	if down {
		b |= 0x40
	}
	if left {
		b |= 0x20
	}
	if right {
		b |= 0x10
	}
	if brushMode {
		b |= 0x08
	}
	b |= uint8(col & ColourMask)
	return b
}
