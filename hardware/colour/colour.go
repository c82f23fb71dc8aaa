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

// Package colour mixes the three channel toggles and the brush/eraser mode
// into the 3-bit colour and paint-enable flag consumed by the paint
// pipeline. It is purely combinational over the toggle state: the outputs
// are re-evaluated on demand and there is no hidden history beyond the
// toggles themselves.
package colour

import (
	"fmt"

	"github.com/jetsetilly/tinycanvas/hardware/paint"
)

// Mixer holds the channel toggles and the brush/eraser mode.
type Mixer struct {
	Red   bool
	Green bool
	Blue  bool

	// true means brush mode, false means eraser mode
	BrushMode bool
}

// NewMixer is the preferred method of initialisation for the Mixer type.
func NewMixer() *Mixer {
	mx := &Mixer{}
	mx.Reset()
	return mx
}

func (mx *Mixer) String() string {
	mode := "brush"
	if !mx.BrushMode {
		mode = "eraser"
	}
	return fmt.Sprintf("%s %s", mode, mx.Colour())
}

// Reset the mixer to its initial state: all channels off, brush mode.
func (mx *Mixer) Reset() {
	mx.Red = false
	mx.Green = false
	mx.Blue = false
	mx.BrushMode = true
}

// ToggleRed flips the red channel toggle.
func (mx *Mixer) ToggleRed() {
	mx.Red = !mx.Red
}

// ToggleGreen flips the green channel toggle.
func (mx *Mixer) ToggleGreen() {
	mx.Green = !mx.Green
}

// ToggleBlue flips the blue channel toggle.
func (mx *Mixer) ToggleBlue() {
	mx.Blue = !mx.Blue
}

// ToggleMode flips between brush and eraser mode.
func (mx *Mixer) ToggleMode() {
	mx.BrushMode = !mx.BrushMode
}

// Colour returns the additive mix of the channel toggles. Eraser mode forces
// black regardless of the toggles.
func (mx *Mixer) Colour() paint.Colour {
	if !mx.BrushMode {
		return paint.Black
	}

	var col paint.Colour
	if mx.Red {
		col |= paint.Red
	}
	if mx.Green {
		col |= paint.Green
	}
	if mx.Blue {
		col |= paint.Blue
	}
	return col
}

// PaintEnable returns true if cursor movement should emit paint events. In
// brush mode an all-off selection moves the cursor without painting ("smart
// paint"). The eraser always paints.
func (mx *Mixer) PaintEnable() bool {
	if !mx.BrushMode {
		return true
	}
	return mx.Red || mx.Green || mx.Blue
}
