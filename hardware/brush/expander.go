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

// Package brush expands one logical paint action into the ordered burst of
// physical pixels covered by the brush footprint and its symmetry
// reflections.
//
// The footprint of a brush of size s is a square of side s+1 centred on the
// base pixel. The offset range is -(s>>1) to s-(s>>1) inclusive: for even
// sided brushes the extra pixel falls on the positive side of the base
// pixel. This centering rule is inherited from the original fixed-point
// arithmetic and emission sequences depend on it, so it must not be
// "corrected".
//
// Emission order is: offset rows outer, offset columns inner, symmetry
// variants innermost. The variant order is identity, x-mirror, y-mirror,
// both-mirror, with the symmetry mode selecting which of the four are
// emitted.
//
// Coordinates that fall outside the canvas wrap under unsigned arithmetic.
// There is no clamping: the wrap is a specified boundary behaviour of the
// fixed-width coordinate space, not an error.
package brush

import (
	"fmt"

	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/hardware/settings"
	"github.com/jetsetilly/tinycanvas/logger"
)

// Expander enumerates the brush footprint around a base pixel, one pixel per
// step.
type Expander struct {
	busy bool

	base   paint.Event
	sym    settings.Symmetry

	// footprint offsets, computed on Start()
	minOffset int
	maxOffset int

	// enumeration state: current row and column offsets and the variant
	// index within the current footprint pixel
	row     int
	col     int
	variant int
}

// NewExpander is the preferred method of initialisation for the Expander
// type.
func NewExpander() *Expander {
	return &Expander{}
}

func (exp *Expander) String() string {
	if !exp.busy {
		return "expander: idle"
	}
	return fmt.Sprintf("expander: busy %s around %s", exp.sym, exp.base)
}

// Reset the expander, abandoning any burst in progress.
func (exp *Expander) Reset() {
	exp.busy = false
}

// Busy is true while a burst is in progress. New triggers are gated while
// busy.
func (exp *Expander) Busy() bool {
	return exp.busy
}

// Start a burst around the base pixel. The burst emits footprint x variants
// pixels over the following calls to Step(). A trigger while the expander is
// busy is ignored.
func (exp *Expander) Start(base paint.Event, size uint8, sym settings.Symmetry) {
	if exp.busy {
		logger.Log("brush", "trigger ignored (expander busy)")
		return
	}

	if size > settings.MaxBrushSize {
		size = settings.MaxBrushSize
	}

	exp.base = base
	exp.sym = sym
	exp.minOffset = -int(size >> 1)
	exp.maxOffset = int(size) - int(size>>1)
	exp.row = exp.minOffset
	exp.col = exp.minOffset
	exp.variant = 0
	exp.busy = true
}

// whether the numbered variant is emitted for the symmetry mode. variants
// are numbered identity (0), x-mirror (1), y-mirror (2), both-mirror (3).
func variantActive(sym settings.Symmetry, variant int) bool {
	switch variant {
	case 0:
		return true
	case 1:
		return sym == settings.SymmetryHorizontal || sym == settings.SymmetryFourWay
	case 2:
		return sym == settings.SymmetryVertical || sym == settings.SymmetryFourWay
	case 3:
		return sym == settings.SymmetryFourWay
	}
	return false
}

// Step advances the expander by one step, emitting one pixel of the burst
// with valid set to true. Once the last pixel has been emitted the expander
// returns to idle and subsequent calls emit nothing.
func (exp *Expander) Step() (ev paint.Event, valid bool) {
	if !exp.busy {
		return paint.Event{}, false
	}

	// the footprint pixel for the current offsets. conversion through uint8
	// wraps at the canvas edges
	px := uint8(int(exp.base.X) + exp.col)
	py := uint8(int(exp.base.Y) + exp.row)

	// apply the current reflection variant
	switch exp.variant {
	case 1:
		px = 255 - px
	case 2:
		py = 255 - py
	case 3:
		px = 255 - px
		py = 255 - py
	}

	ev = paint.Event{X: px, Y: py, Colour: exp.base.Colour}

	// advance to the next active variant, then the next column, then the
	// next row
	exp.variant++
	for exp.variant < 4 && !variantActive(exp.sym, exp.variant) {
		exp.variant++
	}
	if exp.variant >= 4 {
		exp.variant = 0
		if exp.col == exp.maxOffset {
			exp.col = exp.minOffset
			if exp.row == exp.maxOffset {
				exp.busy = false
			} else {
				exp.row++
			}
		} else {
			exp.col++
		}
	}

	return ev, true
}
