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

package fill

import (
	"fmt"

	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/logger"
)

// GeneratorState records the progress of the rectangle generator.
type GeneratorState int

// List of valid GeneratorState values.
const (
	GeneratorIdle GeneratorState = iota
	GeneratorSetup
	GeneratorFill
	GeneratorFinish
)

func (state GeneratorState) String() string {
	switch state {
	case GeneratorIdle:
		return "idle"
	case GeneratorSetup:
		return "setup"
	case GeneratorFill:
		return "fill"
	case GeneratorFinish:
		return "finish"
	}
	panic("unknown generator state")
}

// Generator enumerates every pixel inside the normalised bounding box of two
// corners, row-major (x fastest), one pixel per step. The generator's output
// is not passed through the brush expander: a fill is already an area
// operation so the colour and position are delivered one raw pixel per step.
type Generator struct {
	state GeneratorState

	// corners as supplied to Start(), normalised during the setup step
	ax, ay uint8
	bx, by uint8

	minX, maxX uint8
	minY, maxY uint8

	// enumeration cursor
	x, y uint8

	colour paint.Colour

	// true for the single step in which the generator returns to idle
	done bool
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator() *Generator {
	return &Generator{}
}

func (gen *Generator) String() string {
	return fmt.Sprintf("fill generator: %s", gen.state)
}

// Reset the generator, abandoning any fill in progress.
func (gen *Generator) Reset() {
	gen.state = GeneratorIdle
	gen.done = false
}

// Busy is true from the accepting Start() until the generator returns to
// idle. New triggers are gated while busy.
func (gen *Generator) Busy() bool {
	return gen.state != GeneratorIdle
}

// Done is true for exactly one step, when the generator completes.
func (gen *Generator) Done() bool {
	return gen.done
}

// Start a fill of the rectangle described by the two corners. The corners
// need not be ordered; they are normalised during the setup step. A trigger
// while the generator is busy is ignored.
func (gen *Generator) Start(ax, ay, bx, by uint8, col paint.Colour) {
	if gen.Busy() {
		logger.Log("fill", "trigger ignored (generator busy)")
		return
	}

	gen.ax = ax
	gen.ay = ay
	gen.bx = bx
	gen.by = by
	gen.colour = col
	gen.state = GeneratorSetup
	gen.done = false
}

// Step advances the generator by one step. During the fill state one pixel
// is emitted per step with valid set to true.
func (gen *Generator) Step() (ev paint.Event, valid bool) {
	gen.done = false

	switch gen.state {
	case GeneratorIdle:
		// nothing to do

	case GeneratorSetup:
		// normalise corners into the bounding box
		gen.minX, gen.maxX = gen.ax, gen.bx
		if gen.minX > gen.maxX {
			gen.minX, gen.maxX = gen.maxX, gen.minX
		}
		gen.minY, gen.maxY = gen.ay, gen.by
		if gen.minY > gen.maxY {
			gen.minY, gen.maxY = gen.maxY, gen.minY
		}
		gen.x = gen.minX
		gen.y = gen.minY
		gen.state = GeneratorFill
		logger.Logf("fill", "filling (%d,%d) to (%d,%d)", gen.minX, gen.minY, gen.maxX, gen.maxY)

	case GeneratorFill:
		ev = paint.Event{X: gen.x, Y: gen.y, Colour: gen.colour}
		valid = true

		// advance row-major: x fastest, y outer. a degenerate rectangle
		// (corner A equal to corner B) still emits exactly one pixel
		if gen.x == gen.maxX {
			if gen.y == gen.maxY {
				gen.state = GeneratorFinish
			} else {
				gen.x = gen.minX
				gen.y++
			}
		} else {
			gen.x++
		}

	case GeneratorFinish:
		gen.done = true
		gen.state = GeneratorIdle
	}

	return ev, valid
}
