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

package brush_test

import (
	"testing"

	"github.com/jetsetilly/tinycanvas/hardware/brush"
	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/hardware/settings"
	"github.com/jetsetilly/tinycanvas/test"
)

// drain runs the expander until it goes idle, collecting every emitted
// pixel.
func drain(t *testing.T, exp *brush.Expander) []paint.Event {
	t.Helper()

	var events []paint.Event
	for i := 0; exp.Busy(); i++ {
		if i > 1000 {
			t.Fatal("expander did not finish")
		}
		ev, valid := exp.Step()
		if valid {
			events = append(events, ev)
		}
	}
	return events
}

func contains(events []paint.Event, x, y uint8) bool {
	for _, ev := range events {
		if ev.X == x && ev.Y == y {
			return true
		}
	}
	return false
}

func TestSinglePixel(t *testing.T) {
	exp := brush.NewExpander()

	// brush size 0, symmetry off: exactly one pixel, the base pixel
	exp.Start(paint.Event{X: 10, Y: 10, Colour: paint.Magenta}, 0, settings.SymmetryOff)
	events := drain(t, exp)

	test.Equate(t, len(events), 1)
	test.Equate(t, events[0].X, 10)
	test.Equate(t, events[0].Y, 10)
	test.Equate(t, uint8(events[0].Colour), uint8(paint.Magenta))
}

func TestEvenBrushCentering(t *testing.T) {
	exp := brush.NewExpander()

	// a 2x2 brush puts the extra pixel on the positive side of the base
	exp.Start(paint.Event{X: 10, Y: 10, Colour: paint.Red}, 1, settings.SymmetryOff)
	events := drain(t, exp)

	test.Equate(t, len(events), 4)
	test.ExpectedSuccess(t, contains(events, 10, 10))
	test.ExpectedSuccess(t, contains(events, 11, 10))
	test.ExpectedSuccess(t, contains(events, 10, 11))
	test.ExpectedSuccess(t, contains(events, 11, 11))

	// a 3x3 brush is centred exactly
	exp.Start(paint.Event{X: 10, Y: 10, Colour: paint.Red}, 2, settings.SymmetryOff)
	events = drain(t, exp)

	test.Equate(t, len(events), 9)
	test.ExpectedSuccess(t, contains(events, 9, 9))
	test.ExpectedSuccess(t, contains(events, 11, 11))
}

func TestFourWaySymmetry(t *testing.T) {
	exp := brush.NewExpander()

	// 2x2 brush with four-way symmetry: 4x4=16 pixels
	exp.Start(paint.Event{X: 10, Y: 10, Colour: paint.White}, 1, settings.SymmetryFourWay)
	events := drain(t, exp)

	test.Equate(t, len(events), 16)
	test.ExpectedSuccess(t, contains(events, 10, 10))
	test.ExpectedSuccess(t, contains(events, 245, 10))
	test.ExpectedSuccess(t, contains(events, 10, 245))
	test.ExpectedSuccess(t, contains(events, 245, 245))
}

func TestEmissionOrder(t *testing.T) {
	exp := brush.NewExpander()

	// offset rows outer, offset columns inner, symmetry variants innermost
	exp.Start(paint.Event{X: 10, Y: 10, Colour: paint.Green}, 1, settings.SymmetryHorizontal)
	events := drain(t, exp)

	test.Equate(t, len(events), 8)

	expected := []paint.Event{
		{X: 10, Y: 10, Colour: paint.Green},
		{X: 245, Y: 10, Colour: paint.Green},
		{X: 11, Y: 10, Colour: paint.Green},
		{X: 244, Y: 10, Colour: paint.Green},
		{X: 10, Y: 11, Colour: paint.Green},
		{X: 245, Y: 11, Colour: paint.Green},
		{X: 11, Y: 11, Colour: paint.Green},
		{X: 244, Y: 11, Colour: paint.Green},
	}
	for i := range expected {
		test.Equate(t, events[i].X, expected[i].X)
		test.Equate(t, events[i].Y, expected[i].Y)
	}
}

func TestVerticalSymmetry(t *testing.T) {
	exp := brush.NewExpander()

	exp.Start(paint.Event{X: 100, Y: 40, Colour: paint.Blue}, 0, settings.SymmetryVertical)
	events := drain(t, exp)

	test.Equate(t, len(events), 2)
	test.Equate(t, events[0].X, 100)
	test.Equate(t, events[0].Y, 40)
	test.Equate(t, events[1].X, 100)
	test.Equate(t, events[1].Y, 215)
}

func TestEdgeWraparound(t *testing.T) {
	exp := brush.NewExpander()

	// a 3x3 brush at the origin wraps to the opposite edges of the canvas.
	// this is specified behaviour of the fixed-width coordinate space, not
	// clamping
	exp.Start(paint.Event{X: 0, Y: 0, Colour: paint.Red}, 2, settings.SymmetryOff)
	events := drain(t, exp)

	test.Equate(t, len(events), 9)
	test.ExpectedSuccess(t, contains(events, 255, 255))
	test.ExpectedSuccess(t, contains(events, 0, 255))
	test.ExpectedSuccess(t, contains(events, 255, 0))
	test.ExpectedSuccess(t, contains(events, 1, 1))
}

func TestBusyGatesTriggers(t *testing.T) {
	exp := brush.NewExpander()

	exp.Start(paint.Event{X: 10, Y: 10, Colour: paint.Red}, 1, settings.SymmetryOff)
	_, _ = exp.Step()

	// the second trigger is ignored: the burst runs to completion with the
	// original parameters
	exp.Start(paint.Event{X: 200, Y: 200, Colour: paint.Blue}, 0, settings.SymmetryOff)

	events := drain(t, exp)
	test.Equate(t, len(events), 3)
	test.ExpectedFailure(t, contains(events, 200, 200))
}
