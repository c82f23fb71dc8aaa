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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/tinycanvas/hardware"
	"github.com/jetsetilly/tinycanvas/hardware/controller"
	"github.com/jetsetilly/tinycanvas/hardware/i2c"
	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/test"
)

// capture implements the PixelRenderer interface, recording every emitted
// pixel in order.
type capture struct {
	pixels []paint.Event
}

func (c *capture) SetPixel(ev paint.Event) {
	c.pixels = append(c.pixels, ev)
}

// press the buttons described by state for one step and release them for the
// next.
func press(cvs *hardware.Canvas, state controller.State) {
	state.Present = true
	cvs.SetInput(state)
	cvs.Step()
	cvs.SetInput(controller.State{Present: true})
	cvs.Step()
}

// run the canvas with no buttons held, long enough for any in-flight burst
// to complete.
func settle(cvs *hardware.Canvas) {
	cvs.SetInput(controller.State{Present: true})
	for i := 0; i < 600; i++ {
		cvs.Step()
	}
}

func TestFreehandPaint(t *testing.T) {
	cvs := hardware.NewCanvas()
	scr := &capture{}
	cvs.AttachRenderer(scr)

	// red channel on, move right one pixel
	press(cvs, controller.State{A: true})
	press(cvs, controller.State{Right: true})
	settle(cvs)

	test.Equate(t, len(scr.pixels), 1)
	test.Equate(t, scr.pixels[0].String(), "(1,0) red")
	test.Equate(t, cvs.History.CanUndo(), true)
	test.Equate(t, cvs.Mailbox.Fresh(), true)
}

func TestSmartPaint(t *testing.T) {
	cvs := hardware.NewCanvas()
	scr := &capture{}
	cvs.AttachRenderer(scr)

	// no colour channels are on so movement must not paint
	press(cvs, controller.State{Right: true})
	settle(cvs)
	test.Equate(t, len(scr.pixels), 0)

	// eraser mode always paints, in black
	press(cvs, controller.State{B: true})
	press(cvs, controller.State{Right: true})
	settle(cvs)

	test.Equate(t, len(scr.pixels), 1)
	test.Equate(t, scr.pixels[0].String(), "(2,0) black")
}

func TestRectangleFill(t *testing.T) {
	cvs := hardware.NewCanvas()
	scr := &capture{}
	cvs.AttachRenderer(scr)

	press(cvs, controller.State{A: true})

	// fill mode on, corner A at the origin
	press(cvs, controller.State{Select: true})
	press(cvs, controller.State{B: true})

	// cursor to (2,1). movement must not freehand-paint in fill mode
	press(cvs, controller.State{Right: true})
	press(cvs, controller.State{Right: true})
	press(cvs, controller.State{Up: true})
	test.Equate(t, len(scr.pixels), 0)

	// corner B commits the pair and triggers the fill
	press(cvs, controller.State{B: true})
	settle(cvs)

	test.Equate(t, len(scr.pixels), 6)

	// row-major, x fastest
	want := []string{
		"(0,0) red", "(1,0) red", "(2,0) red",
		"(0,1) red", "(1,1) red", "(2,1) red",
	}
	for i, w := range want {
		test.Equate(t, scr.pixels[i].String(), w)
	}
}

func TestBrushSizeAndSymmetry(t *testing.T) {
	cvs := hardware.NewCanvas()
	scr := &capture{}
	cvs.AttachRenderer(scr)

	press(cvs, controller.State{A: true})

	// 2x2 brush, cycle symmetry once for h-mirror
	press(cvs, controller.State{R: true})
	press(cvs, controller.State{Start: true})

	press(cvs, controller.State{Right: true})
	settle(cvs)

	// 4 footprint pixels times 2 variants
	test.Equate(t, len(scr.pixels), 8)
	test.Equate(t, scr.pixels[0].String(), "(1,0) red")
	test.Equate(t, scr.pixels[1].String(), "(254,0) red")
}

func TestUndoRedo(t *testing.T) {
	cvs := hardware.NewCanvas()
	scr := &capture{}
	cvs.AttachRenderer(scr)

	press(cvs, controller.State{A: true})
	press(cvs, controller.State{Right: true})
	settle(cvs)
	press(cvs, controller.State{Right: true})
	settle(cvs)
	test.Equate(t, len(scr.pixels), 2)

	// undo re-emits the most recent commit without disturbing the history
	press(cvs, controller.State{L: true, R: true})
	test.Equate(t, len(scr.pixels), 3)
	test.Equate(t, scr.pixels[2].String(), "(2,0) red")
	test.Equate(t, cvs.History.CanRedo(), true)

	press(cvs, controller.State{Select: true, Start: true})
	test.Equate(t, len(scr.pixels), 4)
	test.Equate(t, scr.pixels[3].String(), "(2,0) red")
	test.Equate(t, cvs.History.CanRedo(), false)

	// the combinations must not have fired their single-button effects
	test.Equate(t, int(cvs.Settings.BrushSize), 0)
	test.Equate(t, cvs.Corners.Active, false)
}

func TestResetMidBurst(t *testing.T) {
	cvs := hardware.NewCanvas()
	scr := &capture{}
	cvs.AttachRenderer(scr)

	press(cvs, controller.State{A: true})
	press(cvs, controller.State{Select: true})
	press(cvs, controller.State{B: true})
	for i := 0; i < 100; i++ {
		press(cvs, controller.State{Right: true})
	}
	press(cvs, controller.State{B: true})

	// a handful of steps into the fill
	cvs.SetInput(controller.State{Present: true})
	for i := 0; i < 10; i++ {
		cvs.Step()
	}
	test.Equate(t, cvs.Fill.Busy(), true)

	cvs.Reset()
	test.Equate(t, cvs.Fill.Busy(), false)
	test.Equate(t, cvs.History.CanUndo(), false)
	test.Equate(t, cvs.Corners.Active, false)
	test.Equate(t, cvs.Mailbox.Fresh(), false)

	n := len(scr.pixels)
	settle(cvs)
	test.Equate(t, len(scr.pixels), n)
}

func TestBusReadAfterPaint(t *testing.T) {
	cvs := hardware.NewCanvas()

	press(cvs, controller.State{A: true})
	press(cvs, controller.State{Right: true})
	settle(cvs)

	m := i2c.NewMaster(cvs.Protocol)
	snap, err := m.ReadSample()
	test.ExpectedSuccess(t, err)

	test.Equate(t, snap.X, 1)
	test.Equate(t, snap.Y, 0)

	// brush mode, no live directional levels, colour red (100)
	test.Equate(t, snap.Status, 0x0c)

	test.Equate(t, cvs.Mailbox.Fresh(), false)
}
