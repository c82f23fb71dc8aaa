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

package hardware

import (
	"github.com/jetsetilly/tinycanvas/hardware/controller"
	"github.com/jetsetilly/tinycanvas/hardware/paint"
)

// Step advances the canvas by one step of the internal clock.
//
// There is exactly one active producer of paint events at a time. A busy
// burst generator takes priority over everything; a fill trigger over a
// freehand trigger; and undo/redo only act while no generator is busy. The
// priority rule is resolved once per step.
func (cvs *Canvas) Step() {
	inp := cvs.Controller.Strobe()

	// burst generators run ahead of trigger processing. their emissions are
	// the result of triggers accepted in previous steps
	busy := cvs.Fill.Busy() || cvs.Brush.Busy()
	if cvs.Fill.Busy() {
		if ev, ok := cvs.Fill.Step(); ok {
			cvs.commit(ev)
		}
	} else if cvs.Brush.Busy() {
		if ev, ok := cvs.Brush.Step(); ok {
			cvs.commit(ev)
		}
	}

	// toggles and settings respond in every state
	if inp.ToggleRed {
		cvs.Mixer.ToggleRed()
	}
	if inp.ToggleGreen {
		cvs.Mixer.ToggleGreen()
	}
	if inp.ToggleBlue {
		cvs.Mixer.ToggleBlue()
	}
	if inp.SizeUp {
		cvs.Settings.SizeUp()
	}
	if inp.SizeDown {
		cvs.Settings.SizeDown()
	}
	if inp.SymmetryCycle {
		cvs.Settings.CycleSymmetry()
	}
	if inp.FillToggle {
		cvs.Corners.Toggle()
	}

	// the B button changes meaning with the fill mode: a corner point while
	// fill mode is active, the brush/eraser toggle otherwise
	if inp.Action {
		if cvs.Corners.Active {
			if !busy {
				if trigger, ax, ay := cvs.Corners.Point(cvs.Controller.X, cvs.Controller.Y); trigger {
					cvs.Fill.Start(ax, ay, cvs.Controller.X, cvs.Controller.Y, cvs.Mixer.Colour())
				}
			}
		} else {
			cvs.Mixer.ToggleMode()
		}
	}

	// freehand painting: cursor movement triggers a brush burst, suppressed
	// while fill mode is active or a generator is busy
	if inp.Moved && !busy && !cvs.Corners.Active && cvs.Mixer.PaintEnable() {
		base := paint.Event{
			X:      cvs.Controller.X,
			Y:      cvs.Controller.Y,
			Colour: cvs.Mixer.Colour(),
		}
		cvs.Brush.Start(base, cvs.Settings.BrushSize, cvs.Settings.Symmetry)
	}

	// undo and redo wait for any in-flight burst to finish
	if !busy {
		if inp.Undo {
			if ev, ok := cvs.History.Undo(); ok {
				cvs.restore(ev)
			}
		} else if inp.Redo {
			if ev, ok := cvs.History.Redo(); ok {
				cvs.restore(ev)
			}
		}
	}

	// the live state served in the status byte follows the raw levels, not
	// the strobed pulses. an absent controller reads as all levels low
	st := cvs.Controller.State()
	if !st.Present {
		st = controller.State{}
	}
	cvs.Mailbox.SetLiveState(st.Up, st.Down, st.Left, st.Right, cvs.Mixer.BrushMode)
}
