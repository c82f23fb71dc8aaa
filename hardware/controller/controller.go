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

// Package controller interprets the button levels delivered by the external
// gamepad decoder. The decoder owns debouncing; this package owns everything
// from the levels onwards: single-sample edge detection, the arbitration of
// two-button combinations against their single-button effects, and the
// cursor integrator.
package controller

import "fmt"

// State is the button input contract with the external decoder: one boolean
// level per button, sampled once per step. The Present flag indicates that a
// controller is attached at all.
type State struct {
	Up, Down, Left, Right bool
	A, B, X, Y            bool
	L, R                  bool
	Select, Start         bool
	Present               bool
}

// Input is the result of strobing the controller for one step. All fields
// are single-step pulses derived from rising edges of the button levels.
//
// The combination pulses (Undo, Redo) fire on the rising edge of the AND of
// their two source levels. While either combination is held the single
// button pulses it is built from are suppressed, so a combination press is
// never double-counted as two single presses.
type Input struct {
	// colour toggles (A, Y, X buttons)
	ToggleRed, ToggleGreen, ToggleBlue bool

	// the B button. the consumer decides whether this is a brush/eraser
	// toggle or a point-set event depending on fill mode
	Action bool

	// shoulder buttons in isolation
	SizeUp, SizeDown bool

	// select and start in isolation
	FillToggle, SymmetryCycle bool

	// two-button combinations: L+R and select+start
	Undo, Redo bool

	// true if any directional rising edge moved the cursor this step
	Moved bool
}

// Controller converts button levels into the pulses of the Input type and
// integrates the directional edges into the cursor position.
type Controller struct {
	state State

	// levels from the previous step, for edge detection. the combination
	// levels are tracked separately from the levels they are derived from
	prev      State
	prevUndo  bool
	prevRedo  bool

	// cursor position. wraps at the canvas edges in both directions
	X uint8
	Y uint8
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	return &Controller{}
}

func (con *Controller) String() string {
	return fmt.Sprintf("cursor=(%d,%d)", con.X, con.Y)
}

// Reset the controller to its initial state: cursor at origin, no levels.
func (con *Controller) Reset() {
	con.state = State{}
	con.prev = State{}
	con.prevUndo = false
	con.prevRedo = false
	con.X = 0
	con.Y = 0
}

// Set the button levels for the next call to Strobe(). The levels persist
// until the next call to Set().
func (con *Controller) Set(state State) {
	con.state = state
}

// State returns the current button levels.
func (con *Controller) State() State {
	return con.state
}

// rising edge of a single level between the previous and current step.
func rising(prev, curr bool) bool {
	return !prev && curr
}

// Strobe samples the current button levels against the previous step's
// levels and returns the pulses for this step. The cursor position is
// updated as a side effect of any directional edge.
func (con *Controller) Strobe() Input {
	var inp Input

	s := con.state
	if !s.Present {
		s = State{}
	}

	// combination levels, past and present
	undo := s.L && s.R
	redo := s.Select && s.Start

	inp.ToggleRed = rising(con.prev.A, s.A)
	inp.ToggleGreen = rising(con.prev.Y, s.Y)
	inp.ToggleBlue = rising(con.prev.X, s.X)
	inp.Action = rising(con.prev.B, s.B)

	// the shoulder buttons only count in isolation. a rising edge of one
	// while the other is held is the start of the undo combination, not a
	// size change
	inp.SizeUp = rising(con.prev.R, s.R) && !s.L
	inp.SizeDown = rising(con.prev.L, s.L) && !s.R
	inp.Undo = rising(con.prevUndo, undo)

	// same arbitration for select/start and the redo combination
	inp.FillToggle = rising(con.prev.Select, s.Select) && !s.Start
	inp.SymmetryCycle = rising(con.prev.Start, s.Start) && !s.Select
	inp.Redo = rising(con.prevRedo, redo)

	// cursor integration. each directional rising edge moves the cursor one
	// pixel, wrapping at the canvas edges under unsigned arithmetic
	if rising(con.prev.Up, s.Up) {
		con.Y++
		inp.Moved = true
	}
	if rising(con.prev.Down, s.Down) {
		con.Y--
		inp.Moved = true
	}
	if rising(con.prev.Left, s.Left) {
		con.X--
		inp.Moved = true
	}
	if rising(con.prev.Right, s.Right) {
		con.X++
		inp.Moved = true
	}

	con.prev = s
	con.prevUndo = undo
	con.prevRedo = redo

	return inp
}
