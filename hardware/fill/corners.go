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

// Package fill implements rectangle filling: the two-state corner capture
// that converts point-set events into a pair of corners, and the generator
// that enumerates every pixel of the normalised bounding box.
package fill

import (
	"fmt"

	"github.com/jetsetilly/tinycanvas/logger"
)

// Corners captures the two rectangle corners from successive point-set
// events while fill mode is active.
type Corners struct {
	// whether fill mode is active at all. while inactive, point-set events
	// are ignored by this component
	Active bool

	// corner A, once set. corner B is never stored: its arrival commits the
	// pair and fires the trigger
	ASet bool
	AX   uint8
	AY   uint8
}

// NewCorners is the preferred method of initialisation for the Corners type.
func NewCorners() *Corners {
	return &Corners{}
}

func (crn *Corners) String() string {
	if !crn.Active {
		return "fill: inactive"
	}
	if crn.ASet {
		return fmt.Sprintf("fill: corner A=(%d,%d)", crn.AX, crn.AY)
	}
	return "fill: armed"
}

// Reset the corner capture to its initial state: fill mode off, no corner.
func (crn *Corners) Reset() {
	crn.Active = false
	crn.ASet = false
	crn.AX = 0
	crn.AY = 0
}

// Toggle fill mode. Entering or leaving fill mode always discards a
// half-specified rectangle.
func (crn *Corners) Toggle() {
	crn.Active = !crn.Active
	crn.ASet = false
	if crn.Active {
		logger.Log("fill", "fill mode active")
	} else {
		logger.Log("fill", "fill mode inactive")
	}
}

// Point handles a point-set event at the current cursor position. The first
// point latches corner A. The second point commits the pair: trigger is true
// and the returned coordinates are corner A. The corner-A flag is cleared,
// ready for the next rectangle.
//
// Point-set events while fill mode is inactive are ignored.
func (crn *Corners) Point(x, y uint8) (trigger bool, ax, ay uint8) {
	if !crn.Active {
		return false, 0, 0
	}

	if !crn.ASet {
		crn.ASet = true
		crn.AX = x
		crn.AY = y
		logger.Logf("fill", "corner A set (%d,%d)", x, y)
		return false, 0, 0
	}

	crn.ASet = false
	logger.Logf("fill", "corner B set (%d,%d)", x, y)
	return true, crn.AX, crn.AY
}
