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

package performance

import (
	"github.com/jetsetilly/tinycanvas/hardware/controller"
)

// autopilot generates a deterministic stream of button levels that exercises
// the whole paint pipeline: constant cursor movement, periodic colour and
// size changes, the occasional symmetry cycle and undo. Presses and releases
// alternate so that every press produces a clean rising edge.
type autopilot struct {
	n int
}

func (ap *autopilot) next() controller.State {
	ap.n++

	st := controller.State{Present: true}

	// release step between every press
	if ap.n%2 == 0 {
		return st
	}

	switch (ap.n / 2) % 32 {
	case 0:
		st.A = true
	case 7:
		st.Up = true
	case 13:
		st.R = true
	case 15:
		st.Down = true
	case 21:
		st.Start = true
	case 27:
		st.L = true
		st.R = true
	case 29:
		st.Y = true
	default:
		st.Right = true
	}

	return st
}
