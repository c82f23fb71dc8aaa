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

package settings_test

import (
	"testing"

	"github.com/jetsetilly/tinycanvas/hardware/settings"
	"github.com/jetsetilly/tinycanvas/test"
)

func TestBrushSizeSaturation(t *testing.T) {
	set := settings.NewSettings()

	// size-down at the lower bound does nothing
	set.SizeDown()
	test.Equate(t, set.BrushSize, 0)

	// size saturates at the upper bound, it does not wrap
	for i := 0; i < 10; i++ {
		set.SizeUp()
	}
	test.Equate(t, set.BrushSize, settings.MaxBrushSize)

	set.SizeDown()
	test.Equate(t, set.BrushSize, 6)
}

func TestSymmetryWrap(t *testing.T) {
	set := settings.NewSettings()

	test.Equate(t, set.Symmetry.String(), "off")

	set.CycleSymmetry()
	test.Equate(t, set.Symmetry.String(), "h-mirror")

	set.CycleSymmetry()
	test.Equate(t, set.Symmetry.String(), "v-mirror")

	set.CycleSymmetry()
	test.Equate(t, set.Symmetry.String(), "4-way")

	// wraps back to off
	set.CycleSymmetry()
	test.Equate(t, set.Symmetry.String(), "off")
}

func TestVariants(t *testing.T) {
	test.Equate(t, settings.SymmetryOff.Variants(), 1)
	test.Equate(t, settings.SymmetryHorizontal.Variants(), 2)
	test.Equate(t, settings.SymmetryVertical.Variants(), 2)
	test.Equate(t, settings.SymmetryFourWay.Variants(), 4)
}
