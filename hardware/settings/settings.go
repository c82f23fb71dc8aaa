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

// Package settings holds the two persistent brush parameters: the brush size
// and the symmetry mode. The two counters deliberately behave differently at
// their bounds. Brush size saturates at its limits while symmetry mode wraps
// around freely.
package settings

import "fmt"

// MaxBrushSize is the largest valid brush size. The brush footprint is a
// square of side size+1, so the largest brush is 8x8 pixels.
const MaxBrushSize = 7

// Symmetry is the reflection mode applied by the brush expander.
type Symmetry int

// List of valid Symmetry values.
const (
	SymmetryOff Symmetry = iota
	SymmetryHorizontal
	SymmetryVertical
	SymmetryFourWay
)

// number of symmetry modes for the wrapping arithmetic.
const numSymmetryModes = 4

func (sym Symmetry) String() string {
	switch sym {
	case SymmetryOff:
		return "off"
	case SymmetryHorizontal:
		return "h-mirror"
	case SymmetryVertical:
		return "v-mirror"
	case SymmetryFourWay:
		return "4-way"
	}
	panic("unknown symmetry mode")
}

// Variants returns the number of reflections the brush expander applies for
// each footprint pixel.
func (sym Symmetry) Variants() int {
	switch sym {
	case SymmetryHorizontal:
		fallthrough
	case SymmetryVertical:
		return 2
	case SymmetryFourWay:
		return 4
	}
	return 1
}

// Settings records the brush size and symmetry mode between paint events.
type Settings struct {
	BrushSize uint8
	Symmetry  Symmetry
}

// NewSettings is the preferred method of initialisation for the Settings
// type.
func NewSettings() *Settings {
	return &Settings{}
}

func (set *Settings) String() string {
	return fmt.Sprintf("brush %dx%d, symmetry %s",
		set.BrushSize+1, set.BrushSize+1, set.Symmetry)
}

// Reset the settings to their initial state: 1x1 brush, symmetry off.
func (set *Settings) Reset() {
	set.BrushSize = 0
	set.Symmetry = SymmetryOff
}

// SizeUp increases the brush size, saturating at MaxBrushSize.
func (set *Settings) SizeUp() {
	if set.BrushSize < MaxBrushSize {
		set.BrushSize++
	}
}

// SizeDown decreases the brush size, saturating at zero.
func (set *Settings) SizeDown() {
	if set.BrushSize > 0 {
		set.BrushSize--
	}
}

// CycleSymmetry advances the symmetry mode, wrapping back to off after the
// last mode.
func (set *Settings) CycleSymmetry() {
	set.Symmetry = (set.Symmetry + 1) % numSymmetryModes
}
