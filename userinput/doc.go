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

// Package userinput stands in for the gamepad decoder when the paint engine
// is run interactively. Terminal keypresses are translated into the button
// levels of the gamepad contract:
//
//	w a s d     move the cursor
//	r g b       toggle the red, green and blue channels
//	space       brush/eraser toggle, or corner point in fill mode
//	[ ]         brush size down/up
//	y           cycle symmetry
//	f           toggle fill mode
//	u i         undo, redo
//	x           reset
//	q           quit
//
// The translation is level-for-a-single-press: all edge detection remains
// inside the engine, as it would with a real decoder.
package userinput
