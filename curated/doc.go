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

// Package curated is a helper package for the plain error type in Go. The
// norm throughout this project is to create errors with curated.Errorf()
// using a message pattern declared as a const string next to the code that
// returns it. For example:
//
//	const NotReadable = "protocol: slave is not in a readable state"
//
//	return curated.Errorf(NotReadable)
//
// Errors can then be tested with the Is() and Has() functions, using the
// same pattern value. Is() tests the error itself, Has() tests the whole
// error chain.
//
// The advantage over errors.Is() in the standard library is that the
// pattern string doubles as the user-facing message and no sentinel
// variables need exporting.
package curated
