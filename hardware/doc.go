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

// Package hardware is the top-level package of the paint engine. The Canvas
// type aggregates the individual components found in the sub-packages and
// schedules them, one logical step at a time, in response to Step().
//
// Everything inside the canvas runs synchronously to the internal step
// clock. The one exception is the bus protocol in the i2c sub-package, which
// runs in the clock domain of the external bus master. The two domains meet
// only at the mailbox in the paint sub-package.
package hardware
