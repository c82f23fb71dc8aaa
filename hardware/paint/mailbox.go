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

package paint

import "sync"

// Snapshot is the view of the sample register taken by the bus protocol at
// the start of a transaction. The three fields are served to the bus master
// in order, without re-sampling, so that a transaction always describes one
// consistent paint event.
type Snapshot struct {
	X      uint8
	Y      uint8
	Status uint8
}

// Mailbox is the single point of synchronisation between the internal step
// clock and the external bus clock. It is a single-slot latch: the pipeline
// publishes the most recent committed paint event and the protocol latches a
// snapshot of it, acknowledging the "fresh" flag as it does so.
//
// The internal pipeline and the bus protocol are not phase-aligned so access
// is guarded by a critical section. Neither side ever blocks on the other.
type Mailbox struct {
	crit sync.Mutex

	// most recent committed paint event
	event Event

	// live state folded into the status byte. the directional levels and the
	// brush mode are not part of any paint event but are served alongside it
	up, down, left, right bool
	brushMode             bool

	// set by Publish(), cleared by Latch(). the flag plays no part in the
	// protocol itself but it makes the handshake observable
	fresh bool
}

// NewMailbox is the preferred method of initialisation for the Mailbox type.
func NewMailbox() *Mailbox {
	mb := &Mailbox{}
	mb.Reset()
	return mb
}

// Reset the mailbox to its initial state: pixel (0,0), black, brush mode.
func (mb *Mailbox) Reset() {
	mb.crit.Lock()
	defer mb.crit.Unlock()

	mb.event = Event{}
	mb.up = false
	mb.down = false
	mb.left = false
	mb.right = false
	mb.brushMode = true
	mb.fresh = false
}

// Publish the most recent committed paint event. Called once per commit from
// the internal clock domain. Overwrites any previous event whether or not it
// has been latched.
func (mb *Mailbox) Publish(ev Event) {
	mb.crit.Lock()
	defer mb.crit.Unlock()

	mb.event = ev
	mb.fresh = true
}

// SetLiveState updates the live directional levels and brush mode served in
// the status byte. Called every step from the internal clock domain. Does not
// affect the fresh flag.
func (mb *Mailbox) SetLiveState(up, down, left, right, brushMode bool) {
	mb.crit.Lock()
	defer mb.crit.Unlock()

	mb.up = up
	mb.down = down
	mb.left = left
	mb.right = right
	mb.brushMode = brushMode
}

// Latch takes a snapshot of the sample register and acknowledges the fresh
// flag. Called from the bus clock domain at the start of every transaction.
func (mb *Mailbox) Latch() Snapshot {
	mb.crit.Lock()
	defer mb.crit.Unlock()

	mb.fresh = false
	return Snapshot{
		X:      mb.event.X,
		Y:      mb.event.Y,
		Status: StatusByte(mb.up, mb.down, mb.left, mb.right, mb.brushMode, mb.event.Colour),
	}
}

// Fresh returns true if a paint event has been published since the last
// Latch().
func (mb *Mailbox) Fresh() bool {
	mb.crit.Lock()
	defer mb.crit.Unlock()

	return mb.fresh
}

// Peek at the current sample register without acknowledging the fresh flag.
// Used for observation only (the interactive harness and tests).
func (mb *Mailbox) Peek() Snapshot {
	mb.crit.Lock()
	defer mb.crit.Unlock()

	return Snapshot{
		X:      mb.event.X,
		Y:      mb.event.Y,
		Status: StatusByte(mb.up, mb.down, mb.left, mb.right, mb.brushMode, mb.event.Colour),
	}
}
