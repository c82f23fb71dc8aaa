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

// Package history is the bounded undo/redo buffer of committed paint events.
//
// The ring holds the last Capacity events, overwritten oldest first. Two
// counters describe the state: count is the number of entries ever written,
// capped at Capacity; redoAvail is the number of entries currently undone.
// The invariant 0 <= redoAvail <= count <= Capacity holds in every reachable
// state. Any new write invalidates the redo history, matching standard
// editor semantics.
//
// A restored entry is not automatically re-painted by this component: the
// consumer re-applies it to the canvas as if it were a freshly painted
// pixel.
package history

import (
	"fmt"

	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/logger"
)

// Capacity is the fixed number of slots in the ring.
const Capacity = 4

// Ring is the bounded buffer of committed paint events.
type Ring struct {
	entries [Capacity]paint.Event

	// next slot to be written. advances modulo Capacity on every save
	writePtr int

	// see package documentation for the invariant on these two counters
	count     int
	redoAvail int
}

// NewRing is the preferred method of initialisation for the Ring type.
func NewRing() *Ring {
	return &Ring{}
}

func (rng *Ring) String() string {
	return fmt.Sprintf("history: %d entries, %d undone", rng.count, rng.redoAvail)
}

// Reset the ring to its initial, empty state.
func (rng *Ring) Reset() {
	rng.writePtr = 0
	rng.count = 0
	rng.redoAvail = 0
}

// CanUndo is true if there is at least one entry that has not been undone.
func (rng *Ring) CanUndo() bool {
	return rng.count > rng.redoAvail
}

// CanRedo is true if there is at least one undone entry.
func (rng *Ring) CanRedo() bool {
	return rng.redoAvail > 0
}

// Save a committed paint event into the ring, overwriting the oldest entry
// once the ring is full. Any pending redo history is invalidated.
func (rng *Ring) Save(ev paint.Event) {
	rng.entries[rng.writePtr] = ev
	rng.writePtr = (rng.writePtr + 1) % Capacity
	if rng.count < Capacity {
		rng.count++
	}
	rng.redoAvail = 0
}

// index of the entry addressed by the current redoAvail value.
func (rng *Ring) restoreIdx() int {
	return (rng.writePtr - rng.redoAvail + Capacity + Capacity) % Capacity
}

// Undo steps back one entry and returns it for the consumer to re-apply.
// The boolean return value is false, and the event zero, if there is
// nothing to undo.
func (rng *Ring) Undo() (paint.Event, bool) {
	if !rng.CanUndo() {
		return paint.Event{}, false
	}

	rng.redoAvail++
	ev := rng.entries[rng.restoreIdx()]
	logger.Logf("history", "undo %s", ev)
	return ev, true
}

// Redo steps forward one entry and returns it for the consumer to re-apply.
// The boolean return value is false, and the event zero, if there is
// nothing to redo.
func (rng *Ring) Redo() (paint.Event, bool) {
	if !rng.CanRedo() {
		return paint.Event{}, false
	}

	ev := rng.entries[rng.restoreIdx()]
	rng.redoAvail--
	logger.Logf("history", "redo %s", ev)
	return ev, true
}
