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

package i2c

import (
	"github.com/jetsetilly/tinycanvas/curated"
	"github.com/jetsetilly/tinycanvas/hardware/paint"
)

// Master bit-bangs the external side of the bus against a Protocol instance.
// It stands in for whatever host would poll the sample register in a real
// deployment and is used by the interactive harness, the performance tools
// and the tests.
//
// The two lines are open-drain. The resolved level of the data line is the
// wired-AND of the master's drive and the slave's drive; the clock line is
// driven by the master alone (the slave never stretches the clock).
type Master struct {
	proto *Protocol

	scl bool
	sda bool
}

// NewMaster is the preferred method of initialisation for the Master type.
func NewMaster(proto *Protocol) *Master {
	return &Master{
		proto: proto,
		scl:   true,
		sda:   true,
	}
}

// advance the bus by one clock phase, resolving the data line level.
func (m *Master) tick() {
	m.proto.Tick(m.scl, m.sda && m.proto.SDAOut())
}

// the low phase of one bit. the data line is only ever changed while the
// clock is low. two ticks: one for the falling edge, on which the slave
// updates its own drive, and one for the line to settle at the resolved
// level before the clock rises again.
func (m *Master) lowPhase(sda bool) {
	m.scl = false
	m.sda = sda
	m.tick()
	m.tick()
}

func (m *Master) highPhase() {
	m.scl = true
	m.tick()
}

// Start issues a start condition: the data line falling while the clock is
// high.
func (m *Master) Start() {
	m.scl = true
	m.sda = true
	m.tick()
	m.sda = false
	m.tick()
	m.scl = false
	m.tick()
}

// Stop issues a stop condition: the data line rising while the clock is
// high. The bus is left idle.
func (m *Master) Stop() {
	m.lowPhase(false)
	m.scl = true
	m.tick()
	m.sda = true
	m.tick()
}

// WriteByte clocks out the eight bits of v, most significant first, and then
// clocks the acknowledge bit. Returns true if the slave acknowledged.
func (m *Master) WriteByte(v uint8) bool {
	for i := 7; i >= 0; i-- {
		m.lowPhase((v>>i)&0x01 == 0x01)
		m.highPhase()
	}

	// release the data line for the slave to acknowledge
	m.lowPhase(true)
	m.highPhase()
	return !m.proto.SDAOut()
}

// ReadByte clocks in eight bits from the slave, most significant first, and
// then clocks the acknowledge bit: low to acknowledge, high to signal that no
// further bytes are wanted.
func (m *Master) ReadByte(ack bool) uint8 {
	var v uint8

	for i := 7; i >= 0; i-- {
		m.lowPhase(true)
		m.highPhase()
		if m.proto.SDAOut() {
			v |= 0x01 << i
		}
	}

	m.lowPhase(!ack)
	m.highPhase()
	return v
}

// ReadSample performs one complete read transaction: start, address, the
// three payload bytes with a NACK after the last, stop. The returned snapshot
// is the one the slave latched at address match.
func (m *Master) ReadSample() (paint.Snapshot, error) {
	m.Start()

	if !m.WriteByte(readSig) {
		m.Stop()
		return paint.Snapshot{}, curated.Errorf("i2c: no acknowledgement from address %#02x", SlaveAddress)
	}

	var snap paint.Snapshot
	snap.X = m.ReadByte(true)
	snap.Y = m.ReadByte(true)
	snap.Status = m.ReadByte(false)

	m.Stop()
	return snap, nil
}
