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

package i2c_test

import (
	"testing"

	"github.com/jetsetilly/tinycanvas/hardware/i2c"
	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/test"
)

func TestFullReadTransaction(t *testing.T) {
	mb := paint.NewMailbox()
	mb.Publish(paint.Event{X: 100, Y: 200, Colour: paint.Magenta})
	mb.SetLiveState(true, false, false, true, true)

	proto := i2c.NewProtocol(mb)
	m := i2c.NewMaster(proto)

	snap, err := m.ReadSample()
	test.ExpectedSuccess(t, err)
	test.Equate(t, snap.X, 100)
	test.Equate(t, snap.Y, 200)

	// up, right, brush mode, magenta (101)
	test.Equate(t, snap.Status, 0x9d)

	// transaction complete. protocol is idle and fresh flag acknowledged
	test.Equate(t, int(proto.State), int(i2c.ProtocolIdle))
	test.Equate(t, mb.Fresh(), false)
}

func TestAddressMismatch(t *testing.T) {
	mb := paint.NewMailbox()
	mb.Publish(paint.Event{X: 1, Y: 2, Colour: paint.Red})

	proto := i2c.NewProtocol(mb)
	m := i2c.NewMaster(proto)

	m.Start()
	ack := m.WriteByte(0x51 << 1)
	test.Equate(t, ack, false)
	m.Stop()

	test.Equate(t, int(proto.State), int(i2c.ProtocolIdle))

	// a transaction for another slave must not consume the fresh flag
	test.Equate(t, mb.Fresh(), true)
}

func TestWriteNotAcknowledged(t *testing.T) {
	mb := paint.NewMailbox()
	proto := i2c.NewProtocol(mb)
	m := i2c.NewMaster(proto)

	// write bit clear. the slave is read-only
	m.Start()
	ack := m.WriteByte(i2c.SlaveAddress << 1)
	test.Equate(t, ack, false)
	m.Stop()

	test.Equate(t, int(proto.State), int(i2c.ProtocolIdle))
}

func TestEarlyNack(t *testing.T) {
	mb := paint.NewMailbox()
	mb.Publish(paint.Event{X: 10, Y: 20, Colour: paint.Blue})

	proto := i2c.NewProtocol(mb)
	m := i2c.NewMaster(proto)

	m.Start()
	ack := m.WriteByte((i2c.SlaveAddress << 1) | 0x01)
	test.Equate(t, ack, true)

	x := m.ReadByte(true)
	test.Equate(t, x, 10)
	y := m.ReadByte(false)
	test.Equate(t, y, 20)
	m.Stop()

	test.Equate(t, int(proto.State), int(i2c.ProtocolIdle))

	// a fresh transaction starts at X again, not mid-sequence
	snap, err := m.ReadSample()
	test.ExpectedSuccess(t, err)
	test.Equate(t, snap.X, 10)
	test.Equate(t, snap.Y, 20)
}

func TestSnapshotConsistency(t *testing.T) {
	mb := paint.NewMailbox()
	mb.Publish(paint.Event{X: 10, Y: 20, Colour: paint.Blue})

	proto := i2c.NewProtocol(mb)
	m := i2c.NewMaster(proto)

	m.Start()
	ack := m.WriteByte((i2c.SlaveAddress << 1) | 0x01)
	test.Equate(t, ack, true)
	x := m.ReadByte(true)

	// a new paint event committing mid-transaction must not affect the
	// remaining payload bytes
	mb.Publish(paint.Event{X: 99, Y: 98, Colour: paint.White})

	y := m.ReadByte(true)
	st := m.ReadByte(false)
	m.Stop()

	test.Equate(t, x, 10)
	test.Equate(t, y, 20)

	// status colour is blue (001) from the snapshot, not white
	test.Equate(t, st&0x07, 0x01)

	// the mid-transaction publish is served by the next transaction
	snap, err := m.ReadSample()
	test.ExpectedSuccess(t, err)
	test.Equate(t, snap.X, 99)
	test.Equate(t, snap.Y, 98)
}

func TestDebugState(t *testing.T) {
	mb := paint.NewMailbox()
	proto := i2c.NewProtocol(mb)
	m := i2c.NewMaster(proto)

	test.Equate(t, proto.DebugState(), 0)

	m.Start()
	m.WriteByte((i2c.SlaveAddress << 1) | 0x01)

	// first payload byte pending
	test.Equate(t, proto.DebugState(), uint8(i2c.ProtocolDataX))

	m.ReadByte(true)
	test.Equate(t, proto.DebugState(), uint8(i2c.ProtocolDataY))

	m.ReadByte(true)
	test.Equate(t, proto.DebugState(), uint8(i2c.ProtocolDataStatus))

	m.ReadByte(false)
	m.Stop()
	test.Equate(t, proto.DebugState(), uint8(i2c.ProtocolIdle))
}
