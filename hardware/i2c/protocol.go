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
	"strings"

	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/logger"
)

// ProtocolState records how incoming signals to the slave will be
// interpreted.
type ProtocolState int

// List of valid ProtocolState values. The values fit in three bits and are
// exposed verbatim by DebugState().
const (
	ProtocolIdle ProtocolState = iota
	ProtocolAddress
	ProtocolAddressAck
	ProtocolDataX
	ProtocolDataY
	ProtocolDataStatus
	ProtocolByteAck
	ProtocolStopWait
)

// SlaveAddress is the 7-bit bus address the protocol answers to.
const SlaveAddress = 0x64

// the byte a master sends to begin a read transaction: the 7-bit slave
// address shifted up one place with the read bit set. the slave is read-only
// so the corresponding write signature is never acknowledged.
const readSig = (SlaveAddress << 1) | 0x01

// Protocol is the read-only bus slave serving the sample register. It runs
// entirely in the bus clock domain: Tick() is called once per bus clock phase
// with the resolved levels of the two lines.
//
// The slave changes its SDA output while SCL is low and samples the master's
// SDA on the rising edge of SCL, as the bus specification requires. A start
// condition is recognised in any state; once the address has matched a
// snapshot of the sample register is latched and the three payload bytes
// {X, Y, Status} are served from it without re-sampling.
type Protocol struct {
	mailbox *paint.Mailbox

	SDA Trace
	SCL Trace

	State ProtocolState

	// data is transferred one bit at a time, most significant bit first
	Bits   uint8
	BitsCt int

	// the slave's own drive on SDA. true means released (the line is
	// open-drain and idles high), false means driven low
	sdaOut bool

	// payload latched at address match. see Snapshot commentary in the paint
	// package for the consistency contract
	snapshot paint.Snapshot

	// state to move to if the master acknowledges the byte just served
	afterAck ProtocolState
}

// NewProtocol is the preferred method of initialisation for the Protocol
// type. The mailbox is the sample register the payload bytes are served from.
func NewProtocol(mailbox *paint.Mailbox) *Protocol {
	return &Protocol{
		mailbox: mailbox,
		SDA:     NewTrace("SDA"),
		SCL:     NewTrace("SCL"),
		State:   ProtocolIdle,
		sdaOut:  true,
	}
}

func (p *Protocol) String() string {
	s := strings.Builder{}
	s.WriteString("i2c: ")

	switch p.State {
	case ProtocolIdle:
		s.WriteString("idle")
	case ProtocolAddress:
		s.WriteString("address")
	case ProtocolAddressAck:
		s.WriteString("address [ACK]")
	case ProtocolDataX:
		s.WriteString("serving X")
	case ProtocolDataY:
		s.WriteString("serving Y")
	case ProtocolDataStatus:
		s.WriteString("serving status")
	case ProtocolByteAck:
		s.WriteString("awaiting ACK")
	case ProtocolStopWait:
		s.WriteString("awaiting stop")
	}

	return s.String()
}

// Reset the protocol to the idle state, releasing the data line.
func (p *Protocol) Reset() {
	p.State = ProtocolIdle
	p.sdaOut = true
	p.resetBits()
}

// SDAOut is the slave's own drive on the data line. The resolved line level
// is the wired-AND of this value and the master's drive.
func (p *Protocol) SDAOut() bool {
	return p.sdaOut
}

// DebugState is the protocol state as a 3-bit code. Purely observational.
func (p *Protocol) DebugState() uint8 {
	return uint8(p.State) & 0x07
}

// recvBit will return true if the bits field is full.
func (p *Protocol) recvBit(v bool) bool {
	if p.BitsCt >= 8 {
		p.resetBits()
	}

	if v {
		p.Bits |= 0x01 << (7 - p.BitsCt)
	}
	p.BitsCt++

	return p.BitsCt == 8
}

func (p *Protocol) resetBits() {
	p.Bits = 0
	p.BitsCt = 0
}

// load the byte to be served in the given state.
func (p *Protocol) loadByte(state ProtocolState) {
	p.resetBits()
	p.State = state

	switch state {
	case ProtocolDataX:
		p.Bits = p.snapshot.X
		p.afterAck = ProtocolDataY
	case ProtocolDataY:
		p.Bits = p.snapshot.Y
		p.afterAck = ProtocolDataStatus
	case ProtocolDataStatus:
		p.Bits = p.snapshot.Status
		p.afterAck = ProtocolStopWait
	}
}

// Tick advances the protocol by one bus clock phase. The arguments are the
// resolved levels of the clock and data lines.
func (p *Protocol) Tick(scl bool, sda bool) {
	p.SCL.Tick(scl)
	p.SDA.Tick(sda)

	// start and stop conditions are signalled by data line edges while the
	// clock is high. a start is recognised in any state, allowing a repeated
	// start to begin a new transaction without an intervening stop
	if p.SCL.Hi() && p.SDA.Falling() {
		logger.Log("i2c", "start condition")
		p.resetBits()
		p.State = ProtocolAddress
		p.sdaOut = true
		return
	}

	if p.State != ProtocolIdle && p.SCL.Hi() && p.SDA.Rising() {
		logger.Log("i2c", "stop condition")
		p.State = ProtocolIdle
		p.sdaOut = true
		return
	}

	// the slave changes its output while the clock is low
	if p.SCL.Falling() {
		switch p.State {
		case ProtocolAddressAck:
			p.sdaOut = false
		case ProtocolDataX, ProtocolDataY, ProtocolDataStatus:
			p.sdaOut = (p.Bits>>(7-p.BitsCt))&0x01 == 0x01
		default:
			p.sdaOut = true
		}
		return
	}

	// everything else happens on the rising edge of the clock
	if !p.SCL.Rising() {
		return
	}

	switch p.State {
	case ProtocolIdle:
		// waiting on a start condition

	case ProtocolAddress:
		if p.recvBit(p.SDA.Hi()) {
			if p.Bits == readSig {
				logger.Logf("i2c", "address %#02x matched (read)", SlaveAddress)
				p.snapshot = p.mailbox.Latch()
				p.State = ProtocolAddressAck
			} else {
				// not for us. stay off the line until the transaction ends
				p.State = ProtocolStopWait
			}
		}

	case ProtocolAddressAck:
		// the master has clocked our ACK. first payload byte follows
		p.loadByte(ProtocolDataX)

	case ProtocolDataX, ProtocolDataY, ProtocolDataStatus:
		p.BitsCt++
		if p.BitsCt >= 8 {
			logger.Logf("i2c", "served byte %#02x", p.Bits)
			p.State = ProtocolByteAck
		}

	case ProtocolByteAck:
		if p.SDA.Lo() && p.afterAck != ProtocolStopWait {
			p.loadByte(p.afterAck)
		} else {
			// NACK, or the payload is exhausted. release the line and wait
			// for the stop condition
			p.State = ProtocolStopWait
			p.sdaOut = true
		}

	case ProtocolStopWait:
		// ignoring traffic until a start or stop condition
	}
}
