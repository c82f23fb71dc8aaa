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

package hardware

import (
	"strings"

	"github.com/jetsetilly/tinycanvas/hardware/brush"
	"github.com/jetsetilly/tinycanvas/hardware/colour"
	"github.com/jetsetilly/tinycanvas/hardware/controller"
	"github.com/jetsetilly/tinycanvas/hardware/fill"
	"github.com/jetsetilly/tinycanvas/hardware/history"
	"github.com/jetsetilly/tinycanvas/hardware/i2c"
	"github.com/jetsetilly/tinycanvas/hardware/paint"
	"github.com/jetsetilly/tinycanvas/hardware/settings"
	"github.com/jetsetilly/tinycanvas/logger"
)

// PixelRenderer implementations receive every pixel the canvas emits,
// including the re-emissions caused by undo and redo. The canvas keeps no
// image of its own so a renderer is the only place the picture accumulates.
type PixelRenderer interface {
	SetPixel(ev paint.Event)
}

// Canvas is the complete paint engine. All components run synchronously to
// the internal step clock, driven by Step(). The bus protocol is the
// exception, running in the clock domain of the external bus master; it
// shares nothing with the rest of the canvas except the mailbox.
type Canvas struct {
	Controller *controller.Controller
	Mixer      *colour.Mixer
	Settings   *settings.Settings
	Corners    *fill.Corners
	Fill       *fill.Generator
	Brush      *brush.Expander
	History    *history.Ring
	Mailbox    *paint.Mailbox
	Protocol   *i2c.Protocol

	renderer PixelRenderer
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
// All components are created in their reset state.
func NewCanvas() *Canvas {
	cvs := &Canvas{
		Controller: controller.NewController(),
		Mixer:      colour.NewMixer(),
		Settings:   settings.NewSettings(),
		Corners:    fill.NewCorners(),
		Fill:       fill.NewGenerator(),
		Brush:      brush.NewExpander(),
		History:    history.NewRing(),
		Mailbox:    paint.NewMailbox(),
	}
	cvs.Protocol = i2c.NewProtocol(cvs.Mailbox)

	logger.Log("canvas", "created")

	return cvs
}

func (cvs *Canvas) String() string {
	s := strings.Builder{}
	s.WriteString(cvs.Controller.String())
	s.WriteString(" ")
	s.WriteString(cvs.Mixer.String())
	s.WriteString(" ")
	s.WriteString(cvs.Settings.String())
	if cvs.Corners.Active {
		s.WriteString(" ")
		s.WriteString(cvs.Corners.String())
	}
	return s.String()
}

// AttachRenderer connects a pixel renderer to the canvas. A nil renderer is
// valid and discards all pixels.
func (cvs *Canvas) AttachRenderer(renderer PixelRenderer) {
	cvs.renderer = renderer
}

// Reset returns every component to its initial state unconditionally,
// regardless of any in-flight burst or bus transaction.
func (cvs *Canvas) Reset() {
	cvs.Controller.Reset()
	cvs.Mixer.Reset()
	cvs.Settings.Reset()
	cvs.Corners.Reset()
	cvs.Fill.Reset()
	cvs.Brush.Reset()
	cvs.History.Reset()
	cvs.Mailbox.Reset()
	cvs.Protocol.Reset()

	logger.Log("canvas", "reset")
}

// SetInput sets the button levels for the next step. The levels persist
// until the next call.
func (cvs *Canvas) SetInput(state controller.State) {
	cvs.Controller.Set(state)
}

// commit a paint event: render it, save it to the history and publish it to
// the sample register.
func (cvs *Canvas) commit(ev paint.Event) {
	if cvs.renderer != nil {
		cvs.renderer.SetPixel(ev)
	}
	cvs.History.Save(ev)
	cvs.Mailbox.Publish(ev)
}

// restore a paint event recovered from the history. Identical to a commit
// except that the event is not saved back, which would disturb the undo/redo
// position.
func (cvs *Canvas) restore(ev paint.Event) {
	if cvs.renderer != nil {
		cvs.renderer.SetPixel(ev)
	}
	cvs.Mailbox.Publish(ev)
}
