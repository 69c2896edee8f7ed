// seehuhn.de/go/skeleton - an animated 2D skeleton editor
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package skeleton

import (
	"log/slog"
	"time"

	"seehuhn.de/go/geom/vec"
)

// Scene is the state shown by a host: a chain of bones, the pointer
// controller and the outline tracer.
//
// A host calls Tick before every repaint, Frame to obtain the geometry to
// draw, and PrimaryPress/SecondaryPress for pointer events.  All methods
// must be called from the same goroutine.
type Scene struct {
	Chain      *Chain
	Controller *Controller
	Tracer     *Tracer

	elapsed time.Duration
}

// NewScene returns a scene showing chain, with bodies shaped by profile.
func NewScene(chain *Chain, profile Profile) *Scene {
	if chain == nil {
		chain = &Chain{}
	}
	return &Scene{
		Chain:      chain,
		Controller: NewController(chain),
		Tracer:     NewTracer(profile),
	}
}

// Tick sets the animation clock to the time elapsed since the start.
func (s *Scene) Tick(elapsed time.Duration) {
	s.elapsed = elapsed
}

// Elapsed returns the time set by the last call to Tick.
func (s *Scene) Elapsed() time.Duration {
	return s.elapsed
}

// PrimaryPress forwards a primary button press at p to the controller.
func (s *Scene) PrimaryPress(p vec.Vec2) Action {
	a := s.Controller.PrimaryPress(p)
	s.logAction("primary", p, a)
	return a
}

// SecondaryPress forwards a secondary button press at p to the controller.
func (s *Scene) SecondaryPress(p vec.Vec2) Action {
	a := s.Controller.SecondaryPress(p)
	s.logAction("secondary", p, a)
	return a
}

func (s *Scene) logAction(button string, p vec.Vec2, a Action) {
	Logger().Debug("pointer press",
		slog.String("button", button),
		slog.Float64("x", p.X),
		slog.Float64("y", p.Y),
		slog.String("action", a.String()),
		slog.Int("bones", s.Chain.Len()))
}

// Frame is the geometry of one repaint.
type Frame struct {
	Elapsed time.Duration

	// Bones holds one line per bone, Contours the outline of every bone,
	// both in chain order.
	Bones    []Line
	Contours []Polyline

	// Selected is the selected vertex, valid if HasSelection is true.
	Selected     vec.Vec2
	HasSelection bool
}

// Frame traces all bodies at the current time.  Nothing is cached between
// frames.
func (s *Scene) Frame() *Frame {
	f := &Frame{Elapsed: s.elapsed}
	f.Selected, f.HasSelection = s.Controller.Selection()

	n := s.Chain.Len()
	if n == 0 {
		return f
	}
	t := s.elapsed.Seconds()
	f.Bones = make([]Line, 0, n)
	f.Contours = make([]Polyline, 0, n)
	for _, seg := range s.Chain.All() {
		f.Bones = append(f.Bones, seg.Line())
		f.Contours = append(f.Contours, s.Tracer.Trace(seg, t))
	}
	return f
}
