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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const (
	defaultStep = 1.0
	minStep     = 1e-3

	// minLength and maxLength bound the length of bones.
	minLength = 1e-6
	maxLength = 1e6

	// minWidth and maxWidth bound the values returned by a Profile.
	minWidth = 1e-3
	maxWidth = 1e4

	// closeTolerance is the largest gap between the last and the first
	// point of a trace which is closed by snapping instead of an extra edge.
	closeTolerance = 1e-9
)

// Tracer computes body outlines around bones.
//
// The outline starts next to the midpoint of the bone, runs along one side
// to the end point, turns around the end point in a half circle, runs back
// along the other side, turns around the start point and finally returns to
// the midpoint.  The distance from the spine is given by the Profile.
//
// A Tracer keeps no state between calls and may be shared.
type Tracer struct {
	Profile Profile

	// Step is the spine distance covered by one straight step, and the arc
	// length covered by one step around an end cap.  Values <= 0 select the
	// default step of 1 pixel; very small values are raised to 0.001.
	Step float64
}

// NewTracer returns a tracer for the given profile, using the default step.
func NewTracer(p Profile) *Tracer {
	return &Tracer{Profile: p, Step: defaultStep}
}

// Trace returns the closed outline around seg at time t (in seconds).
// The result starts and ends at the same point.  Degenerate bones and
// widths are clamped, so the result is always finite.
func (tr *Tracer) Trace(seg Segment, t float64) Polyline {
	tc := tr.traceLocal(seg, t)

	angle := seg.Angle
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		angle = 0
	}
	length := clampLength(seg.Length)
	origin := seg.Origin
	if !isFinite(origin) {
		origin = vec.Vec2{}
	}
	mid := Segment{Origin: origin, Length: length, Angle: angle}.Midpoint()

	res := make(Polyline, len(tc.pts))
	for i, p := range tc.pts {
		res[i] = mid.Add(Rotate(p, -angle))
	}
	return res
}

// traceLocal traces the outline in bone coordinates: the midpoint of the
// bone is at the origin and the bone points along the positive x-axis.
func (tr *Tracer) traceLocal(seg Segment, t float64) *tracing {
	step := tr.Step
	if !(step > 0) || math.IsInf(step, 0) {
		step = defaultStep
	}
	step = max(step, minStep)
	length := clampLength(seg.Length)

	tc := &tracing{
		profile: tr.Profile,
		t:       t,
		step:    step,
	}
	tc.pts = append(tc.pts, vec.Vec2{X: 0, Y: tc.width(0)})

	tc.straight(length / 2)
	tc.endCap()
	tc.straight(3 * length / 2)
	tc.endCap()
	tc.straight(2 * length)
	tc.close()

	return tc
}

// tracing holds the state of a single outline trace.
type tracing struct {
	profile Profile
	t       float64
	step    float64

	s       float64 // spine position
	heading float64 // accumulated rotation from the end caps

	pts     []vec.Vec2
	legEnds []int // index of the last point of every leg
}

// width returns the clamped profile width at spine position s.
func (tc *tracing) width(s float64) float64 {
	if tc.profile == nil {
		return minWidth
	}
	w := tc.profile.Width(s, tc.t)
	if !(w >= minWidth) { // also catches NaN
		return minWidth
	}
	return min(w, maxWidth)
}

// straight advances along the spine until s reaches target.
//
// Each step moves by (step, Δwidth) in the direction of the current
// heading.  Points are computed relative to the start of the leg, so that
// the last point lands on the target without accumulated rounding errors.
func (tc *tracing) straight(target float64) {
	anchor := tc.pts[len(tc.pts)-1]
	s0 := tc.s
	w0 := tc.width(s0)

	emit := func(s float64) {
		d := vec.Vec2{X: s - s0, Y: tc.width(s) - w0}
		tc.pts = append(tc.pts, anchor.Add(Rotate(d, -tc.heading)))
	}

	k := 0
	for {
		next := s0 + float64(k+1)*tc.step
		if next > target {
			break
		}
		k++
		tc.s = next
		emit(next)
	}
	if tc.s < target {
		// The next full step would overshoot: one short corrective step.
		tc.s = target
		emit(target)
	}
	tc.legEnds = append(tc.legEnds, len(tc.pts)-1)
}

// endCap turns around the end of the bone by half a circle.
// The angle per step is chosen so that every chord is about one step long.
func (tc *tracing) endCap() {
	const sweep = math.Pi

	r := tc.width(tc.s)
	p0 := tc.pts[len(tc.pts)-1]

	// The center of the turn is on the spine, to the right of the heading.
	rel := Rotate(vec.Vec2{X: 0, Y: r}, -tc.heading)
	center := p0.Sub(rel)

	dTheta := tc.step / r
	theta := 0.0
	for k := 1; ; k++ {
		next := float64(k) * dTheta
		if next > sweep {
			break
		}
		theta = next
		tc.pts = append(tc.pts, center.Add(Rotate(rel, -theta)))
	}
	if theta < sweep {
		tc.pts = append(tc.pts, center.Add(Rotate(rel, -sweep)))
	}

	tc.heading += sweep
	tc.legEnds = append(tc.legEnds, len(tc.pts)-1)
}

// close makes sure that the trace ends where it started.
func (tc *tracing) close() {
	first := tc.pts[0]
	last := &tc.pts[len(tc.pts)-1]
	if Distance(first, *last) <= closeTolerance {
		*last = first
		return
	}
	tc.pts = append(tc.pts, first)
}

func clampLength(l float64) float64 {
	if !(l >= minLength) {
		return minLength
	}
	return min(l, maxLength)
}

// Polyline is a sequence of points, joined by straight lines.
type Polyline []vec.Vec2

// Lines returns the edges of the polyline.
func (pl Polyline) Lines() []Line {
	if len(pl) < 2 {
		return nil
	}
	res := make([]Line, len(pl)-1)
	for i := range res {
		res[i] = Line{From: pl[i], To: pl[i+1]}
	}
	return res
}

// Length returns the sum of the edge lengths.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl); i++ {
		total += Distance(pl[i-1], pl[i])
	}
	return total
}

// IsClosed reports whether the polyline ends at its first point.
func (pl Polyline) IsClosed() bool {
	return len(pl) > 1 && pl[0] == pl[len(pl)-1]
}

// Path converts the polyline to a path.  Closed polylines end with a
// ClosePath command.
func (pl Polyline) Path() *path.Data {
	p := &path.Data{}
	if len(pl) == 0 {
		return p
	}
	p.MoveTo(pl[0])
	end := len(pl)
	if pl.IsClosed() {
		end--
	}
	for _, pt := range pl[1:end] {
		p.LineTo(pt)
	}
	if pl.IsClosed() {
		p.Close()
	}
	return p
}
