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

	"seehuhn.de/go/geom/vec"
)

// Segment is a rigid bone.  The bone starts at Origin and extends Length
// pixels in the direction given by Angle.
type Segment struct {
	Origin vec.Vec2
	Length float64 // must be >= 0
	Angle  float64 // radians, counter-clockwise on screen
}

// SegmentBetween returns the segment which starts at a and ends at b.
func SegmentBetween(a, b vec.Vec2) Segment {
	d := b.Sub(a)
	return Segment{
		Origin: a,
		Length: d.Length(),
		Angle:  math.Atan2(-d.Y, d.X),
	}
}

// Start returns the start point of the bone.
func (s Segment) Start() vec.Vec2 {
	return s.Origin
}

// End returns the end point of the bone.
// Since the y-axis points down, a positive angle moves the end point up.
func (s Segment) End() vec.Vec2 {
	return s.Origin.Add(s.Direction().Mul(s.Length))
}

// Direction returns the unit vector pointing from start to end.
func (s Segment) Direction() vec.Vec2 {
	sin, cos := math.Sincos(s.Angle)
	return vec.Vec2{X: cos, Y: -sin}
}

// Midpoint returns the point half way along the bone.
func (s Segment) Midpoint() vec.Vec2 {
	return s.Origin.Add(s.Direction().Mul(s.Length / 2))
}

// Move translates the bone by delta.
func (s *Segment) Move(delta vec.Vec2) {
	s.Origin = s.Origin.Add(delta)
}

// Line returns the bone itself as a line.
func (s Segment) Line() Line {
	return Line{From: s.Start(), To: s.End()}
}

// Line is a straight line between two points.
type Line struct {
	From, To vec.Vec2
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return Distance(l.From, l.To)
}
