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
	"iter"
	"math"
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Chain is an ordered list of bones.
//
// Bones created by [NewChain] are linked end to start.  Bones added later
// with [Chain.Append] may start anywhere.  Bones are never removed.
type Chain struct {
	segs []Segment
}

// NewChain returns a chain of count bones.  The first bone starts at the
// origin, points right and has length baseLength.  Every further bone starts
// at the end of the previous one, with a random angle in [0, 2π) and a
// random length in [0, baseLength].
//
// If rng is nil, a randomly seeded generator is used.
func NewChain(count int, baseLength float64, rng *rand.Rand) *Chain {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	c := &Chain{}
	if count <= 0 {
		return c
	}
	c.segs = make([]Segment, 0, count)
	c.segs = append(c.segs, Segment{Length: baseLength})
	for range count - 1 {
		prev := c.segs[len(c.segs)-1]
		c.segs = append(c.segs, Segment{
			Origin: prev.End(),
			Length: rng.Float64() * baseLength,
			Angle:  rng.Float64() * 2 * math.Pi,
		})
	}
	return c
}

// NewChainOf returns a chain holding the given bones.
func NewChainOf(segs ...Segment) *Chain {
	return &Chain{segs: append([]Segment(nil), segs...)}
}

// Len returns the number of bones in the chain.
func (c *Chain) Len() int {
	return len(c.segs)
}

// At returns bone i.
func (c *Chain) At(i int) Segment {
	return c.segs[i]
}

// Last returns the most recently added bone.
// The second return value is false if the chain is empty.
func (c *Chain) Last() (Segment, bool) {
	if len(c.segs) == 0 {
		return Segment{}, false
	}
	return c.segs[len(c.segs)-1], true
}

// All iterates over the bones in chain order.
func (c *Chain) All() iter.Seq2[int, Segment] {
	return func(yield func(int, Segment) bool) {
		for i, s := range c.segs {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Vertices iterates over the start and end points of all bones.
// For every bone the start point comes before the end point.  Joints
// shared by two bones are visited twice.
func (c *Chain) Vertices() iter.Seq[vec.Vec2] {
	return func(yield func(vec.Vec2) bool) {
		for _, s := range c.segs {
			if !yield(s.Start()) || !yield(s.End()) {
				return
			}
		}
	}
}

// Append adds the bone from start to end.
func (c *Chain) Append(start, end vec.Vec2) Segment {
	s := SegmentBetween(start, end)
	c.segs = append(c.segs, s)
	return s
}

// TranslateAll moves every bone by delta.
func (c *Chain) TranslateAll(delta vec.Vec2) {
	for i := range c.segs {
		c.segs[i].Move(delta)
	}
}

// Bounds returns the smallest rectangle containing all vertices.
// The second return value is false if the chain is empty.
func (c *Chain) Bounds() (rect.Rect, bool) {
	first := true
	var b rect.Rect
	for v := range c.Vertices() {
		if first {
			b = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			first = false
			continue
		}
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b, !first
}

// Center moves the chain so that the center of its bounding box coincides
// with the center of the viewport.  It returns the translation applied.
func (c *Chain) Center(viewport rect.Rect) vec.Vec2 {
	b, ok := c.Bounds()
	if !ok {
		return vec.Vec2{}
	}
	delta := vec.Vec2{
		X: (viewport.LLx+viewport.URx)/2 - (b.LLx+b.URx)/2,
		Y: (viewport.LLy+viewport.URy)/2 - (b.LLy+b.URy)/2,
	}
	c.TranslateAll(delta)
	return delta
}
