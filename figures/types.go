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

// Package figures provides named reference scenes, grouped by category.
// They are used by the tests and to generate reference renderings.
package figures

import (
	"math/rand/v2"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/skeleton"
)

// Figure defines a single reference scene.
type Figure struct {
	Name    string             // lowercase a-z and _ only
	Bones   []skeleton.Segment // the chain, in order
	Profile skeleton.Profile   // body shape
	Time    time.Duration      // animation time of the frame
	Width   int                // canvas width in pixels
	Height  int                // canvas height in pixels

	// Select, if non-nil, is pressed with the secondary button before the
	// frame is taken.
	Select *vec.Vec2
}

// Scene returns a new scene showing the figure at its animation time.
func (f Figure) Scene() *skeleton.Scene {
	s := skeleton.NewScene(skeleton.NewChainOf(f.Bones...), f.Profile)
	if f.Select != nil {
		s.SecondaryPress(*f.Select)
	}
	s.Tick(f.Time)
	return s
}

// Frame returns the frame shown by the figure.
func (f Figure) Frame() *skeleton.Frame {
	return f.Scene().Frame()
}

// bone is a helper to create a segment from two points.
func bone(x0, y0, x1, y1 float64) skeleton.Segment {
	return skeleton.SegmentBetween(pt(x0, y0), pt(x1, y1))
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// ptr returns a pointer to a point.
func ptr(x, y float64) *vec.Vec2 {
	p := pt(x, y)
	return &p
}

// randomChain returns the bones of a seeded random chain, centered in a
// canvas of the given size.
func randomChain(n int, length float64, seed uint64, width, height int) []skeleton.Segment {
	c := skeleton.NewChain(n, length, rand.New(rand.NewPCG(seed, seed)))
	c.Center(rect.Rect{URx: float64(width), URy: float64(height)})

	var res []skeleton.Segment
	for _, s := range c.All() {
		res = append(res, s)
	}
	return res
}
