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

// Package render draws skeleton frames into images and PDF files.
package render

import (
	"image"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

const (
	defaultFlatness = 0.25

	// minDiscSegments is the smallest number of edges used to approximate
	// a round cap or join.
	minDiscSegments = 8
)

// Rasteriser converts paths to pixel coverage values, the fraction of each
// pixel covered by the filled or stroked path, from 0 to 1.  Scan conversion
// is done by an x/image/vector rasterizer; internal buffers are reused
// across calls.
//
// Overlapping parts of a path are merged by taking the absolute value of the
// accumulated winding, which agrees with the nonzero rule whenever
// overlapping parts have the same orientation.  All polygons generated by
// Stroke are oriented consistently.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	Flatness float64

	// Width sets stroke thickness in user-space units.
	Width float64

	// Cap sets the style for the end points of open subpaths.
	Cap graphics.LineCapStyle

	// Join sets the style for corners.  Miter joins are drawn as bevels.
	Join graphics.LineJoinStyle

	z     *vector.Rasterizer
	mask  *image.Alpha
	cover []float32
	pts   []vec.Vec2 // vertices of the current subpath (user space)
	drawn bool       // whether the current subpath has any segments
	poly  []vec.Vec2 // scratch polygon (device space)
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// an identity CTM, unit line width, round caps and round joins.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapRound,
		Join:     graphics.LineJoinRound,
	}
}

// Fill fills the path.  Open subpaths are closed implicitly.  The emit
// callback receives coverage row by row, in device coordinates; its slice
// argument is valid only during the call.
func (r *Rasteriser) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if !r.begin() {
		return
	}

	open := false
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.z.ClosePath()
			}
			x, y := r.device(p.Coords[coordIdx])
			r.z.MoveTo(x, y)
			open = true
			coordIdx++
		case path.CmdLineTo:
			x, y := r.device(p.Coords[coordIdx])
			r.z.LineTo(x, y)
			coordIdx++
		case path.CmdQuadTo:
			bx, by := r.device(p.Coords[coordIdx])
			cx, cy := r.device(p.Coords[coordIdx+1])
			r.z.QuadTo(bx, by, cx, cy)
			coordIdx += 2
		case path.CmdCubeTo:
			bx, by := r.device(p.Coords[coordIdx])
			cx, cy := r.device(p.Coords[coordIdx+1])
			dx, dy := r.device(p.Coords[coordIdx+2])
			r.z.CubeTo(bx, by, cx, cy, dx, dy)
			coordIdx += 3
		case path.CmdClose:
			r.z.ClosePath()
			open = false
		}
	}
	if open {
		r.z.ClosePath()
	}

	r.finish(emit)
}

// Stroke strokes the path using Width, Cap and Join.  The emit callback
// receives coverage row by row, as for Fill.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if !r.begin() || !(r.Width > 0) {
		return
	}

	r.pts = r.pts[:0]
	r.drawn = false
	var current vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.strokeSubpath(false)
			current = p.Coords[coordIdx]
			coordIdx++
		case path.CmdLineTo:
			r.startSegment(current)
			current = p.Coords[coordIdx]
			r.addPoint(current)
			coordIdx++
		case path.CmdQuadTo:
			r.startSegment(current)
			r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1])
			current = p.Coords[coordIdx+1]
			coordIdx += 2
		case path.CmdCubeTo:
			r.startSegment(current)
			r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2])
			current = p.Coords[coordIdx+2]
			coordIdx += 3
		case path.CmdClose:
			if r.drawn {
				current = r.pts[0]
			}
			r.strokeSubpath(true)
		}
	}
	r.strokeSubpath(false)

	r.finish(emit)
}

// begin prepares the vector rasterizer for the clip rectangle.
func (r *Rasteriser) begin() bool {
	w, h := r.size()
	if w <= 0 || h <= 0 {
		return false
	}
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}
	return true
}

func (r *Rasteriser) size() (int, int) {
	return int(r.Clip.URx - r.Clip.LLx), int(r.Clip.URy - r.Clip.LLy)
}

// finish scan converts the accumulated polygons and emits the coverage
// of every row which has at least one covered pixel.
func (r *Rasteriser) finish(emit func(y, xMin int, coverage []float32)) {
	w, h := r.size()
	if r.mask == nil || r.mask.Rect.Dx() != w || r.mask.Rect.Dy() != h {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		clear(r.mask.Pix)
	}
	r.z.Draw(r.mask, r.mask.Bounds(), image.Opaque, image.Point{})

	x0, y0 := int(r.Clip.LLx), int(r.Clip.LLy)
	for y := range h {
		row := r.mask.Pix[y*r.mask.Stride : y*r.mask.Stride+w]
		first, last := -1, -1
		for x, a := range row {
			if a != 0 {
				if first < 0 {
					first = x
				}
				last = x
			}
		}
		if first < 0 {
			continue
		}
		r.cover = r.cover[:0]
		for _, a := range row[first : last+1] {
			r.cover = append(r.cover, float32(a)/255)
		}
		emit(y+y0, x0+first, r.cover)
	}
}

// device maps a user space point to rasterizer coordinates.
func (r *Rasteriser) device(p vec.Vec2) (float32, float32) {
	q := r.toDevice(p)
	return float32(q.X - r.Clip.LLx), float32(q.Y - r.Clip.LLy)
}

func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// startSegment begins a new subpath at p, unless one is in progress.
func (r *Rasteriser) startSegment(p vec.Vec2) {
	if !r.drawn {
		r.pts = append(r.pts[:0], p)
		r.drawn = true
	}
}

// addPoint appends p to the current subpath, skipping repeated points.
func (r *Rasteriser) addPoint(p vec.Vec2) {
	if n := len(r.pts); n > 0 && r.pts[n-1] == p {
		return
	}
	r.pts = append(r.pts, p)
}

// flattenQuadratic approximates a quadratic Bézier from p0 by line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// e = (P0 - 2*P1 + P2) / 4 is the largest deviation from the chord
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if errDev := e.Length(); errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		r.addPoint(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic approximates a cubic Bézier from p0 by line segments,
// using Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt * omt).
			Add(p1.Mul(3 * omt * omt * t)).
			Add(p2.Mul(3 * omt * t * t)).
			Add(p3.Mul(t * t * t))
		r.addPoint(pt)
	}
}

// strokeSubpath adds the stroke outline of r.pts to the rasterizer and
// starts a new, empty subpath.
func (r *Rasteriser) strokeSubpath(closed bool) {
	if !r.drawn {
		return
	}
	pts := r.pts
	r.pts = r.pts[:0]
	r.drawn = false

	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	d := r.Width / 2

	switch len(pts) {
	case 0:
		return
	case 1:
		// degenerate subpath: only round caps produce a mark
		if r.Cap == graphics.LineCapRound {
			r.addDisc(pts[0], d)
		}
		return
	}

	n := len(pts)
	edges := n - 1
	if closed {
		edges = n
	}
	for i := range edges {
		a, b := pts[i], pts[(i+1)%n]
		t, nrm := frame(a, b)
		r.addPolygon(a.Add(nrm.Mul(d)), b.Add(nrm.Mul(d)), b.Sub(nrm.Mul(d)), a.Sub(nrm.Mul(d)))

		hasJoin := i+1 < n-1 || closed
		if hasJoin {
			c := pts[(i+2)%n]
			_, nrm2 := frame(b, c)
			r.addJoin(b, nrm, nrm2, d)
		}

		if !closed && i == 0 {
			r.addCap(a, t.Mul(-1), nrm, d)
		}
		if !closed && i == edges-1 {
			r.addCap(b, t, nrm, d)
		}
	}
}

// frame returns the unit tangent and unit normal of the edge a→b.
func frame(a, b vec.Vec2) (t, n vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return vec.Vec2{X: 1}, vec.Vec2{Y: 1}
	}
	t = d.Mul(1 / l)
	return t, vec.Vec2{X: -t.Y, Y: t.X}
}

// addJoin fills the gap between two edges meeting at p.
func (r *Rasteriser) addJoin(p, n1, n2 vec.Vec2, d float64) {
	if r.Join == graphics.LineJoinRound {
		r.addDisc(p, d)
		return
	}
	r.addPolygon(p, p.Add(n1.Mul(d)), p.Add(n2.Mul(d)))
	r.addPolygon(p, p.Sub(n1.Mul(d)), p.Sub(n2.Mul(d)))
}

// addCap adds the cap at end point p, where t points away from the line.
func (r *Rasteriser) addCap(p, t, n vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(p, d)
	case graphics.LineCapSquare:
		ext := t.Mul(d)
		r.addPolygon(p.Add(n.Mul(d)), p.Add(n.Mul(d)).Add(ext), p.Sub(n.Mul(d)).Add(ext), p.Sub(n.Mul(d)))
	}
}

// addDisc adds a polygon approximating the disc of radius d around center.
// The number of edges keeps the sagitta below the flatness tolerance.
func (r *Rasteriser) addDisc(center vec.Vec2, d float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: d}).Length(),
		r.transformLinear(vec.Vec2{Y: d}).Length())

	n := minDiscSegments
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	pts := make([]vec.Vec2, n)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = center.Add(vec.Vec2{X: d * cos, Y: d * sin})
	}
	r.addPolygon(pts...)
}

// addPolygon adds a closed polygon, given in user space, to the rasterizer.
// Polygons are reoriented to positive signed area in device space, so that
// overlapping polygons never cancel.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	r.poly = r.poly[:0]
	for _, p := range pts {
		q := r.toDevice(p)
		r.poly = append(r.poly, vec.Vec2{X: q.X - r.Clip.LLx, Y: q.Y - r.Clip.LLy})
	}

	area := 0.0
	for i, p := range r.poly {
		q := r.poly[(i+1)%len(r.poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	if math.Abs(area) < 1e-12 || math.IsNaN(area) {
		return
	}
	if area < 0 {
		for i, j := 0, len(r.poly)-1; i < j; i, j = i+1, j-1 {
			r.poly[i], r.poly[j] = r.poly[j], r.poly[i]
		}
	}

	r.z.MoveTo(float32(r.poly[0].X), float32(r.poly[0].Y))
	for _, p := range r.poly[1:] {
		r.z.LineTo(float32(p.X), float32(p.Y))
	}
	r.z.ClosePath()
}
