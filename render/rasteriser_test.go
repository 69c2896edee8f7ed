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

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// coverageBuffer collects emitted coverage into a dense buffer.
type coverageBuffer struct {
	x0, y0 int
	w, h   int
	pix    []float32
}

func newCoverageBuffer(clip rect.Rect) *coverageBuffer {
	w, h := int(clip.URx-clip.LLx), int(clip.URy-clip.LLy)
	return &coverageBuffer{
		x0: int(clip.LLx), y0: int(clip.LLy),
		w: w, h: h,
		pix: make([]float32, w*h),
	}
}

func (b *coverageBuffer) emit(y, xMin int, coverage []float32) {
	row := b.pix[(y-b.y0)*b.w:]
	copy(row[xMin-b.x0:], coverage)
}

func (b *coverageBuffer) at(x, y int) float32 {
	return b.pix[(y-b.y0)*b.w+(x-b.x0)]
}

func (b *coverageBuffer) sum() float64 {
	total := 0.0
	for _, c := range b.pix {
		total += float64(c)
	}
	return total
}

func rectangle(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func TestFillRectangle(t *testing.T) {
	clip := rect.Rect{URx: 16, URy: 16}
	r := NewRasteriser(clip)
	buf := newCoverageBuffer(clip)

	r.Fill(rectangle(2, 2, 10, 6), buf.emit)

	assert.InDelta(t, 32, buf.sum(), 0.1)
	assert.InDelta(t, 1, buf.at(5, 4), 0.01)
	assert.InDelta(t, 1, buf.at(2, 2), 0.01)
	assert.Equal(t, float32(0), buf.at(10, 4))
	assert.Equal(t, float32(0), buf.at(12, 12))
}

func TestFillOpenSubpath(t *testing.T) {
	clip := rect.Rect{URx: 16, URy: 16}
	r := NewRasteriser(clip)
	buf := newCoverageBuffer(clip)

	// the missing closing edge is added implicitly
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 0}).
		LineTo(vec.Vec2{X: 8, Y: 8}).
		LineTo(vec.Vec2{X: 0, Y: 8})
	r.Fill(p, buf.emit)
	assert.InDelta(t, 64, buf.sum(), 0.1)
}

func TestFillCTMAndClip(t *testing.T) {
	clip := rect.Rect{LLx: 10, LLy: 10, URx: 30, URy: 30}
	r := NewRasteriser(clip)
	r.CTM = matrix.Matrix{2, 0, 0, 2, 10, 10}

	var rows []int
	xMin := 1000
	buf := newCoverageBuffer(clip)
	r.Fill(rectangle(1, 1, 3, 3), func(y, x int, coverage []float32) {
		rows = append(rows, y)
		xMin = min(xMin, x)
		buf.emit(y, x, coverage)
	})

	// device rectangle (12,12)-(16,16)
	assert.Equal(t, []int{12, 13, 14, 15}, rows)
	assert.Equal(t, 12, xMin)
	assert.InDelta(t, 16, buf.sum(), 0.1)
}

func TestStrokeButt(t *testing.T) {
	clip := rect.Rect{URx: 20, URy: 10}
	r := NewRasteriser(clip)
	r.Width = 2
	r.Cap = graphics.LineCapButt
	buf := newCoverageBuffer(clip)

	line := (&path.Data{}).MoveTo(vec.Vec2{X: 2, Y: 5}).LineTo(vec.Vec2{X: 18, Y: 5})
	r.Stroke(line, buf.emit)

	assert.InDelta(t, 32, buf.sum(), 0.1)
	assert.InDelta(t, 1, buf.at(10, 4), 0.01)
	assert.InDelta(t, 1, buf.at(10, 5), 0.01)
	assert.Equal(t, float32(0), buf.at(10, 7))
	assert.Equal(t, float32(0), buf.at(0, 5))
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).MoveTo(vec.Vec2{X: 4, Y: 5}).LineTo(vec.Vec2{X: 16, Y: 5})
	cases := []struct {
		cap      graphics.LineCapStyle
		min, max float64
	}{
		{graphics.LineCapButt, 23.9, 24.1},
		{graphics.LineCapRound, 24.5, 24 + 3.2},
		{graphics.LineCapSquare, 27.9, 28.1},
	}
	for _, c := range cases {
		t.Run(c.cap.String(), func(t *testing.T) {
			clip := rect.Rect{URx: 20, URy: 10}
			r := NewRasteriser(clip)
			r.Width = 2
			r.Cap = c.cap
			buf := newCoverageBuffer(clip)
			r.Stroke(line, buf.emit)

			s := buf.sum()
			assert.GreaterOrEqual(t, s, c.min)
			assert.LessOrEqual(t, s, c.max)
		})
	}
}

func TestStrokeClosedNoCancellation(t *testing.T) {
	for _, join := range []graphics.LineJoinStyle{graphics.LineJoinRound, graphics.LineJoinBevel, graphics.LineJoinMiter} {
		t.Run(join.String(), func(t *testing.T) {
			clip := rect.Rect{URx: 20, URy: 20}
			r := NewRasteriser(clip)
			r.Width = 2
			r.Join = join
			buf := newCoverageBuffer(clip)

			r.Stroke(rectangle(5, 5, 15, 15), buf.emit)

			// corners are covered by two edges and a join
			for _, p := range [][2]int{{14, 14}, {5, 5}, {14, 5}, {5, 14}} {
				assert.InDelta(t, 1, buf.at(p[0], p[1]), 0.01, "pixel %v", p)
			}
			assert.Equal(t, float32(0), buf.at(10, 10))
			assert.Equal(t, float32(0), buf.at(1, 1))
		})
	}
}

func TestStrokeDegenerate(t *testing.T) {
	clip := rect.Rect{URx: 10, URy: 10}
	dot := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5}).LineTo(vec.Vec2{X: 5, Y: 5})
	lone := (&path.Data{}).MoveTo(vec.Vec2{X: 5, Y: 5})

	r := NewRasteriser(clip)
	r.Width = 4
	buf := newCoverageBuffer(clip)
	r.Stroke(dot, buf.emit)
	assert.Greater(t, buf.sum(), 10.0)

	buf = newCoverageBuffer(clip)
	r.Stroke(lone, buf.emit)
	assert.Equal(t, 0.0, buf.sum())

	r.Cap = graphics.LineCapButt
	buf = newCoverageBuffer(clip)
	r.Stroke(dot, buf.emit)
	assert.Equal(t, 0.0, buf.sum())
}

func TestEmptyClip(t *testing.T) {
	r := NewRasteriser(rect.Rect{})
	called := false
	emit := func(int, int, []float32) { called = true }
	r.Fill(rectangle(0, 0, 5, 5), emit)
	r.Stroke(rectangle(0, 0, 5, 5), emit)
	require.False(t, called)
}

func TestStrokeCurve(t *testing.T) {
	clip := rect.Rect{URx: 40, URy: 40}
	r := NewRasteriser(clip)
	r.Width = 2
	r.Cap = graphics.LineCapButt
	buf := newCoverageBuffer(clip)

	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 20}).
		CubeTo(vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 35, Y: 5}, vec.Vec2{X: 35, Y: 20})
	r.Stroke(p, buf.emit)

	assert.Greater(t, buf.sum(), 2*30.0)
	assert.Equal(t, float32(0), buf.at(20, 30))
}
