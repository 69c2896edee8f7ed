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
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/skeleton"
)

// Style selects the colors and line widths used by a [Canvas].
// Colors with zero alpha are not drawn.
type Style struct {
	Background color.RGBA
	Body       color.RGBA // inside of the outlines
	Outline    color.RGBA
	Bone       color.RGBA
	Cross      color.RGBA // marks the center of the canvas
	Selection  color.RGBA

	OutlineWidth float64
	BoneWidth    float64

	CrossSize       float64 // length of the cross arms
	SelectionRadius float64
}

// DefaultStyle returns the style used by [NewCanvas].
func DefaultStyle() Style {
	return Style{
		Background:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Body:            color.RGBA{R: 0xd8, G: 0xe8, B: 0xf8, A: 0xff},
		Outline:         color.RGBA{R: 0x20, G: 0x40, B: 0xc0, A: 0xff},
		Bone:            color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Cross:           color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
		Selection:       color.RGBA{R: 0xe0, G: 0x20, B: 0x20, A: 0xff},
		OutlineWidth:    1,
		BoneWidth:       1.5,
		CrossSize:       10,
		SelectionRadius: skeleton.DefaultHitRadius,
	}
}

// Canvas draws frames into an RGBA image.
type Canvas struct {
	Image *image.RGBA
	Style Style

	r *Rasteriser
}

// NewCanvas returns a canvas of the given size, using [DefaultStyle].
func NewCanvas(width, height int) *Canvas {
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	return &Canvas{
		Image: image.NewRGBA(image.Rect(0, 0, width, height)),
		Style: DefaultStyle(),
		r:     NewRasteriser(clip),
	}
}

// Draw paints a complete frame, replacing the previous image contents.
func (c *Canvas) Draw(f *skeleton.Frame) {
	st := &c.Style
	c.clear(st.Background)

	if st.Body.A != 0 {
		for _, pl := range f.Contours {
			c.r.Fill(pl.Path(), c.painter(st.Body))
		}
	}

	if st.Outline.A != 0 {
		c.r.Width = st.OutlineWidth
		for _, pl := range f.Contours {
			c.r.Stroke(pl.Path(), c.painter(st.Outline))
		}
	}

	if st.Bone.A != 0 {
		c.r.Width = st.BoneWidth
		for _, l := range f.Bones {
			p := (&path.Data{}).MoveTo(l.From).LineTo(l.To)
			c.r.Stroke(p, c.painter(st.Bone))
		}
	}

	c.drawCross()

	if f.HasSelection && st.Selection.A != 0 {
		c.r.Width = 1
		c.r.Stroke(circle(f.Selected, st.SelectionRadius), c.painter(st.Selection))
	}
}

// drawCross marks the center of the canvas.
func (c *Canvas) drawCross() {
	st := &c.Style
	if st.Cross.A == 0 || st.CrossSize <= 0 {
		return
	}
	b := c.Image.Bounds()
	center := vec.Vec2{X: float64(b.Min.X+b.Max.X) / 2, Y: float64(b.Min.Y+b.Max.Y) / 2}
	s := st.CrossSize
	p := (&path.Data{}).
		MoveTo(center.Add(vec.Vec2{X: -s})).
		LineTo(center.Add(vec.Vec2{X: s})).
		MoveTo(center.Add(vec.Vec2{Y: -s})).
		LineTo(center.Add(vec.Vec2{Y: s}))
	c.r.Width = 1
	c.r.Stroke(p, c.painter(st.Cross))
}

func (c *Canvas) clear(col color.RGBA) {
	pix := c.Image.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// painter returns an emit callback which composites col over the image,
// weighted by the coverage.
func (c *Canvas) painter(col color.RGBA) func(y, xMin int, coverage []float32) {
	img := c.Image
	sr, sg, sb, sa := float32(col.R), float32(col.G), float32(col.B), float32(col.A)/255
	return func(y, xMin int, coverage []float32) {
		if y < img.Rect.Min.Y || y >= img.Rect.Max.Y {
			return
		}
		for i, cov := range coverage {
			x := xMin + i
			if x < img.Rect.Min.X || x >= img.Rect.Max.X || cov <= 0 {
				continue
			}
			// premultiplied "over"
			k := 1 - sa*cov
			o := img.PixOffset(x, y)
			px := img.Pix[o : o+4 : o+4]
			px[0] = uint8(sr*cov + float32(px[0])*k + 0.5)
			px[1] = uint8(sg*cov + float32(px[1])*k + 0.5)
			px[2] = uint8(sb*cov + float32(px[2])*k + 0.5)
			px[3] = uint8(sa*255*cov + float32(px[3])*k + 0.5)
		}
	}
}

// circle returns a closed polygon approximating a circle.
func circle(center vec.Vec2, radius float64) *path.Data {
	const n = 32
	p := &path.Data{}
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / n)
		pt := center.Add(vec.Vec2{X: radius * cos, Y: radius * sin})
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p.Close()
}
