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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/skeleton"
)

// Gray levels used in PDF output.
const (
	pdfBackground = 1.0
	pdfBody       = 0.9
	pdfOutline    = 0.2
	pdfBone       = 0.0
	pdfSelection  = 0.5
)

// WritePDF writes the frame as a single-page PDF file of the given size.
// One pixel corresponds to one PDF point.
func WritePDF(fname string, f *skeleton.Frame, width, height int) error {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating %q: %w", fname, err)
	}

	page.SetFillColor(color.DeviceGray(pdfBackground))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()

	// PDF origin is bottom-left, frames use screen coordinates.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	// bodies
	page.SetFillColor(color.DeviceGray(pdfBody))
	for _, pl := range f.Contours {
		if len(pl) < 3 {
			continue
		}
		page.MoveTo(pl[0].X, pl[0].Y)
		for _, pt := range pl[1:] {
			page.LineTo(pt.X, pt.Y)
		}
		page.ClosePath()
		page.Fill()
	}

	// outlines
	page.SetStrokeColor(color.DeviceGray(pdfOutline))
	page.SetLineWidth(0.5)
	for _, pl := range f.Contours {
		if len(pl) < 2 {
			continue
		}
		page.MoveTo(pl[0].X, pl[0].Y)
		for _, pt := range pl[1:] {
			page.LineTo(pt.X, pt.Y)
		}
		if pl.IsClosed() {
			page.ClosePath()
		}
		page.Stroke()
	}

	// bones
	if len(f.Bones) > 0 {
		page.SetStrokeColor(color.DeviceGray(pdfBone))
		page.SetLineWidth(1.5)
		for _, l := range f.Bones {
			page.MoveTo(l.From.X, l.From.Y)
			page.LineTo(l.To.X, l.To.Y)
		}
		page.Stroke()
	}

	if f.HasSelection {
		page.SetStrokeColor(color.DeviceGray(pdfSelection))
		page.SetLineWidth(1)
		p := circle(f.Selected, skeleton.DefaultHitRadius)
		coordIdx := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
				coordIdx++
			case path.CmdLineTo:
				page.LineTo(p.Coords[coordIdx].X, p.Coords[coordIdx].Y)
				coordIdx++
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", fname, err)
	}
	return nil
}
