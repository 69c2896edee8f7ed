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

// Command export writes the traced outlines of all figures to
// testdata/figures.json, for comparison with other implementations.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/skeleton"
	"seehuhn.de/go/skeleton/figures"
)

func main() {
	var out struct {
		Figures []jsonFigure `json:"figures"`
	}

	for _, category := range slices.Sorted(maps.Keys(figures.All)) {
		for _, fig := range figures.All[category] {
			out.Figures = append(out.Figures, toJSON(category, fig))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/figures.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonFigure struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Time     float64       `json:"time"`
	Bones    []jsonBone    `json:"bones"`
	Contours []jsonContour `json:"contours"`
	Selected []float64     `json:"selected,omitempty"`
}

type jsonBone struct {
	Origin []float64 `json:"origin"`
	Length float64   `json:"length"`
	Angle  float64   `json:"angle"`
}

type jsonContour struct {
	Closed bool        `json:"closed"`
	Length float64     `json:"length"`
	Pts    [][]float64 `json:"pts"`
}

func toJSON(category string, fig figures.Figure) jsonFigure {
	f := fig.Frame()
	jf := jsonFigure{
		Name:   category + "_" + fig.Name,
		Width:  fig.Width,
		Height: fig.Height,
		Time:   f.Elapsed.Seconds(),
	}
	for _, s := range fig.Bones {
		jf.Bones = append(jf.Bones, jsonBone{
			Origin: point(s.Origin),
			Length: s.Length,
			Angle:  s.Angle,
		})
	}
	for _, pl := range f.Contours {
		jf.Contours = append(jf.Contours, contourToJSON(pl))
	}
	if f.HasSelection {
		jf.Selected = point(f.Selected)
	}
	return jf
}

func contourToJSON(pl skeleton.Polyline) jsonContour {
	c := jsonContour{
		Closed: pl.IsClosed(),
		Length: pl.Length(),
		Pts:    make([][]float64, len(pl)),
	}
	for i, p := range pl {
		c.Pts[i] = point(p)
	}
	return c
}

func point(p vec.Vec2) []float64 {
	return []float64{p.X, p.Y}
}
