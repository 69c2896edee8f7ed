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

// Command genref generates reference renderings of all figures.
// Every figure is written both as a vector PDF and as a PNG produced by the
// built-in rasteriser, so that the two can be compared side by side.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/skeleton/figures"
	"seehuhn.de/go/skeleton/render"
)

const refDir = "testdata/figures"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(figures.All)) {
		for _, fig := range figures.All[category] {
			name := category + "_" + fig.Name
			if err := generate(fig, filepath.Join(refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(fig figures.Figure, base string) error {
	f := fig.Frame()

	if err := render.WritePDF(base+".pdf", f, fig.Width, fig.Height); err != nil {
		return err
	}

	c := render.NewCanvas(fig.Width, fig.Height)
	c.Draw(f)
	return render.WritePNG(base+".png", c.Image)
}
