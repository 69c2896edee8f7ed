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

package figures

import (
	"math"

	"seehuhn.de/go/skeleton"
)

// degenerateFigures contain bones and profiles which the tracer has to
// clamp.
var degenerateFigures = []Figure{
	{
		Name:    "zero_length",
		Bones:   []skeleton.Segment{bone(32, 32, 32, 32)},
		Profile: skeleton.Constant(10),
		Width:   64,
		Height:  64,
	},
	{
		Name:    "zero_width",
		Bones:   []skeleton.Segment{bone(8, 32, 56, 32)},
		Profile: skeleton.Constant(0),
		Width:   64,
		Height:  64,
	},
	{
		Name:  "negative_width",
		Bones: []skeleton.Segment{bone(8, 32, 56, 32)},
		Profile: skeleton.ProfileFunc(func(s, t float64) float64 {
			return 6 * math.Sin(s/4)
		}),
		Width:  64,
		Height: 64,
	},
	{
		Name:    "off_canvas",
		Bones:   []skeleton.Segment{bone(-100, -100, 200, -50)},
		Profile: skeleton.Constant(5),
		Width:   64,
		Height:  64,
	},
}
