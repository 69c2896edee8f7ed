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

// staticFigures use constant profiles, so every body is a capsule.
var staticFigures = []Figure{
	{
		Name:    "capsule_horizontal",
		Bones:   []skeleton.Segment{bone(16, 32, 112, 32)},
		Profile: skeleton.Constant(12),
		Width:   128,
		Height:  64,
	},
	{
		Name:    "capsule_vertical",
		Bones:   []skeleton.Segment{bone(32, 100, 32, 20)},
		Profile: skeleton.Constant(10),
		Width:   64,
		Height:  128,
	},
	{
		Name: "capsule_diagonal",
		Bones: []skeleton.Segment{{
			Origin: pt(20, 100),
			Length: 100,
			Angle:  math.Pi / 4,
		}},
		Profile: skeleton.Constant(8),
		Width:   128,
		Height:  128,
	},
	{
		Name:    "capsule_thin",
		Bones:   []skeleton.Segment{bone(10, 32, 118, 32)},
		Profile: skeleton.Constant(1.5),
		Width:   128,
		Height:  64,
	},
	{
		Name:    "capsule_fat",
		Bones:   []skeleton.Segment{bone(54, 64, 74, 64)},
		Profile: skeleton.Constant(40),
		Width:   128,
		Height:  128,
	},
	{
		Name: "taper",
		Bones: []skeleton.Segment{
			bone(16, 64, 112, 64),
		},
		Profile: skeleton.ProfileFunc(func(s, t float64) float64 {
			return 4 + 12*math.Abs(math.Cos(s*math.Pi/96))
		}),
		Width:  128,
		Height: 128,
	},
	{
		Name: "selected_vertex",
		Bones: []skeleton.Segment{
			bone(20, 64, 70, 40),
			bone(70, 40, 108, 80),
		},
		Profile: skeleton.Constant(6),
		Width:   128,
		Height:  128,
		Select:  ptr(71, 41),
	},
}
