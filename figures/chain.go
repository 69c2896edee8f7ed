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
	"time"

	"seehuhn.de/go/skeleton"
)

// chainFigures show several linked bones.
var chainFigures = []Figure{
	{
		Name: "zigzag",
		Bones: []skeleton.Segment{
			bone(20, 100, 60, 30),
			bone(60, 30, 100, 100),
			bone(100, 100, 140, 30),
			bone(140, 30, 180, 100),
		},
		Profile: skeleton.Constant(7),
		Width:   200,
		Height:  128,
	},
	{
		Name: "star",
		Bones: []skeleton.Segment{
			bone(100, 100, 100, 30),
			bone(100, 100, 167, 122),
			bone(100, 100, 141, 157),
			bone(100, 100, 59, 157),
			bone(100, 100, 33, 122),
		},
		Profile: skeleton.Wave{Base: 4, Amplitude: 4, Frequency: 0.1, Speed: 25},
		Time:    300 * time.Millisecond,
		Width:   200,
		Height:  200,
	},
	{
		Name:    "random_five",
		Bones:   randomChain(5, 40, 1, 256, 256),
		Profile: skeleton.Constant(6),
		Width:   256,
		Height:  256,
	},
	{
		Name:    "random_twelve_animated",
		Bones:   randomChain(12, 50, 7, 256, 256),
		Profile: skeleton.Wave{Base: 3, Amplitude: 5, Frequency: 0.12, Speed: 30},
		Time:    2 * time.Second,
		Width:   256,
		Height:  256,
	},
}
