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

var wave = skeleton.Wave{
	Base:      5,
	Amplitude: 6,
	Frequency: 0.08,
	Speed:     40,
}

// animatedFigures show the traveling wave at different times.
var animatedFigures = []Figure{
	{
		Name:    "wave_start",
		Bones:   []skeleton.Segment{bone(16, 64, 176, 64)},
		Profile: wave,
		Width:   192,
		Height:  128,
	},
	{
		Name:    "wave_quarter_second",
		Bones:   []skeleton.Segment{bone(16, 64, 176, 64)},
		Profile: wave,
		Time:    250 * time.Millisecond,
		Width:   192,
		Height:  128,
	},
	{
		Name:    "wave_one_second",
		Bones:   []skeleton.Segment{bone(16, 64, 176, 64)},
		Profile: wave,
		Time:    time.Second,
		Width:   192,
		Height:  128,
	},
	{
		Name: "wave_bent",
		Bones: []skeleton.Segment{
			bone(20, 100, 80, 30),
			bone(80, 30, 170, 90),
		},
		Profile: wave,
		Time:    400 * time.Millisecond,
		Width:   192,
		Height:  128,
	},
	{
		Name:  "ripple",
		Bones: []skeleton.Segment{bone(16, 64, 176, 64)},
		Profile: skeleton.Wave{
			Base:      8,
			Amplitude: 2,
			Frequency: 0.5,
			Speed:     10,
		},
		Time:   150 * time.Millisecond,
		Width:  192,
		Height: 128,
	},
}
