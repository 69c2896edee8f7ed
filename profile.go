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

package skeleton

import "math"

// Profile gives the half-width of a body outline.
//
// The argument s is the position along the bone's spine, as used by
// [Tracer], and t is the elapsed time in seconds.  Implementations should
// return positive values; the tracer clamps everything else.
type Profile interface {
	Width(s, t float64) float64
}

// ProfileFunc adapts an ordinary function to the [Profile] interface.
type ProfileFunc func(s, t float64) float64

// Width implements the [Profile] interface.
func (f ProfileFunc) Width(s, t float64) float64 {
	return f(s, t)
}

// Constant is a profile of fixed width.  It traces a capsule.
type Constant float64

// Width implements the [Profile] interface.
func (c Constant) Width(s, t float64) float64 {
	return float64(c)
}

// Wave is a traveling-wave profile.  The width at position s and time t is
//
//	Base + Amplitude·sin²(Frequency·(s − Speed·t))
//
// so that bulges move along the spine at Speed pixels per second.
type Wave struct {
	Base      float64 // minimum width
	Amplitude float64 // height of the bulges
	Frequency float64 // radians per pixel
	Speed     float64 // pixels per second
}

// Width implements the [Profile] interface.
func (w Wave) Width(s, t float64) float64 {
	x := math.Sin(w.Frequency * (s - w.Phase(t)))
	return w.Base + w.Amplitude*x*x
}

// Phase returns how far the wave has traveled after t seconds.
func (w Wave) Phase(t float64) float64 {
	return w.Speed * t
}
