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

// Package skeleton implements an animated 2D skeleton of rigid bones.
//
// A [Chain] holds the bones, a [Controller] turns pointer presses into
// selections and new bones, and a [Tracer] wraps every bone in a closed
// outline whose half-width is given by a [Profile].  A [Scene] ties these
// together for a host which calls [Scene.Tick] and [Scene.Frame] once per
// repaint.
//
// Coordinates are screen pixels with the y-axis pointing down.  Angles are
// in radians, measured counter-clockwise as seen on screen.
package skeleton

//go:generate go run ./figures/genref
//go:generate go run ./figures/export
