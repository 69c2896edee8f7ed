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

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// DefaultHitRadius is the distance in pixels within which a press picks
// a vertex.
const DefaultHitRadius = 5.0

// Action describes the effect of a pointer press.
type Action int

// These are the possible effects of a pointer press.
const (
	ActionNone     Action = iota // nothing changed
	ActionSelect                 // a vertex was selected
	ActionDeselect               // the selection was cleared
	ActionAppend                 // a new bone was added
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSelect:
		return "select"
	case ActionDeselect:
		return "deselect"
	case ActionAppend:
		return "append"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Controller interprets pointer presses.
//
// With nothing selected, a primary press on a vertex selects it.  With a
// vertex selected, a primary press on the same vertex deselects it, and a
// press anywhere else adds a bone from the selected vertex to the pressed
// vertex (or to the raw press location) and clears the selection.
// A secondary press only ever changes the selection.
type Controller struct {
	Chain *Chain

	// Radius is the hit-test radius in pixels.
	Radius float64

	selected bool
	point    vec.Vec2
}

// NewController returns a controller for chain, using [DefaultHitRadius].
func NewController(chain *Chain) *Controller {
	return &Controller{Chain: chain, Radius: DefaultHitRadius}
}

// Selection returns the selected vertex, if any.
func (c *Controller) Selection() (vec.Vec2, bool) {
	return c.point, c.selected
}

// Deselect clears the selection.
func (c *Controller) Deselect() {
	c.selected = false
	c.point = vec.Vec2{}
}

// PrimaryPress handles a press of the primary button at p.
func (c *Controller) PrimaryPress(p vec.Vec2) Action {
	if !c.selected {
		return c.toggle(p)
	}

	from := c.point
	hit, ok := c.hit(p)
	switch {
	case ok && hit == from:
		c.Deselect()
		return ActionDeselect
	case ok:
		c.Chain.Append(from, hit)
	default:
		c.Chain.Append(from, p)
	}
	c.Deselect()
	return ActionAppend
}

// SecondaryPress handles a press of the secondary button at p.
// It never adds bones.
func (c *Controller) SecondaryPress(p vec.Vec2) Action {
	return c.toggle(p)
}

// toggle selects the vertex at p, or deselects it if it is already
// selected.  Presses away from all vertices are ignored.
func (c *Controller) toggle(p vec.Vec2) Action {
	hit, ok := c.hit(p)
	if !ok {
		return ActionNone
	}
	if c.selected && hit == c.point {
		c.Deselect()
		return ActionDeselect
	}
	c.selected = true
	c.point = hit
	return ActionSelect
}

// hit returns the first vertex, in chain order, within the hit radius of p.
func (c *Controller) hit(p vec.Vec2) (vec.Vec2, bool) {
	if c.Chain == nil {
		return vec.Vec2{}, false
	}
	for v := range c.Chain.Vertices() {
		if Distance(v, p) <= c.Radius {
			return v, true
		}
	}
	return vec.Vec2{}, false
}
