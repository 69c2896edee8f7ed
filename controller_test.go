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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func newTestController() *Controller {
	chain := NewChainOf(SegmentBetween(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0}))
	return NewController(chain)
}

func TestControllerSelectAndAppend(t *testing.T) {
	c := newTestController()

	assert.Equal(t, ActionSelect, c.PrimaryPress(vec.Vec2{X: 2, Y: 2}))
	p, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, p)

	assert.Equal(t, ActionAppend, c.PrimaryPress(vec.Vec2{X: 99, Y: 1}))
	_, ok = c.Selection()
	assert.False(t, ok)

	require.Equal(t, 2, c.Chain.Len())
	s := c.Chain.At(1)
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, s.Start())
	assert.InDelta(t, 100, s.End().X, 1e-12)
	assert.InDelta(t, 0, s.End().Y, 1e-12)
}

func TestControllerDeselect(t *testing.T) {
	c := newTestController()

	require.Equal(t, ActionSelect, c.PrimaryPress(vec.Vec2{X: 101, Y: 0}))
	assert.Equal(t, ActionDeselect, c.PrimaryPress(vec.Vec2{X: 98, Y: -2}))
	_, ok := c.Selection()
	assert.False(t, ok)
	assert.Equal(t, 1, c.Chain.Len())
}

func TestControllerAppendToEmptySpace(t *testing.T) {
	c := newTestController()

	require.Equal(t, ActionSelect, c.PrimaryPress(vec.Vec2{X: 100, Y: 0}))
	assert.Equal(t, ActionAppend, c.PrimaryPress(vec.Vec2{X: 100, Y: 50}))

	require.Equal(t, 2, c.Chain.Len())
	s := c.Chain.At(1)
	assert.InDelta(t, 100, s.Start().X, 1e-12)
	assert.InDelta(t, 100, s.End().X, 1e-9)
	assert.InDelta(t, 50, s.End().Y, 1e-9)
	assert.InDelta(t, 50, s.Length, 1e-12)
}

func TestControllerMiss(t *testing.T) {
	c := newTestController()

	assert.Equal(t, ActionNone, c.PrimaryPress(vec.Vec2{X: 50, Y: 0}))
	assert.Equal(t, ActionNone, c.PrimaryPress(vec.Vec2{X: -1000, Y: 1e9}))
	_, ok := c.Selection()
	assert.False(t, ok)
	assert.Equal(t, 1, c.Chain.Len())
}

func TestControllerHitRadius(t *testing.T) {
	c := newTestController()

	// exactly on the radius still counts
	assert.Equal(t, ActionSelect, c.SecondaryPress(vec.Vec2{X: 3, Y: 4}))
	c.Deselect()
	assert.Equal(t, ActionNone, c.SecondaryPress(vec.Vec2{X: 3, Y: 4.01}))

	c.Radius = 10
	assert.Equal(t, ActionSelect, c.SecondaryPress(vec.Vec2{X: 3, Y: 4.01}))
}

func TestControllerSecondaryPress(t *testing.T) {
	c := newTestController()

	assert.Equal(t, ActionSelect, c.SecondaryPress(vec.Vec2{X: 1, Y: 1}))
	p, _ := c.Selection()
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, p)

	// reassign to a different vertex, no bone is added
	assert.Equal(t, ActionSelect, c.SecondaryPress(vec.Vec2{X: 99, Y: 0}))
	p, ok := c.Selection()
	require.True(t, ok)
	assert.InDelta(t, 100, p.X, 1e-12)
	assert.Equal(t, 1, c.Chain.Len())

	// empty space leaves the selection alone
	assert.Equal(t, ActionNone, c.SecondaryPress(vec.Vec2{X: 50, Y: 50}))
	_, ok = c.Selection()
	assert.True(t, ok)

	// pressing the selected vertex again deselects
	assert.Equal(t, ActionDeselect, c.SecondaryPress(vec.Vec2{X: 100, Y: 1}))
	_, ok = c.Selection()
	assert.False(t, ok)
	assert.Equal(t, 1, c.Chain.Len())
}

func TestControllerTieBreak(t *testing.T) {
	chain := NewChainOf(
		SegmentBetween(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0}),
		SegmentBetween(vec.Vec2{X: 3, Y: 0}, vec.Vec2{X: 50, Y: 0}),
	)
	c := NewController(chain)

	// (3,0) is closest to the second bone's start, but the first bone's
	// start comes first in chain order
	require.Equal(t, ActionSelect, c.PrimaryPress(vec.Vec2{X: 3, Y: 0}))
	p, _ := c.Selection()
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, p)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "append", ActionAppend.String())
	assert.Equal(t, "Action(17)", Action(17).String())
}
