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
	"bytes"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestSceneFrame(t *testing.T) {
	chain := NewChain(4, 30, rand.New(rand.NewPCG(1, 2)))
	s := NewScene(chain, Wave{Base: 3, Amplitude: 2, Frequency: 0.2, Speed: 20})

	s.Tick(500 * time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, s.Elapsed())

	f := s.Frame()
	assert.Equal(t, 500*time.Millisecond, f.Elapsed)
	require.Len(t, f.Bones, 4)
	require.Len(t, f.Contours, 4)
	for i, seg := range chain.All() {
		assert.Equal(t, seg.Line(), f.Bones[i])
		assert.Equal(t, s.Tracer.Trace(seg, 0.5), f.Contours[i])
		assert.True(t, f.Contours[i].IsClosed())
	}
	assert.False(t, f.HasSelection)

	// frames are recomputed from the current time
	s.Tick(time.Second)
	g := s.Frame()
	assert.NotEqual(t, f.Contours, g.Contours)
}

func TestSceneEmpty(t *testing.T) {
	s := NewScene(nil, Constant(5))
	f := s.Frame()
	assert.Empty(t, f.Bones)
	assert.Empty(t, f.Contours)
	assert.Equal(t, ActionNone, s.PrimaryPress(vec.Vec2{X: 1, Y: 1}))
}

func TestSceneInteraction(t *testing.T) {
	chain := NewChainOf(SegmentBetween(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 40, Y: 10}))
	s := NewScene(chain, Constant(4))

	require.Equal(t, ActionSelect, s.SecondaryPress(vec.Vec2{X: 11, Y: 9}))
	f := s.Frame()
	assert.True(t, f.HasSelection)
	assert.Equal(t, vec.Vec2{X: 10, Y: 10}, f.Selected)

	require.Equal(t, ActionAppend, s.PrimaryPress(vec.Vec2{X: 10, Y: 60}))
	f = s.Frame()
	assert.False(t, f.HasSelection)
	assert.Len(t, f.Bones, 2)
	assert.Len(t, f.Contours, 2)
}

func TestSceneLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	chain := NewChainOf(SegmentBetween(vec.Vec2{}, vec.Vec2{X: 10}))
	s := NewScene(chain, Constant(2))
	s.PrimaryPress(vec.Vec2{X: 1})

	out := buf.String()
	assert.True(t, strings.Contains(out, "pointer press"), out)
	assert.True(t, strings.Contains(out, "action=select"), out)
	assert.True(t, strings.Contains(out, "button=primary"), out)
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
