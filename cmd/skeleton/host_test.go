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

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/skeleton"
	"seehuhn.de/go/skeleton/config"
)

func testHost(t *testing.T, script string) *host {
	t.Helper()

	cfg := config.Default()
	cfg.Width = 100
	cfg.Height = 80
	cfg.Bones = 1
	cfg.BoneLength = 40
	cfg.Seed = 1

	s, err := config.DecodeScript(strings.NewReader(script))
	require.NoError(t, err)

	h, err := newHost(cfg, s, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return h
}

func TestNewHostCentersChain(t *testing.T) {
	h := testHost(t, "")
	require.Equal(t, 1, h.scene.Chain.Len())

	// a single bone of length 40 centered in a 100x80 canvas
	s := h.scene.Chain.At(0)
	assert.InDelta(t, 30, s.Start().X, 1e-9)
	assert.InDelta(t, 40, s.Start().Y, 1e-9)
	assert.InDelta(t, 70, s.End().X, 1e-9)
	assert.InDelta(t, 40, s.End().Y, 1e-9)
}

func TestScriptedEvents(t *testing.T) {
	// select the end of the bone, then append a new bone
	h := testHost(t, `
[[event]]
at = "10ms"
button = "secondary"
x = 70
y = 41

[[event]]
at = "30ms"
button = "primary"
x = 70
y = 10
`)

	require.NoError(t, h.frame(5*time.Millisecond))
	_, selected := h.scene.Controller.Selection()
	assert.False(t, selected)

	require.NoError(t, h.frame(20*time.Millisecond))
	_, selected = h.scene.Controller.Selection()
	assert.True(t, selected)

	require.NoError(t, h.frame(40*time.Millisecond))
	assert.Equal(t, 2, h.scene.Chain.Len())
	last, _ := h.scene.Chain.Last()
	assert.InDelta(t, 30, last.Length, 1e-9)

	assert.Equal(t, 3, h.frames)
	assert.Equal(t, 40*time.Millisecond, h.scene.Elapsed())
}

func TestFrameOutput(t *testing.T) {
	h := testHost(t, "")
	h.outDir = t.TempDir()

	require.NoError(t, h.frame(0))
	require.NoError(t, h.frame(50*time.Millisecond))

	for _, name := range []string{"frame-00001.png", "frame-00002.png"} {
		info, err := os.Stat(filepath.Join(h.outDir, name))
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}

	pdfName := filepath.Join(h.outDir, "last.pdf")
	require.NoError(t, h.writePDF(pdfName))
	_, err := os.Stat(pdfName)
	assert.NoError(t, err)
}

func TestReload(t *testing.T) {
	h := testHost(t, "")
	fname := filepath.Join(t.TempDir(), "skeleton.toml")

	good := "step = 0.5\nhit_radius = 8.0\n[profile]\nkind = \"constant\"\nwidth = 3.0\n"
	require.NoError(t, os.WriteFile(fname, []byte(good), 0o644))
	h.reload(fname)
	assert.Equal(t, skeleton.Constant(3), h.scene.Tracer.Profile)
	assert.Equal(t, 0.5, h.scene.Tracer.Step)
	assert.Equal(t, 8.0, h.scene.Controller.Radius)
	assert.Equal(t, 8.0, h.canvas.Style.SelectionRadius)

	// a broken file keeps the previous settings
	require.NoError(t, os.WriteFile(fname, []byte("[profile]\nkind = \"blob\"\n"), 0o644))
	h.reload(fname)
	assert.Equal(t, skeleton.Constant(3), h.scene.Tracer.Profile)
	assert.Equal(t, 0.5, h.scene.Tracer.Step)
}

func TestLoopStopsAfterDuration(t *testing.T) {
	h := testHost(t, "")
	h.cfg.Interval = config.Duration(5 * time.Millisecond)
	h.cfg.Duration = config.Duration(50 * time.Millisecond)

	require.NoError(t, h.loop(t.Context(), nil))
	assert.Positive(t, h.frames)
}

func TestWatcher(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "skeleton.toml")
	require.NoError(t, os.WriteFile(fname, []byte("bones = 1\n"), 0o644))

	w, err := newWatcher(fname)
	require.NoError(t, err)
	defer w.Close()

	// changes to other files are ignored
	other := filepath.Join(filepath.Dir(fname), "other.toml")
	require.NoError(t, os.WriteFile(other, []byte("bones = 2\n"), 0o644))
	require.NoError(t, os.WriteFile(fname, []byte("bones = 3\n"), 0o644))

	select {
	case got := <-w.Changed:
		assert.Equal(t, fname, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
