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
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/skeleton"
	"seehuhn.de/go/skeleton/config"
	"seehuhn.de/go/skeleton/render"
)

// host drives a scene from a single goroutine.
type host struct {
	cfg    *config.Config
	scene  *skeleton.Scene
	canvas *render.Canvas
	script *config.Script
	logger *slog.Logger

	outDir string // PNG output, empty to discard frames
	frames int
}

func newHost(cfg *config.Config, script *config.Script, logger *slog.Logger) (*host, error) {
	profile, err := cfg.Profile.Build()
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	chain := skeleton.NewChain(cfg.Bones, cfg.BoneLength, rng)
	chain.Center(rect.Rect{URx: float64(cfg.Width), URy: float64(cfg.Height)})

	h := &host{
		cfg:    cfg,
		scene:  skeleton.NewScene(chain, profile),
		canvas: render.NewCanvas(cfg.Width, cfg.Height),
		script: script,
		logger: logger,
	}
	h.applySettings(cfg)
	return h, nil
}

// applySettings copies the settings which can change at run time into the
// scene and the canvas.
func (h *host) applySettings(cfg *config.Config) {
	h.scene.Tracer.Step = cfg.Step
	h.scene.Controller.Radius = cfg.HitRadius
	h.canvas.Style.SelectionRadius = cfg.HitRadius
}

// loop renders frames until ctx is cancelled or the configured duration
// has passed.  If w is non-nil, configuration changes are applied between
// frames.
func (h *host) loop(ctx context.Context, w *watcher) error {
	ticker := time.NewTicker(time.Duration(h.cfg.Interval))
	defer ticker.Stop()

	var deadline <-chan time.Time
	if h.cfg.Duration > 0 {
		timer := time.NewTimer(time.Duration(h.cfg.Duration))
		defer timer.Stop()
		deadline = timer.C
	}

	var changed <-chan string
	var watchErrs <-chan error
	if w != nil {
		changed = w.Changed
		watchErrs = w.Errors
	}

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			return nil
		case now := <-ticker.C:
			if err := h.frame(now.Sub(start)); err != nil {
				return err
			}
		case fname := <-changed:
			h.reload(fname)
		case err := <-watchErrs:
			h.logger.Warn("watching configuration", slog.Any("error", err))
		}
	}
}

// frame applies all scripted events due at elapsed, then renders one frame.
func (h *host) frame(elapsed time.Duration) error {
	for _, ev := range h.script.Due(config.Duration(elapsed)) {
		h.apply(ev)
	}

	h.scene.Tick(elapsed)
	h.canvas.Draw(h.scene.Frame())
	h.frames++

	if h.outDir == "" {
		return nil
	}
	fname := filepath.Join(h.outDir, fmt.Sprintf("frame-%05d.png", h.frames))
	return render.WritePNG(fname, h.canvas.Image)
}

func (h *host) apply(ev config.Event) skeleton.Action {
	p := vec.Vec2{X: ev.X, Y: ev.Y}
	if ev.Button == config.Secondary {
		return h.scene.SecondaryPress(p)
	}
	return h.scene.PrimaryPress(p)
}

// reload reads the configuration file again and applies the profile and
// the other settings which can change at run time.  On error, the current
// settings are kept.
func (h *host) reload(fname string) {
	cfg, err := config.Load(fname)
	if err != nil {
		h.logger.Warn("configuration not reloaded", slog.Any("error", err))
		return
	}
	profile, err := cfg.Profile.Build()
	if err != nil {
		h.logger.Warn("configuration not reloaded", slog.Any("error", err))
		return
	}
	h.scene.Tracer.Profile = profile
	h.applySettings(cfg)
	h.logger.Info("configuration reloaded",
		slog.String("file", fname),
		slog.String("profile", cfg.Profile.Kind))
}

func (h *host) writePDF(fname string) error {
	return render.WritePDF(fname, h.scene.Frame(), h.cfg.Width, h.cfg.Height)
}
