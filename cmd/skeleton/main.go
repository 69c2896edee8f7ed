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

// Command skeleton runs the animated skeleton without a window.
//
// Frames are rendered at the configured interval and can be written to a
// directory as PNG files.  Pointer presses are read from an event script,
// and the body profile is reloaded whenever the configuration file changes.
// The program stops after the configured duration or on interrupt.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"seehuhn.de/go/skeleton"
	"seehuhn.de/go/skeleton/config"
)

func main() {
	configFile := flag.String("config", "", "TOML configuration `file`")
	scriptFile := flag.String("script", "", "TOML file with pointer events")
	outDir := flag.String("out", "", "write every frame as PNG into `dir`")
	pdfFile := flag.String("pdf", "", "write the last frame as PDF to `file`")
	duration := flag.Duration("duration", -1, "stop after this time (0 runs until interrupted)")
	watch := flag.Bool("watch", false, "reload the profile when the configuration file changes")
	verbose := flag.Bool("v", false, "log pointer events")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	skeleton.SetLogger(logger)

	if err := run(logger, *configFile, *scriptFile, *outDir, *pdfFile, *duration, *watch); err != nil {
		fmt.Fprintln(os.Stderr, "skeleton:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configFile, scriptFile, outDir, pdfFile string, duration time.Duration, watch bool) error {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}
	if duration >= 0 {
		cfg.Duration = config.Duration(duration)
	}

	script := &config.Script{}
	if scriptFile != "" {
		var err error
		script, err = config.LoadScript(scriptFile)
		if err != nil {
			return err
		}
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
	}

	h, err := newHost(cfg, script, logger)
	if err != nil {
		return err
	}
	h.outDir = outDir

	var w *watcher
	if watch {
		if configFile == "" {
			return fmt.Errorf("-watch needs a configuration file")
		}
		w, err = newWatcher(configFile)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting",
		slog.Int("bones", h.scene.Chain.Len()),
		slog.Duration("interval", time.Duration(cfg.Interval)),
		slog.Duration("duration", time.Duration(cfg.Duration)))

	if err := h.loop(ctx, w); err != nil {
		return err
	}

	logger.Info("stopped",
		slog.Int("frames", h.frames),
		slog.Int("bones", h.scene.Chain.Len()))

	if pdfFile != "" {
		return h.writePDF(pdfFile)
	}
	return nil
}
