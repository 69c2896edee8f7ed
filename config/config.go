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

// Package config reads the settings of the skeleton viewer from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/skeleton"
)

// Config holds the viewer settings.
type Config struct {
	Width  int `toml:"width"`  // canvas width in pixels
	Height int `toml:"height"` // canvas height in pixels

	// Interval is the time between repaints.
	Interval Duration `toml:"interval"`

	// Duration is how long the viewer runs.  Zero means until interrupted.
	Duration Duration `toml:"duration"`

	Bones      int     `toml:"bones"`       // number of initial bones
	BoneLength float64 `toml:"bone_length"` // maximum length of initial bones
	Seed       uint64  `toml:"seed"`        // 0 selects a random seed

	HitRadius float64 `toml:"hit_radius"` // vertex picking radius in pixels
	Step      float64 `toml:"step"`       // outline resolution in pixels

	Profile Profile `toml:"profile"`
}

// Profile selects the body shape.
type Profile struct {
	Kind string `toml:"kind"` // "constant" or "wave"

	// Width is used by the constant profile.
	Width float64 `toml:"width,omitempty"`

	// These are used by the wave profile, see [skeleton.Wave].
	Base      float64 `toml:"base,omitempty"`
	Amplitude float64 `toml:"amplitude,omitempty"`
	Frequency float64 `toml:"frequency,omitempty"`
	Speed     float64 `toml:"speed,omitempty"`
}

// Profile kinds.
const (
	KindConstant = "constant"
	KindWave     = "wave"
)

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Width:      640,
		Height:     480,
		Interval:   Duration(50 * time.Millisecond),
		Bones:      5,
		BoneLength: 60,
		HitRadius:  skeleton.DefaultHitRadius,
		Step:       1,
		Profile: Profile{
			Kind:      KindWave,
			Base:      6,
			Amplitude: 5,
			Frequency: 0.08,
			Speed:     40,
		},
	}
}

// Load reads settings from the named file.  Settings missing from the
// file keep their default values.
func Load(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Decode reads settings in TOML format from r and validates them.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown settings:\n%s", strict.String())
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes the settings to w in TOML format.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid setting")

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Interval <= 0:
		return fmt.Errorf("%w: interval %s must be positive", ErrInvalid, c.Interval)
	case c.Duration < 0:
		return fmt.Errorf("%w: negative duration %s", ErrInvalid, c.Duration)
	case c.Bones < 0:
		return fmt.Errorf("%w: negative number of bones %d", ErrInvalid, c.Bones)
	case !(c.BoneLength >= 0):
		return fmt.Errorf("%w: bone length %g", ErrInvalid, c.BoneLength)
	case !(c.HitRadius >= 0):
		return fmt.Errorf("%w: hit radius %g", ErrInvalid, c.HitRadius)
	case !(c.Step > 0):
		return fmt.Errorf("%w: step %g must be positive", ErrInvalid, c.Step)
	}
	return c.Profile.validate()
}

func (p Profile) validate() error {
	switch p.Kind {
	case KindConstant:
		if !(p.Width > 0) {
			return fmt.Errorf("%w: constant profile width %g must be positive", ErrInvalid, p.Width)
		}
	case KindWave:
		if !(p.Base > 0) || !(p.Amplitude >= 0) {
			return fmt.Errorf("%w: wave profile needs base > 0 and amplitude >= 0", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown profile kind %q", ErrInvalid, p.Kind)
	}
	return nil
}

// Build returns the profile described by p.
func (p Profile) Build() (skeleton.Profile, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.Kind == KindConstant {
		return skeleton.Constant(p.Width), nil
	}
	return skeleton.Wave{
		Base:      p.Base,
		Amplitude: p.Amplitude,
		Frequency: p.Frequency,
		Speed:     p.Speed,
	}, nil
}

// Duration is a time.Duration which is written as a string like "50ms" in
// configuration files.
type Duration time.Duration

// MarshalText implements the encoding.TextMarshaler interface.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
