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

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// Script is a list of pointer presses to replay against a scene.
type Script struct {
	Events []Event `toml:"event"`
}

// Event is a single pointer press.
type Event struct {
	At     Duration `toml:"at"` // time since the start of the animation
	Button Button   `toml:"button"`
	X      float64  `toml:"x"`
	Y      float64  `toml:"y"`
}

// Button identifies a pointer button.
type Button int

// These are the supported buttons.
const (
	Primary Button = iota
	Secondary
)

func (b Button) String() string {
	switch b {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (b Button) MarshalText() ([]byte, error) {
	if b != Primary && b != Secondary {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, b)
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// "left" and "right" are accepted as aliases.
func (b *Button) UnmarshalText(text []byte) error {
	switch string(text) {
	case "primary", "left":
		*b = Primary
	case "secondary", "right":
		*b = Secondary
	default:
		return fmt.Errorf("%w: unknown button %q", ErrInvalid, text)
	}
	return nil
}

// LoadScript reads an event script from the named file.
func LoadScript(fname string) (*Script, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	s, err := DecodeScript(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// DecodeScript reads an event script in TOML format.  The events are
// returned in time order; events with equal times keep their order from
// the file.
func DecodeScript(r io.Reader) (*Script, error) {
	s := &Script{}
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(s); err != nil {
		return nil, err
	}
	for i, ev := range s.Events {
		if ev.At < 0 {
			return nil, fmt.Errorf("%w: event %d at negative time %s", ErrInvalid, i+1, ev.At)
		}
	}
	slices.SortStableFunc(s.Events, func(a, b Event) int {
		switch {
		case a.At < b.At:
			return -1
		case a.At > b.At:
			return 1
		}
		return 0
	})
	return s, nil
}

// Due returns the events which are scheduled no later than t and removes
// them from the script.
func (s *Script) Due(t Duration) []Event {
	n := 0
	for n < len(s.Events) && s.Events[n].At <= t {
		n++
	}
	due := s.Events[:n:n]
	s.Events = s.Events[n:]
	return due
}
