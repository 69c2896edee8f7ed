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
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher reports changes to a single file.
//
// The directory is watched instead of the file itself, since many editors
// save by renaming a new file over the old one.
type watcher struct {
	Changed <-chan string
	Errors  <-chan error

	w    *fsnotify.Watcher
	done chan struct{}
}

func newWatcher(fname string) (*watcher, error) {
	fname = filepath.Clean(fname)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(fname)); err != nil {
		w.Close()
		return nil, err
	}

	changed := make(chan string, 1)
	res := &watcher{
		Changed: changed,
		Errors:  w.Errors,
		w:       w,
		done:    make(chan struct{}),
	}
	go func() {
		defer close(res.done)
		for event := range w.Events {
			if filepath.Clean(event.Name) != fname {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// coalesce bursts of events into one reload
			select {
			case changed <- fname:
			default:
			}
		}
	}()
	return res, nil
}

// Close stops watching.
func (w *watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}
