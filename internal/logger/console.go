// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"os"
)

// Ansi terminal color codes.
const (
	csi     = "\x1B["
	white   = "37m"
	byellow = "33;1m"
	bred    = "31;1m"
)

var colorMap = map[int]string{
	DEBUG: white,
	INFO:  white,
	WARN:  byellow,
	ERROR: bred,
	FATAL: bred,
}

// Console is a writer that logs to standard error, optionally in color.
type Console struct {
	writer *os.File
	color  bool
}

// NewConsole creates a Console writer. If color is true, messages are
// wrapped in Ansi escapes according to their level.
func NewConsole(color bool) *Console {

	return &Console{os.Stderr, color}
}

// Write writes the event to the console.
func (w *Console) Write(event *Event) {

	if w.color {
		w.writer.Write([]byte(csi))
		w.writer.Write([]byte(colorMap[event.Level]))
	}
	w.writer.Write([]byte(event.FMsg))
	if w.color {
		w.writer.Write([]byte(csi))
		w.writer.Write([]byte(white))
	}
}

func (w *Console) Close() {}

func (w *Console) Sync() {}
