// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nfm

import (
	"fmt"
	"log"
	"strings"

	"github.com/emer/nfm/noisy"
)

// Level controls how much detail a Logger writes.
type Level int

const (
	// Off disables all logging.
	Off Level = iota
	// Normal logs one line per driver iteration: the current value and any
	// banner messages.
	Normal
	// Verbose additionally logs the current position, gradient and
	// position-update vectors.
	Verbose
)

// Logger wraps a standard *log.Logger with the noisy-value and vector
// formatting every driver needs. A nil *Logger is valid and logs nothing,
// so drivers can hold an optional *Logger field without a non-nil check at
// every call site.
type Logger struct {
	Level  Level
	output *log.Logger
}

// NewLogger builds a Logger at the given level, writing through std to a
// standard library logger (matching this module's existing convention of
// stdlib log.Printf/log.Println calls rather than a third-party structured
// logger).
func NewLogger(level Level, std *log.Logger) *Logger {
	return &Logger{Level: level, output: std}
}

func (l *Logger) active(min Level) bool {
	return l != nil && l.output != nil && l.Level >= min
}

// LogString writes msg unconditionally at Normal level or above.
func (l *Logger) LogString(msg string) {
	if !l.active(Normal) {
		return
	}
	l.output.Print(msg)
}

// LogValue writes a labeled noisy value; only visible at Verbose level.
func (l *Logger) LogValue(label string, v noisy.Value) {
	if !l.active(Verbose) {
		return
	}
	l.output.Printf("%s: %s", label, v.String())
}

// LogVector writes a labeled plain vector; only visible at Verbose level.
func (l *Logger) LogVector(label string, v []float64) {
	if !l.active(Verbose) {
		return
	}
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%g", x)
	}
	l.output.Printf("%s: [%s]", label, strings.Join(parts, " "))
}

// LogGradient writes a labeled gradient, including per-component errors
// when present; only visible at Verbose level.
func (l *Logger) LogGradient(label string, g noisy.Gradient) {
	if !l.active(Verbose) {
		return
	}
	parts := make([]string, g.Size())
	for i := 0; i < g.Size(); i++ {
		parts[i] = g.At(i).String()
	}
	l.output.Printf("%s: [%s]", label, strings.Join(parts, ", "))
}

// LogPair writes the current position and its value: position is only
// shown at Verbose level, but the value itself is shown at Normal level.
func (l *Logger) LogPair(label string, p noisy.IOPair) {
	if l.active(Verbose) {
		l.output.Printf("%s: x=%v f=%s", label, p.X, p.F.String())
		return
	}
	if l.active(Normal) {
		l.output.Printf("%s: f=%s", label, p.F.String())
	}
}
