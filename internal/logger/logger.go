/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the CLI's diagnostic output. It writes to stderr
// so that command output on stdout stays machine readable.
package logger

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	std     atomic.Pointer[log.Logger]
	verbose atomic.Bool
)

func init() {
	SetOutput(os.Stderr)
}

// SetOutput redirects all logging. Use io.Discard to silence it.
func SetOutput(w io.Writer) {
	std.Store(log.New(w, "", 0))
}

// SetVerbose enables Debug messages.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// Warn logs a warning.
func Warn(format string, args ...any) {
	std.Load().Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	std.Load().Printf(format, args...)
}

// Debug logs a message only when verbose logging is enabled.
func Debug(format string, args ...any) {
	if verbose.Load() {
		std.Load().Printf("debug: "+format, args...)
	}
}
