// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	resetLine = "\r\x1b[2K"
	wrapOff   = "\x1b[?7l"
	wrapOn    = "\x1b[?7h"
)

// StatusReporter shows what is being rendered on a single rewritten
// line of stderr. If stderr is not a terminal, it only prints
// messages.
type StatusReporter struct {
	w    io.Writer
	tty  bool
	line string
}

func NewStatusReporter() *StatusReporter {
	return &StatusReporter{
		w:   os.Stderr,
		tty: os.Getenv("TERM") != "dumb" && term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Progress replaces the status line with msg.
func (sr *StatusReporter) Progress(msg string) {
	if !sr.tty {
		return
	}
	sr.line = msg
	fmt.Fprintf(sr.w, "%s%s%s%s", resetLine, wrapOff, msg, wrapOn)
}

// Message prints msg above the status line.
func (sr *StatusReporter) Message(msg string) {
	if !sr.tty {
		fmt.Fprintln(sr.w, msg)
		return
	}
	fmt.Fprintf(sr.w, "%s%s\n", resetLine, msg)
	if sr.line != "" {
		fmt.Fprintf(sr.w, "%s%s%s", wrapOff, sr.line, wrapOn)
	}
}

// Stop clears the status line.
func (sr *StatusReporter) Stop() {
	if sr.tty && sr.line != "" {
		fmt.Fprint(sr.w, resetLine)
		sr.line = ""
	}
}
