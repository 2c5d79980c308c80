// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

// Path is a flat encoding of the path geometry the layout engine produces
// for decorations (e.g., the sinusoid of a wavy underline). It is a
// collection of MoveTo, LineTo, QuadTo, and Close commands, each followed
// by the float32 coordinate data for it, with the command verb repeated at
// the end of the coordinate data to support bidirectional processing.
// The last two coordinate values are the end point position of the pen.
// QuadTo defines one control point (x,y) in between.
type Path []float32

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	QuadTo float32 = 2
	Close  float32 = 3
)

var cmdLens = [4]int{4, 4, 6, 4}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// Empty returns true if p is an empty path or consists only of a MoveTo.
func (p Path) Empty() bool {
	return len(p) <= CmdLen(MoveTo)
}

// MoveTo moves the pen to the given position without drawing.
func (p *Path) MoveTo(x, y float32) {
	*p = append(*p, MoveTo, x, y, MoveTo)
}

// LineTo adds a line segment from the pen to the given position.
func (p *Path) LineTo(x, y float32) {
	*p = append(*p, LineTo, x, y, LineTo)
}

// QuadTo adds a quadratic bezier from the pen to the given end position,
// with the given control point.
func (p *Path) QuadTo(cx, cy, x, y float32) {
	*p = append(*p, QuadTo, cx, cy, x, y, QuadTo)
}

// Close closes the current subpath back to its starting position.
func (p *Path) Close(x, y float32) {
	*p = append(*p, Close, x, y, Close)
}

// Reset clears the path but retains the same memory.
func (p *Path) Reset() {
	*p = (*p)[:0]
}
