// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "image/color"

// Paint is an immediate paint description in the layout engine's vocabulary,
// used when a draw call or style carries its paint directly instead of
// referencing the pre-resolved palette by [PaintID].
type Paint struct {

	// Color is the paint color.
	Color color.RGBA

	// Stroke strokes the geometry outline instead of filling it.
	Stroke bool

	// StrokeWidth is the stroke width when stroking.
	StrokeWidth float32

	// AntiAlias turns on anti-aliasing.
	AntiAlias bool
}

// PaintID is an index into the palette of host paints resolved before
// painting begins.
type PaintID int

// PaintOrID selects either an immediate [Paint] description or a [PaintID]
// index into the pre-resolved paint palette. If Paint is non-nil it takes
// precedence; otherwise ID is used.
type PaintOrID struct {
	Paint *Paint
	ID    PaintID
}

// NewPaint returns a [PaintOrID] carrying the given immediate paint.
func NewPaint(p Paint) PaintOrID {
	return PaintOrID{Paint: &p}
}

// NewPaintID returns a [PaintOrID] referencing the palette by index.
func NewPaintID(id PaintID) PaintOrID {
	return PaintOrID{ID: id}
}

// DecorationPaint is the paint parameters a [Paragraph] supplies for
// drawing decoration lines, paths, and bands.
type DecorationPaint struct {

	// Color is the decoration color.
	Color color.RGBA

	// StrokeWidth is the width of the decoration stroke.
	StrokeWidth float32

	// Dash is the optional dash pattern; nil for a solid stroke.
	Dash *Dash
}

// Dash is a dash pattern as on and off lengths.
type Dash struct {
	On, Off float32
}
