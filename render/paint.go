// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "image/color"

// DrawStyles specifies whether geometry is filled, stroked, or both.
type DrawStyles int32

const (
	// Fill fills the interior of the geometry.
	Fill DrawStyles = iota

	// Stroke strokes the outline of the geometry.
	Stroke

	// FillAndStroke fills the interior and strokes the outline.
	FillAndStroke
)

// Paint specifies how a render [Item] is inked: the draw style, color,
// stroke parameters, optional dash pattern, and optional blur.
// It is a plain value: copying it is cheap and there is no shared state.
type Paint struct {

	// Style is the draw style: fill, stroke, or both.
	Style DrawStyles

	// Color is the solid paint color.
	Color color.RGBA

	// StrokeWidth is the stroke width used when stroking.
	StrokeWidth float32

	// Dash is the optional dash pattern applied when stroking;
	// nil for a solid stroke.
	Dash *Dash

	// BlurSigma is the gaussian blur mask sigma; no blur if <= 0.
	BlurSigma float32

	// AntiAlias turns on anti-aliased rendering.
	AntiAlias bool
}

// NewPaint returns a new fill [Paint] with the given color
// and anti-aliasing on.
func NewPaint(clr color.RGBA) Paint {
	return Paint{Style: Fill, Color: clr, AntiAlias: true}
}

// Dash is a stroke dash pattern as on and off interval lengths,
// with a starting phase offset.
type Dash struct {
	On, Off float32
	Phase   float32
}
