// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/paragraph/layout"
	"github.com/go-text/typesetting/shaping"
)

// Glyphs is a glyph run render item: one shaped run of glyphs as produced
// by the layout engine, with the paint to ink it with. The run is held by
// reference: it is owned by the layout engine and must remain valid until
// the display list is rendered.
type Glyphs struct {

	// Run is the shaped glyph run.
	Run *shaping.Output

	// Position is the baseline origin to render the run at.
	Position Vector2

	// Paint is the paint for inking the glyphs.
	Paint Paint

	// Context is the accumulated transform and clip at recording time.
	Context Context
}

// interface assertion.
func (g *Glyphs) IsRenderItem() {}

// Rect is a rectangle render item.
type Rect struct {

	// Bounds is the rectangle geometry.
	Bounds Box2

	// Paint specifies fill vs stroke and the ink parameters.
	Paint Paint

	// Context is the accumulated transform and clip at recording time.
	Context Context
}

// interface assertion.
func (r *Rect) IsRenderItem() {}

// Line is a stroked line segment render item.
type Line struct {

	// Start and End are the line end points.
	Start, End Vector2

	// Paint is the stroke paint.
	Paint Paint

	// Context is the accumulated transform and clip at recording time.
	Context Context
}

// interface assertion.
func (l *Line) IsRenderItem() {}

// Path is a path render item, holding the layout engine's flat path
// encoding directly.
type Path struct {

	// Path is the path geometry.
	Path layout.Path

	// Paint is the paint for drawing the path.
	Paint Paint

	// Context is the accumulated transform and clip at recording time.
	Context Context
}

// interface assertion.
func (p *Path) IsRenderItem() {}
