// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout defines the API surface of the external text layout engine
// that [cogentcore.org/paragraph] adapts: the opaque [Paragraph] object that
// performs shaping, line breaking and bidi resolution, the [Painter] callback
// interface it paints through, and the engine's style and metrics value types.
// Engine types speak the go-text/typesetting vocabulary: glyph runs are
// [shaping.Output], font styling is [font.Aspect], and glyph-level metrics
// are [fixed.Int26_6] values.
package layout

import (
	"image/color"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
)

// Paragraph is a laid-out paragraph of text in the layout engine.
// The actual shaping and layout algorithms live behind this interface;
// the adapter only queries geometry and replays paint callbacks.
// Implementations are not safe for concurrent use: the caller must
// serialize access, per the usual single render thread.
type Paragraph interface {

	// Layout lays the text out for the given width. Any previously
	// computed metrics are stale after this call.
	Layout(width float32)

	// Paint issues the draw commands for the laid-out text to the given
	// [Painter], with the paragraph origin at the given position.
	Paint(p Painter, x, y float32)

	// MaxWidth returns the width provided to [Paragraph.Layout].
	MaxWidth() float32

	// Height returns the total height of the laid-out text.
	Height() float32

	// LongestLine returns the width of the widest line.
	LongestLine() float32

	// MinIntrinsicWidth returns the minimum width beyond which no layout
	// improvement is possible (widest unbreakable unit).
	MinIntrinsicWidth() float32

	// MaxIntrinsicWidth returns the width of the text without any wrapping.
	MaxIntrinsicWidth() float32

	// AlphabeticBaseline returns the distance from the top of the paragraph
	// to the alphabetic baseline of the first line.
	AlphabeticBaseline() float32

	// IdeographicBaseline returns the distance from the top of the paragraph
	// to the ideographic baseline of the first line.
	IdeographicBaseline() float32

	// DidExceedMaxLines returns whether the text was truncated by a
	// maximum line limit.
	DidExceedMaxLines() bool

	// LineMetrics returns the per-line metrics for the current layout.
	LineMetrics() []LineMetrics

	// RectsForRange returns the bounding boxes for the given range of
	// runes in the source text, with the given height and width styles.
	RectsForRange(start, end int, height RectHeightStyle, width RectWidthStyle) []TextBox

	// RectsForPlaceholders returns the bounding boxes for all inline
	// placeholders in the text.
	RectsForPlaceholders() []TextBox

	// GlyphPositionAtPoint returns the rune position closest to the given
	// rendered location.
	GlyphPositionAtPoint(x, y float32) PositionWithAffinity

	// WordBoundary returns the range of the word containing the given
	// rune offset.
	WordBoundary(offset int) Range
}

// Painter is the callback interface through which a [Paragraph] issues its
// draw commands. Draw calls reference paints either immediately or by
// [PaintID] index into a palette resolved before painting; see [PaintOrID].
type Painter interface {

	// DrawGlyphs draws the given shaped glyph run at the given position.
	// A nil run is skipped.
	DrawGlyphs(run *shaping.Output, x, y float32, paint PaintOrID)

	// DrawShadow draws the given glyph run as a text shadow with the given
	// color, blurred by the given sigma (no blur if <= 0).
	// A nil run is skipped.
	DrawShadow(run *shaping.Output, x, y float32, clr color.RGBA, blurSigma float32)

	// DrawRect draws (strokes or fills per the paint) the given rectangle.
	DrawRect(rect Rect, paint PaintOrID)

	// DrawFilledRect fills the given rectangle with the given decoration
	// stroke parameters (used for solid decoration bands).
	DrawFilledRect(rect Rect, decor DecorationPaint)

	// DrawPath strokes the given path with the given decoration parameters
	// (used for wavy decorations).
	DrawPath(path Path, decor DecorationPaint)

	// DrawLine strokes a line between the given points with the given
	// decoration parameters.
	DrawLine(x0, y0, x1, y1 float32, decor DecorationPaint)

	// ClipRect intersects the current clip with the given rectangle.
	ClipRect(rect Rect)

	// Translate translates the current transform by the given offsets.
	Translate(dx, dy float32)

	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the transform and clip state pushed by [Painter.Save].
	Restore()
}

// Rect is an engine rectangle in left, top, right, bottom order.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RectHeightStyle specifies how the height of rectangles from
// [Paragraph.RectsForRange] is computed.
type RectHeightStyle int32

const (
	// HeightTight provides tight bounding boxes that fit the glyphs.
	HeightTight RectHeightStyle = iota

	// HeightMax makes the boxes as tall as the line, plus space above
	// and below per the line spacing.
	HeightMax

	// HeightIncludeLineSpacingMiddle splits the inter-line spacing
	// evenly between adjacent boxes.
	HeightIncludeLineSpacingMiddle

	// HeightIncludeLineSpacingTop adds the inter-line spacing to the top.
	HeightIncludeLineSpacingTop

	// HeightIncludeLineSpacingBottom adds the inter-line spacing to the bottom.
	HeightIncludeLineSpacingBottom

	// HeightStrut uses the strut height.
	HeightStrut
)

// RectWidthStyle specifies how the width of rectangles from
// [Paragraph.RectsForRange] is computed.
type RectWidthStyle int32

const (
	// WidthTight provides tight bounding boxes that fit the glyphs.
	WidthTight RectWidthStyle = iota

	// WidthMax extends the boxes to the widest rect over all lines.
	WidthMax
)

// TextBox is a bounding rectangle for a range of text,
// with the direction the text runs in within it.
type TextBox struct {
	Rect      Rect
	Direction di.Direction
}

// Affinity indicates which side of a rune boundary a position is
// associated with.
type Affinity int32

const (
	// Upstream associates the position with the preceding text.
	Upstream Affinity = iota

	// Downstream associates the position with the following text.
	Downstream
)

// PositionWithAffinity is a rune position in the source text with the
// side of the boundary it is associated with.
type PositionWithAffinity struct {
	Position int
	Affinity Affinity
}

// Range is a range of rune indexes in the source text, exclusive of End.
type Range struct {
	Start, End int
}
