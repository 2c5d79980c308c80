// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paragraph adapts the external text layout engine's paragraph
// object ([layout.Paragraph]) to the host rendering and text style data
// model: it replays the engine's paint callbacks into a [render.Builder]
// display list, and converts the engine's style and metrics structs into
// their [rich] equivalents. It performs no layout, shaping, or
// rasterization itself.
package paragraph

import (
	"cogentcore.org/paragraph/layout"
	"cogentcore.org/paragraph/render"
	"cogentcore.org/paragraph/rich"
)

// Paragraph wraps a laid-out [layout.Paragraph] together with the palette
// of host paints that the engine's draw calls reference by index.
// It exposes the engine's geometry and metrics queries in host types,
// caching the converted line metrics until the next [Paragraph.Layout].
// A Paragraph is not safe for concurrent use: the caller must serialize
// access, per the usual single render thread.
type Paragraph struct {
	par    layout.Paragraph
	paints []render.Paint

	// lineMetrics is the converted metrics cache, valid if haveMetrics.
	// metricsStyles holds the converted styles that the run metrics
	// reference by pointer; it is preallocated to full capacity so the
	// pointers remain stable, and is always cleared together with
	// lineMetrics and rebuilt from scratch on the next access.
	lineMetrics   []rich.LineMetrics
	metricsStyles []rich.Style
	haveMetrics   bool
}

// New returns a new [Paragraph] wrapping the given engine paragraph and
// taking ownership of the given paint palette.
func New(par layout.Paragraph, paints []render.Paint) *Paragraph {
	return &Paragraph{par: par, paints: paints}
}

// MaxWidth returns the width provided to [Paragraph.Layout].
func (p *Paragraph) MaxWidth() float32 {
	return p.par.MaxWidth()
}

// Height returns the total height of the laid-out text.
func (p *Paragraph) Height() float32 {
	return p.par.Height()
}

// LongestLine returns the width of the widest line.
func (p *Paragraph) LongestLine() float32 {
	return p.par.LongestLine()
}

// MinIntrinsicWidth returns the width of the widest unbreakable unit.
func (p *Paragraph) MinIntrinsicWidth() float32 {
	return p.par.MinIntrinsicWidth()
}

// MaxIntrinsicWidth returns the width of the text without any wrapping.
func (p *Paragraph) MaxIntrinsicWidth() float32 {
	return p.par.MaxIntrinsicWidth()
}

// AlphabeticBaseline returns the distance from the top of the paragraph
// to the alphabetic baseline of the first line.
func (p *Paragraph) AlphabeticBaseline() float32 {
	return p.par.AlphabeticBaseline()
}

// IdeographicBaseline returns the distance from the top of the paragraph
// to the ideographic baseline of the first line.
func (p *Paragraph) IdeographicBaseline() float32 {
	return p.par.IdeographicBaseline()
}

// DidExceedMaxLines returns whether the text was truncated by a
// maximum line limit.
func (p *Paragraph) DidExceedMaxLines() bool {
	return p.par.DidExceedMaxLines()
}

// Layout lays the text out for the given width, invalidating the
// line metrics cache and its style store together.
func (p *Paragraph) Layout(width float32) {
	p.lineMetrics = nil
	p.metricsStyles = nil
	p.haveMetrics = false
	p.par.Layout(width)
}

// Paint replays the engine's draw commands for the laid-out text into the
// given display list builder, with the paragraph origin at the given
// position. Draw calls that reference the paint palette are resolved
// against the palette given to [New].
func (p *Paragraph) Paint(b *render.Builder, x, y float32) {
	pt := &painter{builder: b, paints: p.paints}
	p.par.Paint(pt, x, y)
}

// LineMetrics returns the converted per-line metrics for the current
// layout. The metrics are computed lazily on first access after a
// [Paragraph.Layout] and cached until the next one. The returned slice
// and the styles referenced by its run metrics are owned by the
// Paragraph and are only valid until the next Layout.
func (p *Paragraph) LineMetrics() []rich.LineMetrics {
	if p.haveMetrics {
		return p.lineMetrics
	}
	lms := p.par.LineMetrics()

	// run metrics hold *rich.Style pointers into metricsStyles, so the
	// store must never reallocate: preallocate to the full run count.
	nruns := 0
	for li := range lms {
		nruns += len(lms[li].Runs)
	}
	p.metricsStyles = make([]rich.Style, 0, nruns)
	p.lineMetrics = make([]rich.LineMetrics, 0, len(lms))

	for li := range lms {
		lm := &lms[li]
		hm := rich.LineMetrics{
			StartIndex:             lm.StartIndex,
			EndIndex:               lm.EndIndex,
			EndExcludingWhitespace: lm.EndExcludingWhitespace,
			EndIncludingNewline:    lm.EndIncludingNewline,
			HardBreak:              lm.HardBreak,
			Ascent:                 lm.Ascent,
			Descent:                lm.Descent,
			UnscaledAscent:         lm.UnscaledAscent,
			Height:                 lm.Height,
			Width:                  lm.Width,
			Left:                   lm.Left,
			Baseline:               lm.Baseline,
			LineNumber:             lm.LineNumber,
			Runs:                   make(map[int]rich.RunMetrics, len(lm.Runs)),
		}
		for start, sm := range lm.Runs {
			p.metricsStyles = append(p.metricsStyles, p.styleToRich(sm.Style))
			hm.Runs[start] = rich.RunMetrics{
				Style:   &p.metricsStyles[len(p.metricsStyles)-1],
				Metrics: fontMetrics(sm.Metrics),
			}
		}
		p.lineMetrics = append(p.lineMetrics, hm)
	}
	p.haveMetrics = true
	return p.lineMetrics
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

// TextBox is a host bounding rectangle for a range of text,
// with the direction the text runs in within it.
type TextBox struct {
	Bounds    render.Box2
	Direction rich.Directions
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

// RectsForRange returns the host bounding boxes for the given range of
// runes in the source text, with the given height and width styles.
func (p *Paragraph) RectsForRange(start, end int, height RectHeightStyle, width RectWidthStyle) []TextBox {
	ebs := p.par.RectsForRange(start, end, layout.RectHeightStyle(height), layout.RectWidthStyle(width))
	return textBoxes(ebs)
}

// RectsForPlaceholders returns the host bounding boxes for all inline
// placeholders in the text.
func (p *Paragraph) RectsForPlaceholders() []TextBox {
	return textBoxes(p.par.RectsForPlaceholders())
}

// GlyphPositionAt returns the rune position closest to the given
// rendered location.
func (p *Paragraph) GlyphPositionAt(x, y float32) PositionWithAffinity {
	ep := p.par.GlyphPositionAtPoint(x, y)
	return PositionWithAffinity{Position: ep.Position, Affinity: Affinity(ep.Affinity)}
}

// WordBoundary returns the range of the word containing the given
// rune offset.
func (p *Paragraph) WordBoundary(offset int) Range {
	er := p.par.WordBoundary(offset)
	return Range{Start: er.Start, End: er.End}
}
