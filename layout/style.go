// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"image/color"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
)

// TextStyle is the layout engine's per-run text style, as reported back
// through [LineMetrics]. It is the source side of the style conversion
// into the host [cogentcore.org/paragraph/rich.Style].
type TextStyle struct {

	// Color is the text color.
	Color color.RGBA

	// Decoration is the bit flags for the decoration lines to draw.
	Decoration Decorations

	// DecorationColor is the color of the decoration lines.
	DecorationColor color.RGBA

	// DecorationStyle is how the decoration lines are drawn.
	DecorationStyle DecorationStyles

	// DecorationThickness is a multiplier on the font-specified
	// decoration thickness.
	DecorationThickness float32

	// Aspect is the font styling: weight on the 100-900 scale,
	// slant, and stretch.
	Aspect font.Aspect

	// Baseline is the baseline to align the text to.
	Baseline Baselines

	// FontFamilies is the ordered list of font families to use.
	FontFamilies []string

	// FontSize is the font size in dots.
	FontSize float32

	// LetterSpacing is the additional spacing between letters, in dots.
	LetterSpacing float32

	// WordSpacing is the additional spacing between words, in dots.
	WordSpacing float32

	// Height is the line height as a multiple of the font size.
	Height float32

	// Language is the BCP 47 language of the text.
	Language language.Language

	// Foreground optionally overrides the paint used to draw the glyphs.
	Foreground *PaintOrID

	// Background optionally specifies the paint used to draw the
	// background region behind the glyphs.
	Background *PaintOrID

	// Shadows are the shadows to draw beneath the text.
	Shadows []Shadow
}

// Decorations are the bit flags for the text decoration lines to draw.
type Decorations uint32

const (
	// Underline indicates to draw a line below the text.
	Underline Decorations = 1 << iota

	// Overline indicates to draw a line above the text.
	Overline

	// LineThrough indicates to draw a line through the middle of the text.
	LineThrough
)

// HasFlag returns whether these decorations have the given flag set.
func (d Decorations) HasFlag(f Decorations) bool {
	return d&f != 0
}

// SetFlag sets the given flags on or off.
func (d *Decorations) SetFlag(on bool, f Decorations) {
	if on {
		*d |= f
	} else {
		*d &^= f
	}
}

// DecorationStyles are the ways a decoration line can be drawn.
type DecorationStyles int32

const (
	// DecorationSolid is a single solid line.
	DecorationSolid DecorationStyles = iota

	// DecorationDouble is a double line.
	DecorationDouble

	// DecorationDotted is a dotted line.
	DecorationDotted

	// DecorationDashed is a dashed line.
	DecorationDashed

	// DecorationWavy is a sinusoidal line.
	DecorationWavy
)

// Baselines are the text baselines that text can be aligned to.
type Baselines int32

const (
	// Alphabetic is the standard baseline for alphabetic scripts.
	Alphabetic Baselines = iota

	// Ideographic is the baseline for ideographic scripts.
	Ideographic
)

// Shadow is one text shadow in a [TextStyle].
type Shadow struct {

	// Color is the shadow color.
	Color color.RGBA

	// OffsetX and OffsetY are the offset of the shadow from the text.
	OffsetX, OffsetY float32

	// BlurSigma is the gaussian blur sigma; no blur if <= 0.
	BlurSigma float32
}
