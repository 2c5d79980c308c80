// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rich provides the host rendering engine's text style and
// line metrics data model, which the adapter converts the layout
// engine's equivalents into.
package rich

import (
	"image/color"

	"cogentcore.org/paragraph/render"
	"golang.org/x/text/language"
)

// Style is the host text style for a span of text: the color, decorations,
// font parameters, spacing, locale, shadows, and optional paint overrides.
// It is produced field-by-field from the layout engine's per-run style.
type Style struct {

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

	// Weight is the font weight on the ordinal [Weights] scale.
	Weight Weights

	// Slant is the font slant.
	Slant Slants

	// Baseline is the baseline to align the text to.
	Baseline Baselines

	// Families is the ordered list of font families to use.
	Families []string

	// Size is the font size in dots.
	Size float32

	// LetterSpacing is the additional spacing between letters, in dots.
	LetterSpacing float32

	// WordSpacing is the additional spacing between words, in dots.
	WordSpacing float32

	// LineHeight is the line height as a multiple of the font size.
	LineHeight float32

	// Locale is the BCP 47 language tag of the text.
	Locale language.Tag

	// Foreground optionally overrides the paint used to ink the glyphs.
	Foreground *render.Paint

	// Background optionally specifies the paint for the background
	// region behind the glyphs.
	Background *render.Paint

	// Shadows are the shadows to draw beneath the text.
	Shadows []Shadow
}

// NewStyle returns a new [Style] with default values.
func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

func (s *Style) Defaults() {
	s.Color = color.RGBA{A: 255}
	s.Weight = Normal
	s.DecorationThickness = 1
	s.Size = 16
	s.LineHeight = 1
}

// Weights are the standard font weights, on an ordinal scale corresponding
// to the 100-900 weight scale divided by 100.
type Weights int32

const (
	// Thin is the thinnest weight (100).
	Thin Weights = iota

	// ExtraLight is (200).
	ExtraLight

	// Light is (300).
	Light

	// Normal is the normal weight (400).
	Normal

	// Medium is (500).
	Medium

	// Semibold is (600).
	Semibold

	// Bold is the standard bold weight (700).
	Bold

	// ExtraBold is (800).
	ExtraBold

	// Black is the heaviest weight (900).
	Black
)

var weightNames = []string{"Thin", "ExtraLight", "Light", "Normal", "Medium", "Semibold", "Bold", "ExtraBold", "Black"}

func (w Weights) String() string {
	if w < Thin || w > Black {
		return "Normal"
	}
	return weightNames[w]
}

// ToFloat32 returns the weight on the standard 100-900 scale.
func (w Weights) ToFloat32() float32 {
	return float32(w+1) * 100
}

// Slants are the font slant options: normal or italic.
type Slants int32

const (
	// SlantNormal is the default upright slant.
	SlantNormal Slants = iota

	// Italic is italic or oblique.
	Italic
)

func (s Slants) String() string {
	if s == Italic {
		return "Italic"
	}
	return "Normal"
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

// Directions are the in-line text rendering directions.
type Directions int32

const (
	// LTR is left-to-right text.
	LTR Directions = iota

	// RTL is right-to-left text.
	RTL
)

// Shadow is one text shadow in a [Style].
type Shadow struct {

	// Color is the shadow color.
	Color color.RGBA

	// Offset is the offset of the shadow from the text.
	Offset render.Vector2

	// BlurSigma is the gaussian blur sigma; no blur if <= 0.
	BlurSigma float32
}
