// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "github.com/go-text/typesetting/shaping"

// LineMetrics is the layout engine's metrics for one laid-out line.
// Vertical metrics follow the engine convention of positive distances
// from the baseline.
type LineMetrics struct {

	// StartIndex and EndIndex are the rune range of the line in the
	// source text, exclusive of EndIndex.
	StartIndex, EndIndex int

	// EndExcludingWhitespace is the end of the line excluding
	// trailing whitespace.
	EndExcludingWhitespace int

	// EndIncludingNewline is the end of the line including any
	// trailing newline.
	EndIncludingNewline int

	// HardBreak is whether the line ends with an explicit line break
	// rather than wrapping.
	HardBreak bool

	// Ascent is the rise from the baseline, after styling multipliers.
	Ascent float32

	// Descent is the drop from the baseline, after styling multipliers.
	Descent float32

	// UnscaledAscent is the ascent of the font, without styling multipliers.
	UnscaledAscent float32

	// Height is the total height of the line.
	Height float32

	// Width is the width of the line.
	Width float32

	// Left is the offset of the line from the left edge of the paragraph.
	Left float32

	// Baseline is the distance from the top of the paragraph to the
	// baseline of the line.
	Baseline float32

	// LineNumber is the zero-based index of the line.
	LineNumber int

	// Runs are the per-style-run metrics within the line,
	// keyed by the starting rune index of each run.
	Runs map[int]StyleMetrics
}

// StyleMetrics are the style and font metrics of one style run
// within a line.
type StyleMetrics struct {

	// Style is the engine text style of the run.
	Style *TextStyle

	// Metrics are the font metrics of the run, in fixed-point
	// font units: ascent, descent, and line gap.
	Metrics shaping.Bounds
}
