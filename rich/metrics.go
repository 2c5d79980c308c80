// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// FontMetrics are the font-level vertical metrics for one style run,
// converted from the layout engine's fixed-point values.
type FontMetrics struct {

	// Ascent is the distance from the baseline to the top of the font.
	Ascent float32

	// Descent is the distance from the baseline to the bottom of the font.
	Descent float32

	// Leading is the extra gap between lines specified by the font.
	Leading float32
}

// RunMetrics are the style and font metrics of one style run within a line.
// Style is held by pointer into the owning paragraph's style store, which
// remains valid until the next layout invalidates the metrics.
type RunMetrics struct {

	// Style is the host style of the run.
	Style *Style

	// Metrics are the font metrics of the run.
	Metrics FontMetrics
}

// LineMetrics are the host metrics for one laid-out line of text.
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
	Runs map[int]RunMetrics
}
