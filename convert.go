// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paragraph

import (
	"slices"

	"cogentcore.org/paragraph/layout"
	"cogentcore.org/paragraph/render"
	"cogentcore.org/paragraph/rich"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/language"
)

// fontWeight converts an engine font weight (ranging from 100-900) to a
// host [rich.Weights] ordinal (ranging from 0-8), clamping out-of-range
// values.
func fontWeight(w font.Weight) rich.Weights {
	rw := (int(w) - 100) / 100
	return rich.Weights(min(max(rw, int(rich.Thin)), int(rich.Black)))
}

// fontSlant converts an engine font slant to the two-valued host
// [rich.Slants]: anything non-upright is italic.
func fontSlant(s font.Style) rich.Slants {
	if s == font.StyleNormal {
		return rich.SlantNormal
	}
	return rich.Italic
}

// styleToRich converts the layout engine's per-run text style into the
// host [rich.Style], field by field. Foreground and background paints
// are resolved against the paint palette when referenced by ID.
func (p *Paragraph) styleToRich(ts *layout.TextStyle) rich.Style {
	s := rich.Style{}

	s.Color = ts.Color
	s.Decoration = rich.Decorations(ts.Decoration)
	s.DecorationColor = ts.DecorationColor
	s.DecorationStyle = rich.DecorationStyles(ts.DecorationStyle)
	s.DecorationThickness = ts.DecorationThickness
	s.Weight = fontWeight(ts.Aspect.Weight)
	s.Slant = fontSlant(ts.Aspect.Style)
	s.Baseline = rich.Baselines(ts.Baseline)
	s.Families = slices.Clone(ts.FontFamilies)
	s.Size = ts.FontSize
	s.LetterSpacing = ts.LetterSpacing
	s.WordSpacing = ts.WordSpacing
	s.LineHeight = ts.Height
	s.Locale = language.Make(string(ts.Language))

	if ts.Foreground != nil {
		if fg, ok := resolvePaint(*ts.Foreground, p.paints); ok {
			s.Foreground = &fg
		}
	}
	if ts.Background != nil {
		if bg, ok := resolvePaint(*ts.Background, p.paints); ok {
			s.Background = &bg
		}
	}

	for _, sh := range ts.Shadows {
		s.Shadows = append(s.Shadows, rich.Shadow{
			Color:     sh.Color,
			Offset:    render.Vec2(sh.OffsetX, sh.OffsetY),
			BlurSigma: sh.BlurSigma,
		})
	}
	return s
}

// fontMetrics converts the engine's fixed-point font metrics into
// host float values.
func fontMetrics(b shaping.Bounds) rich.FontMetrics {
	return rich.FontMetrics{
		Ascent:  render.FromFixed(b.Ascent),
		Descent: render.FromFixed(b.Descent),
		Leading: render.FromFixed(b.Gap),
	}
}

// paintToRender converts an engine immediate paint description into
// a host paint.
func paintToRender(ep *layout.Paint) render.Paint {
	p := render.Paint{Color: ep.Color, AntiAlias: ep.AntiAlias}
	if ep.Stroke {
		p.Style = render.Stroke
		p.StrokeWidth = ep.StrokeWidth
	}
	return p
}

// toBox converts an engine rectangle into a host bounding box.
func toBox(r layout.Rect) render.Box2 {
	return render.B2(r.Left, r.Top, r.Right, r.Bottom)
}

// toDirection converts an engine text direction into the host direction.
func toDirection(d di.Direction) rich.Directions {
	if d.Progression() == di.TowardTopLeft {
		return rich.RTL
	}
	return rich.LTR
}

// textBoxes converts a slice of engine text boxes into host text boxes.
func textBoxes(ebs []layout.TextBox) []TextBox {
	boxes := make([]TextBox, 0, len(ebs))
	for _, eb := range ebs {
		boxes = append(boxes, TextBox{Bounds: toBox(eb.Rect), Direction: toDirection(eb.Direction)})
	}
	return boxes
}
