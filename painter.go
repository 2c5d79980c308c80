// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paragraph

import (
	"image/color"
	"log/slog"

	"cogentcore.org/paragraph/layout"
	"cogentcore.org/paragraph/render"
	"github.com/go-text/typesetting/shaping"
)

// painter implements [layout.Painter] by forwarding each engine draw
// callback to the host display list [render.Builder], translating the
// paint parameters per call. Palette references are resolved against the
// paints given to [New]; an out-of-range index is a contract violation
// by the engine and the call is dropped after logging.
type painter struct {
	builder *render.Builder
	paints  []render.Paint
}

// resolvePaint resolves a paint-or-ID to a host paint: an immediate
// paint is converted, an ID is looked up in the palette. Reports false
// for an out-of-range ID.
func resolvePaint(p layout.PaintOrID, paints []render.Paint) (render.Paint, bool) {
	if p.Paint != nil {
		return paintToRender(p.Paint), true
	}
	if p.ID < 0 || int(p.ID) >= len(paints) {
		slog.Error("programmer error: paragraph: paint index out of range", "id", p.ID, "palette", len(paints))
		return render.Paint{}, false
	}
	return paints[p.ID], true
}

// decorationPaint converts the engine's decoration paint parameters into
// a host paint with the given draw style.
func decorationPaint(d layout.DecorationPaint, style render.DrawStyles) render.Paint {
	p := render.Paint{
		Style:       style,
		Color:       d.Color,
		StrokeWidth: d.StrokeWidth,
		AntiAlias:   true,
	}
	if d.Dash != nil {
		p.Dash = &render.Dash{On: d.Dash.On, Off: d.Dash.Off}
	}
	return p
}

func (pt *painter) DrawGlyphs(run *shaping.Output, x, y float32, paint layout.PaintOrID) {
	if run == nil {
		return
	}
	p, ok := resolvePaint(paint, pt.paints)
	if !ok {
		return
	}
	pt.builder.DrawGlyphs(run, render.Vec2(x, y), p)
}

func (pt *painter) DrawShadow(run *shaping.Output, x, y float32, clr color.RGBA, blurSigma float32) {
	if run == nil {
		return
	}
	p := render.Paint{Style: render.Fill, Color: clr}
	if blurSigma > 0 {
		p.BlurSigma = blurSigma
	}
	pt.builder.DrawGlyphs(run, render.Vec2(x, y), p)
}

func (pt *painter) DrawRect(rect layout.Rect, paint layout.PaintOrID) {
	p, ok := resolvePaint(paint, pt.paints)
	if !ok {
		return
	}
	pt.builder.DrawRect(toBox(rect), p)
}

func (pt *painter) DrawFilledRect(rect layout.Rect, decor layout.DecorationPaint) {
	pt.builder.DrawRect(toBox(rect), decorationPaint(decor, render.Fill))
}

func (pt *painter) DrawPath(path layout.Path, decor layout.DecorationPaint) {
	pt.builder.DrawPath(path, decorationPaint(decor, render.Stroke))
}

func (pt *painter) DrawLine(x0, y0, x1, y1 float32, decor layout.DecorationPaint) {
	pt.builder.DrawLine(render.Vec2(x0, y0), render.Vec2(x1, y1), decorationPaint(decor, render.Stroke))
}

func (pt *painter) ClipRect(rect layout.Rect) {
	pt.builder.ClipRect(toBox(rect))
}

func (pt *painter) Translate(dx, dy float32) {
	pt.builder.Translate(dx, dy)
}

func (pt *painter) Save() {
	pt.builder.Save()
}

func (pt *painter) Restore() {
	pt.builder.Restore()
}
