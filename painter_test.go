// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paragraph_test

import (
	"image/color"
	"testing"

	"cogentcore.org/paragraph"
	"cogentcore.org/paragraph/layout"
	"cogentcore.org/paragraph/render"
	"github.com/go-text/typesetting/shaping"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

// paintParagraph returns the render list produced by painting a
// paragraph scripted with the given paint function.
func paintParagraph(paints []render.Paint, f func(p layout.Painter)) render.Render {
	tp := &testParagraph{paint: func(p layout.Painter, x, y float32) { f(p) }}
	par := paragraph.New(tp, paints)
	b := render.NewBuilder(render.B2(0, 0, 1000, 1000))
	par.Paint(b, 0, 0)
	return b.Render
}

func TestPaintGlyphs(t *testing.T) {
	paints := []render.Paint{render.NewPaint(color.RGBA{R: 255, A: 255})}
	run := &shaping.Output{Advance: fixed.I(50)}

	r := paintParagraph(paints, func(p layout.Painter) {
		p.DrawGlyphs(run, 10, 20, layout.NewPaintID(0))
		p.DrawGlyphs(nil, 0, 0, layout.NewPaintID(0))  // nil run skipped
		p.DrawGlyphs(run, 0, 0, layout.NewPaintID(99)) // bad index skipped
	})

	assert.Len(t, r, 1)
	gl := r[0].(*render.Glyphs)
	assert.Same(t, run, gl.Run)
	assert.Equal(t, render.Vec2(10, 20), gl.Position)
	assert.Equal(t, paints[0], gl.Paint)
}

func TestPaintShadow(t *testing.T) {
	run := &shaping.Output{Advance: fixed.I(50)}

	r := paintParagraph(nil, func(p layout.Painter) {
		p.DrawShadow(run, 1, 2, color.RGBA{R: 128, A: 255}, 3)
		p.DrawShadow(run, 1, 2, color.RGBA{R: 128, A: 255}, 0)
		p.DrawShadow(nil, 0, 0, color.RGBA{}, 1)
	})

	assert.Len(t, r, 2)

	blurred := r[0].(*render.Glyphs)
	assert.Equal(t, color.RGBA{R: 128, A: 255}, blurred.Paint.Color)
	assert.Equal(t, float32(3), blurred.Paint.BlurSigma)
	assert.Equal(t, render.Fill, blurred.Paint.Style)

	sharp := r[1].(*render.Glyphs)
	assert.Equal(t, float32(0), sharp.Paint.BlurSigma)
}

func TestPaintRects(t *testing.T) {
	paints := []render.Paint{{Style: render.Stroke, Color: color.RGBA{G: 255, A: 255}, StrokeWidth: 2}}

	r := paintParagraph(paints, func(p layout.Painter) {
		p.DrawRect(layout.Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}, layout.NewPaintID(0))
		p.DrawRect(layout.Rect{}, layout.NewPaintID(-1)) // bad index skipped
		p.DrawFilledRect(layout.Rect{Left: 0, Top: 10, Right: 20, Bottom: 12},
			layout.DecorationPaint{Color: color.RGBA{B: 255, A: 255}, StrokeWidth: 2})
	})

	assert.Len(t, r, 2)

	rc := r[0].(*render.Rect)
	assert.Equal(t, render.B2(1, 2, 3, 4), rc.Bounds)
	assert.Equal(t, paints[0], rc.Paint)

	fr := r[1].(*render.Rect)
	assert.Equal(t, render.B2(0, 10, 20, 12), fr.Bounds)
	// filled decoration rects fill instead of stroking.
	assert.Equal(t, render.Fill, fr.Paint.Style)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, fr.Paint.Color)
	assert.True(t, fr.Paint.AntiAlias)
}

func TestPaintLineAndPath(t *testing.T) {
	pth := layout.Path{}
	pth.MoveTo(0, 0)
	pth.QuadTo(5, -2, 10, 0)

	r := paintParagraph(nil, func(p layout.Painter) {
		p.DrawLine(0, 5, 100, 5, layout.DecorationPaint{
			Color:       color.RGBA{A: 255},
			StrokeWidth: 1,
			Dash:        &layout.Dash{On: 2, Off: 3},
		})
		p.DrawPath(pth, layout.DecorationPaint{Color: color.RGBA{A: 255}, StrokeWidth: 1})
	})

	assert.Len(t, r, 2)

	ln := r[0].(*render.Line)
	assert.Equal(t, render.Vec2(0, 5), ln.Start)
	assert.Equal(t, render.Vec2(100, 5), ln.End)
	assert.Equal(t, render.Stroke, ln.Paint.Style)
	assert.Equal(t, float32(1), ln.Paint.StrokeWidth)
	assert.NotNil(t, ln.Paint.Dash)
	assert.Equal(t, render.Dash{On: 2, Off: 3}, *ln.Paint.Dash)

	pi := r[1].(*render.Path)
	assert.Equal(t, pth, pi.Path)
	assert.Equal(t, render.Stroke, pi.Paint.Style)
	assert.Nil(t, pi.Paint.Dash)
}

func TestPaintState(t *testing.T) {
	r := paintParagraph(nil, func(p layout.Painter) {
		p.Save()
		p.Translate(10, 20)
		p.ClipRect(layout.Rect{Left: 0, Top: 0, Right: 50, Bottom: 50})
		p.DrawLine(0, 0, 1, 1, layout.DecorationPaint{StrokeWidth: 1})
		p.Restore()
		p.DrawLine(0, 0, 1, 1, layout.DecorationPaint{StrokeWidth: 1})
	})

	assert.Len(t, r, 4)
	_, ok := r[0].(*render.ContextPush)
	assert.True(t, ok)

	inner := r[1].(*render.Line)
	assert.Equal(t, render.Vec2(10, 20), inner.Context.Transform.MulVector2AsPoint(render.Vec2(0, 0)))
	assert.Equal(t, render.B2(10, 20, 60, 70), inner.Context.Bounds)

	_, ok = r[2].(*render.ContextPop)
	assert.True(t, ok)

	outer := r[3].(*render.Line)
	assert.Equal(t, render.Identity2(), outer.Context.Transform)
	assert.Equal(t, render.B2(0, 0, 1000, 1000), outer.Context.Bounds)
}
