// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"image/color"
	"testing"

	"cogentcore.org/paragraph/layout"
	"cogentcore.org/paragraph/render"
	"github.com/go-text/typesetting/shaping"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestFixedConversion(t *testing.T) {
	assert.Equal(t, float32(1), render.FromFixed(fixed.I(1)))
	assert.Equal(t, float32(-2.5), render.FromFixed(fixed.Int26_6(-160)))
	assert.Equal(t, fixed.I(3), render.ToFixed(3))
	assert.Equal(t, float32(0.25), render.FromFixed(render.ToFixed(0.25)))
}

func TestBox2(t *testing.T) {
	a := render.B2(0, 0, 10, 10)
	b := render.B2(5, 5, 20, 20)

	u := a.Union(b)
	assert.Equal(t, render.B2(0, 0, 20, 20), u)

	in := a.Intersect(b)
	assert.Equal(t, render.B2(5, 5, 10, 10), in)
	assert.False(t, in.IsEmpty())

	empty := a.Intersect(render.B2(30, 30, 40, 40))
	assert.True(t, empty.IsEmpty())

	assert.Equal(t, render.Vec2(10, 10), a.Size())
	assert.True(t, a.ContainsPoint(render.Vec2(5, 5)))
	assert.False(t, a.ContainsPoint(render.Vec2(11, 5)))

	tr := a.Translate(render.Vec2(2, 3))
	assert.Equal(t, render.B2(2, 3, 12, 13), tr)

	be := render.B2Empty()
	assert.True(t, be.IsEmpty())
	assert.Equal(t, a, be.Union(a))
}

func TestMatrix2(t *testing.T) {
	m := render.Identity2().Translate(3, 4)
	assert.Equal(t, render.Vec2(4, 6), m.MulVector2AsPoint(render.Vec2(1, 2)))

	m = m.Translate(1, 1)
	assert.Equal(t, render.Vec2(5, 7), m.MulVector2AsPoint(render.Vec2(1, 2)))

	bb := m.MulBox2AsRect(render.B2(0, 0, 2, 2))
	assert.Equal(t, render.B2(4, 5, 6, 7), bb)
}

func TestBuilderStack(t *testing.T) {
	b := render.NewBuilder(render.B2(0, 0, 100, 100))
	assert.Equal(t, render.Identity2(), b.Context().Transform)

	b.Save()
	b.Translate(10, 20)
	pt := b.Context().Transform.MulVector2AsPoint(render.Vec2(0, 0))
	assert.Equal(t, render.Vec2(10, 20), pt)

	b.ClipRect(render.B2(0, 0, 50, 50))
	assert.Equal(t, render.B2(10, 20, 60, 70), b.Context().Bounds)

	b.Restore()
	assert.Equal(t, render.Identity2(), b.Context().Transform)
	assert.Equal(t, render.B2(0, 0, 100, 100), b.Context().Bounds)

	assert.Len(t, b.Render, 2)
	_, ok := b.Render[0].(*render.ContextPush)
	assert.True(t, ok)
	_, ok = b.Render[1].(*render.ContextPop)
	assert.True(t, ok)

	// restoring past the base context is a no-op.
	b.Restore()
	assert.Len(t, b.Stack, 1)
}

func TestBuilderItems(t *testing.T) {
	b := render.NewBuilder(render.B2(0, 0, 100, 100))
	red := render.NewPaint(color.RGBA{R: 255, A: 255})

	run := &shaping.Output{Advance: fixed.I(42)}
	b.DrawGlyphs(run, render.Vec2(5, 10), red)

	b.Translate(10, 0)
	b.DrawRect(render.B2(0, 0, 10, 10), red)

	pth := layout.Path{}
	pth.MoveTo(0, 0)
	pth.LineTo(10, 0)
	b.DrawPath(pth, red)
	b.DrawLine(render.Vec2(0, 0), render.Vec2(10, 0), red)

	assert.Len(t, b.Render, 4)

	gl := b.Render[0].(*render.Glyphs)
	assert.Same(t, run, gl.Run)
	assert.Equal(t, render.Vec2(5, 10), gl.Position)
	assert.Equal(t, red, gl.Paint)
	// context is snapshotted at recording time, before the translate.
	assert.Equal(t, render.Identity2(), gl.Context.Transform)

	rc := b.Render[1].(*render.Rect)
	assert.Equal(t, render.Vec2(10, 0), rc.Context.Transform.MulVector2AsPoint(render.Vec2(0, 0)))

	pi := b.Render[2].(*render.Path)
	assert.Equal(t, pth, pi.Path)

	ln := b.Render[3].(*render.Line)
	assert.Equal(t, render.Vec2(10, 0), ln.End)
}

func TestRenderReset(t *testing.T) {
	r := render.Render{}
	r.Add(&render.ContextPop{})
	assert.Len(t, r, 1)
	r.Reset()
	assert.Len(t, r, 0)
}
