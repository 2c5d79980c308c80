// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"cogentcore.org/paragraph/layout"
	"github.com/go-text/typesetting/shaping"
)

// Builder records draw commands into a [Render] display list, maintaining
// a stack of [Context] transform and clip state. There is always an initial
// base-level Context element for the overall rendering context.
// A Builder is not safe for concurrent use.
type Builder struct {

	// Render is the display list being built.
	Render Render

	// Stack provides the stacking context as a stack of [Context]s.
	Stack []Context
}

// NewBuilder returns a new [Builder] with the given overall bounds
// as the base clip region.
func NewBuilder(bounds Box2) *Builder {
	b := &Builder{}
	b.Stack = []Context{NewContext(nil, bounds)}
	return b
}

// Context returns the currently active [Context] state (top of Stack).
func (b *Builder) Context() *Context {
	return &b.Stack[len(b.Stack)-1]
}

// Save pushes a copy of the current [Context] onto the stack, so that
// subsequent [Builder.Translate] and [Builder.ClipRect] calls can be
// undone with [Builder.Restore]. This adds a [ContextPush] to the Render
// state as well, so renderers that track grouping will track this.
func (b *Builder) Save() {
	ctx := *b.Context()
	b.Stack = append(b.Stack, ctx)
	b.Render.Add(&ContextPush{Context: ctx})
}

// Restore pops the current [Context] off of the stack.
func (b *Builder) Restore() {
	n := len(b.Stack)
	if n == 1 {
		slog.Error("programmer error: render.Builder.Restore: stack is at base starting point")
		return
	}
	b.Stack = b.Stack[:n-1]
	b.Render.Add(&ContextPop{})
}

// Translate translates the current transform by the given offsets.
func (b *Builder) Translate(dx, dy float32) {
	ctx := b.Context()
	ctx.Transform = ctx.Transform.Translate(dx, dy)
}

// ClipRect intersects the current clip region with the given rectangle,
// transformed by the current transform.
func (b *Builder) ClipRect(bounds Box2) {
	ctx := b.Context()
	ctx.Bounds = ctx.Bounds.Intersect(ctx.Transform.MulBox2AsRect(bounds))
}

// DrawGlyphs records a [Glyphs] item for the given shaped glyph run
// at the given baseline position.
func (b *Builder) DrawGlyphs(run *shaping.Output, pos Vector2, paint Paint) {
	b.Render.Add(&Glyphs{Run: run, Position: pos, Paint: paint, Context: *b.Context()})
}

// DrawRect records a [Rect] item.
func (b *Builder) DrawRect(bounds Box2, paint Paint) {
	b.Render.Add(&Rect{Bounds: bounds, Paint: paint, Context: *b.Context()})
}

// DrawLine records a [Line] item between the given points.
func (b *Builder) DrawLine(start, end Vector2, paint Paint) {
	b.Render.Add(&Line{Start: start, End: end, Paint: paint, Context: *b.Context()})
}

// DrawPath records a [Path] item for the given path geometry.
func (b *Builder) DrawPath(path layout.Path, paint Paint) {
	b.Render.Add(&Path{Path: path, Paint: paint, Context: *b.Context()})
}
