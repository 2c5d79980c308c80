// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the host rendering engine's display list:
// an ordered collection of render [Item]s recorded through a [Builder],
// for subsequent rasterization or export by a renderer backend.
package render

// Render represents a collection of render [Item]s to be rendered.
type Render []Item

// Item is a union interface for render items:
// [Glyphs], [Rect], [Line], [Path], [ContextPush], and [ContextPop].
type Item interface {
	IsRenderItem()
}

// Add adds item(s) to render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Context is the accumulated transform and clip state that each render
// [Item] is recorded under.
type Context struct {

	// Transform is the accumulated transform matrix.
	Transform Matrix2

	// Bounds is the accumulated clip region, in transformed coordinates.
	Bounds Box2
}

// NewContext returns a new [Context] with the given bounds,
// initialized from the given parent context if non-nil.
func NewContext(parent *Context, bounds Box2) Context {
	if parent == nil {
		return Context{Transform: Identity2(), Bounds: bounds}
	}
	ctx := *parent
	ctx.Bounds = ctx.Bounds.Intersect(bounds)
	return ctx
}

// ContextPush is a [Context] push render item, recorded when the builder
// state is saved, for renderers that track group structure.
type ContextPush struct {
	Context Context
}

// interface assertion.
func (p *ContextPush) IsRenderItem() {}

// ContextPop is a [Context] pop render item, recorded when the builder
// state is restored.
type ContextPop struct {
}

// interface assertion.
func (p *ContextPop) IsRenderItem() {}
