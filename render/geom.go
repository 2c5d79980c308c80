// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/fixed"
)

// FromFixed converts the given [fixed.Int26_6] value to a float32 value.
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// ToFixed converts the given float32 value to a [fixed.Int26_6] value.
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Min returns the component-wise minimum of this vector and the other one.
func (v Vector2) Min(o Vector2) Vector2 {
	return Vector2{math32.Min(v.X, o.X), math32.Min(v.Y, o.Y)}
}

// Max returns the component-wise maximum of this vector and the other one.
func (v Vector2) Max(o Vector2) Vector2 {
	return Vector2{math32.Max(v.X, o.X), math32.Max(v.Y, o.Y)}
}

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min = Vec2(math32.Inf(1), math32.Inf(1))
	b.Max = Vec2(math32.Inf(-1), math32.Inf(-1))
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this bounding box as the delta from min to max.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Union returns the union of this box with the other one,
// the smallest box that contains both.
func (b Box2) Union(o Box2) Box2 {
	return Box2{b.Min.Min(o.Min), b.Max.Max(o.Max)}
}

// Intersect returns the intersection of this box with the other one.
// The result can be empty: check with [Box2.IsEmpty].
func (b Box2) Intersect(o Box2) Box2 {
	return Box2{b.Min.Max(o.Min), b.Max.Min(o.Max)}
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(off Vector2) Box2 {
	return Box2{b.Min.Add(off), b.Max.Add(off)}
}

// ContainsPoint returns whether this box contains the given point.
func (b Box2) ContainsPoint(pt Vector2) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X && pt.Y >= b.Min.Y && pt.Y <= b.Max.Y
}

// Matrix2 is a 3x2 affine transformation matrix for 2D points,
// in the order XX, YX, XY, YY, X0, Y0.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1, 0, 0}
}

// Translate2D returns a new [Matrix2] that translates by the given offsets.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{1, 0, 0, 1, x, y}
}

// Mul returns a*b, applying b and then a.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// Translate returns this matrix translated by the given offsets,
// applied before the existing transform.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// MulVector2AsPoint multiplies the given point by this matrix as a point,
// including translation.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{
		X: a.XX*v.X + a.XY*v.Y + a.X0,
		Y: a.YX*v.X + a.YY*v.Y + a.Y0,
	}
}

// MulBox2AsRect multiplies the corners of the given box by this matrix
// and returns the axis-aligned bounding box of the result.
func (a Matrix2) MulBox2AsRect(b Box2) Box2 {
	p0 := a.MulVector2AsPoint(b.Min)
	p1 := a.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y))
	p2 := a.MulVector2AsPoint(b.Max)
	p3 := a.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y))
	return Box2{p0.Min(p1).Min(p2).Min(p3), p0.Max(p1).Max(p2).Max(p3)}
}
