// Package vec provides integer screen-space geometry.
package vec

// Vec2 is a position or size in character cells. It is a value type and is
// copied freely.
type Vec2 struct {
	X int
	Y int
}

// New builds a Vec2, clamping negative components to zero.
func New(x, y int) Vec2 {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o, clamped at zero.
func (v Vec2) Sub(o Vec2) Vec2 {
	return New(v.X-o.X, v.Y-o.Y)
}

// Min returns the component-wise minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	r := v
	if o.X < r.X {
		r.X = o.X
	}
	if o.Y < r.Y {
		r.Y = o.Y
	}
	return r
}

// Max returns the component-wise maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	r := v
	if o.X > r.X {
		r.X = o.X
	}
	if o.Y > r.Y {
		r.Y = o.Y
	}
	return r
}

// Empty reports whether v describes a zero-area region.
func (v Vec2) Empty() bool {
	return v.X <= 0 || v.Y <= 0
}

// Fits reports whether a region of size v fits inside a region of size o.
func (v Vec2) Fits(o Vec2) bool {
	return v.X <= o.X && v.Y <= o.Y
}
