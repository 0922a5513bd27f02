package engine

import "github.com/go-gl/mathgl/mgl64"

// Vec is an immutable 2D point or velocity in arena units.
// Backed by mgl64.Vec2 so values compare with ==.
type Vec mgl64.Vec2

// V builds a vector from its components.
func V(x, y float64) Vec {
	return Vec{x, y}
}

// X returns the horizontal component.
func (v Vec) X() float64 {
	return v[0]
}

// Y returns the vertical component (positive is down).
func (v Vec) Y() float64 {
	return v[1]
}

// Plus returns the component-wise sum.
func (v Vec) Plus(o Vec) Vec {
	return Vec(mgl64.Vec2(v).Add(mgl64.Vec2(o)))
}

// Times scales both components by k.
func (v Vec) Times(k float64) Vec {
	return Vec(mgl64.Vec2(v).Mul(k))
}
