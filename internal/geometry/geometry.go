// Package geometry provides the axis-aligned rectangular box primitives
// shared by every other packing component: containers, cargo boxes,
// placements, and the derived dimensions a rotation produces.
package geometry

// Tolerance is the absolute numeric tolerance used throughout the engine
// for boundary, collision and support comparisons (§3, §4.1 of the spec).
const Tolerance = 0.01

// SupportTolerance is the looser tolerance used when matching the top-z of
// one placement against the bottom-z of another for the support check.
const SupportTolerance = 0.1

// Box is an axis-aligned rectangular volume: length (X), width (Y), height (Z).
type Box struct {
	Length float64
	Width  float64
	Height float64
}

// Volume returns L*W*H.
func (b Box) Volume() float64 {
	return b.Length * b.Width * b.Height
}

// EffectiveLength returns the footprint length under the given rotation.
// Rotation swaps length and width (a 90 degree yaw); height never changes.
func (b Box) EffectiveLength(rotated bool) float64 {
	if rotated {
		return b.Width
	}
	return b.Length
}

// EffectiveWidth returns the footprint width under the given rotation.
func (b Box) EffectiveWidth(rotated bool) float64 {
	if rotated {
		return b.Length
	}
	return b.Width
}

// Point is a 3D coordinate in centimeters.
type Point struct {
	X, Y, Z float64
}

// AABB is an axis-aligned bounding box anchored at (X,Y,Z) with the given
// dimensions, used by the feasibility oracle for collision and support
// testing.
type AABB struct {
	X, Y, Z               float64
	Length, Width, Height float64
}

// NewAABB builds the bounding box for a box of dims placed at anchor under rotation.
func NewAABB(anchor Point, dims Box, rotated bool) AABB {
	return AABB{
		X:      anchor.X,
		Y:      anchor.Y,
		Z:      anchor.Z,
		Length: dims.EffectiveLength(rotated),
		Width:  dims.EffectiveWidth(rotated),
		Height: dims.Height,
	}
}

func (a AABB) MaxX() float64 { return a.X + a.Length }
func (a AABB) MaxY() float64 { return a.Y + a.Width }
func (a AABB) MaxZ() float64 { return a.Z + a.Height }

// Center returns the geometric center of the box.
func (a AABB) Center() Point {
	return Point{
		X: a.X + a.Length/2,
		Y: a.Y + a.Width/2,
		Z: a.Z + a.Height/2,
	}
}

// OverlapsInterior reports whether two boxes overlap in their interiors,
// using Tolerance as slack so boxes that merely touch do not collide.
func OverlapsInterior(a, b AABB) bool {
	return a.X < b.MaxX()-Tolerance && a.MaxX() > b.X+Tolerance &&
		a.Y < b.MaxY()-Tolerance && a.MaxY() > b.Y+Tolerance &&
		a.Z < b.MaxZ()-Tolerance && a.MaxZ() > b.Z+Tolerance
}

// FootprintOverlapArea returns the overlap area of the two boxes' XY
// footprints, ignoring Z. Used by the support check.
func FootprintOverlapArea(a, b AABB) float64 {
	ox := min(a.MaxX(), b.MaxX()) - max(a.X, b.X)
	oy := min(a.MaxY(), b.MaxY()) - max(a.Y, b.Y)
	if ox <= 0 || oy <= 0 {
		return 0
	}
	return ox * oy
}

// ApproxEqual reports whether a and b differ by at most tol.
func ApproxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
