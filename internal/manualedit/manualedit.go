// Package manualedit implements the post-commit mutation operations of
// spec §4.8: translate, rotate-in-place, and snap. Each operation takes
// exclusive access to the placement list for the duration of a single
// call. RotateInPlace, and Translate when collision checking is enabled,
// re-validate feasibility against every other placement before committing;
// Snap only adjusts coordinates and checks nothing. None of them change
// step numbers, preserving loading order.
package manualedit

import (
	"github.com/piwi3910/loadplan/internal/feasibility"
	"github.com/piwi3910/loadplan/internal/model"
)

// neighborhoodStep and neighborhoodRadius bound the rescue scan performed
// by RotateInPlace when the center-preserving rotation collides (§4.8).
const (
	neighborhoodStep   = 10.0
	neighborhoodRadius = 50.0
)

// snapDistance is the capture radius for Snap (§4.8).
const snapDistance = 5.0

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// others returns placed with the placement at index idx removed, for
// feasibility checks that must exclude self.
func others(placed []model.Placement, idx int) []model.Placement {
	out := make([]model.Placement, 0, len(placed)-1)
	for i, p := range placed {
		if i != idx {
			out = append(out, p)
		}
	}
	return out
}

// Translate moves the placement at idx by (dx,dy,dz), clamping each axis to
// keep the box within the container, then re-validates feasibility against
// every other placement. If collisionCheck is true and the new anchor
// collides, the move is rejected and placed is returned unchanged.
func Translate(container model.Container, placed []model.Placement, idx int, dx, dy, dz float64, collisionCheck bool) ([]model.Placement, bool) {
	if idx < 0 || idx >= len(placed) {
		return placed, false
	}
	p := placed[idx]

	effL := p.EffectiveLength()
	effW := p.EffectiveWidth()

	newX := clamp(p.X+dx, 0, container.Length-effL)
	newY := clamp(p.Y+dy, 0, container.Width-effW)
	newZ := clamp(p.Z+dz, 0, container.Height-p.Cargo.Height)

	rest := others(placed, idx)
	if collisionCheck && !feasibility.CanPlace(p.Cargo, newX, newY, newZ, p.Rotated, container, rest) {
		return placed, false
	}

	out := make([]model.Placement, len(placed))
	copy(out, placed)
	out[idx].X = newX
	out[idx].Y = newY
	out[idx].Z = newZ
	return out, true
}

// RotateInPlace flips the rotated flag of the placement at idx, keeping its
// geometric center fixed, clamps to container bounds, and tests feasibility
// against the rest of the placed set. If the centered rotation collides, it
// scans a ±50cm neighborhood in 10cm steps on the X-Y plane for the first
// collision-free anchor; if none is found, the rotation is reverted and
// false is returned.
func RotateInPlace(container model.Container, placed []model.Placement, idx int) ([]model.Placement, bool) {
	if idx < 0 || idx >= len(placed) {
		return placed, false
	}
	p := placed[idx]
	if !p.Cargo.AllowRotate {
		return placed, false
	}

	cx := p.X + p.EffectiveLength()/2
	cy := p.Y + p.EffectiveWidth()/2

	newRotated := !p.Rotated
	newEffL := p.Cargo.Length
	newEffW := p.Cargo.Width
	if newRotated {
		newEffL, newEffW = p.Cargo.Width, p.Cargo.Length
	}

	newX := clamp(cx-newEffL/2, 0, container.Length-newEffL)
	newY := clamp(cy-newEffW/2, 0, container.Width-newEffW)

	rest := others(placed, idx)

	if feasibility.CanPlace(p.Cargo, newX, newY, p.Z, newRotated, container, rest) {
		return commitRotate(placed, idx, newX, newY, newRotated), true
	}

	for dx := -neighborhoodRadius; dx <= neighborhoodRadius; dx += neighborhoodStep {
		for dy := -neighborhoodRadius; dy <= neighborhoodRadius; dy += neighborhoodStep {
			x := clamp(newX+dx, 0, container.Length-newEffL)
			y := clamp(newY+dy, 0, container.Width-newEffW)
			if feasibility.CanPlace(p.Cargo, x, y, p.Z, newRotated, container, rest) {
				return commitRotate(placed, idx, x, y, newRotated), true
			}
		}
	}

	return placed, false
}

func commitRotate(placed []model.Placement, idx int, x, y float64, rotated bool) []model.Placement {
	out := make([]model.Placement, len(placed))
	copy(out, placed)
	out[idx].X = x
	out[idx].Y = y
	out[idx].Rotated = rotated
	return out
}

// Snap adjusts a tentative (x,y,z) anchor: for each axis, if the
// coordinate is within 5cm of a container face or another placement's
// matching face, it replaces the coordinate with that face's exact value.
// Snap runs before feasibility checking, per §4.8.
func Snap(container model.Container, placed []model.Placement, effL, effW, effH, x, y, z float64) (snappedX, snappedY, snappedZ float64) {
	snappedX, snappedY, snappedZ = x, y, z

	snapAxis := func(v, containerMax float64, faces []float64) float64 {
		best := v
		bestDist := snapDistance
		candidateFaces := append([]float64{0, containerMax}, faces...)
		for _, f := range candidateFaces {
			d := f - v
			if d < 0 {
				d = -d
			}
			if d <= bestDist {
				bestDist = d
				best = f
			}
		}
		return best
	}

	var xFaces, yFaces, zFaces []float64
	for _, p := range placed {
		xFaces = append(xFaces, p.X, p.X+p.EffectiveLength())
		yFaces = append(yFaces, p.Y, p.Y+p.EffectiveWidth())
		zFaces = append(zFaces, p.Z, p.Top())
	}

	snappedX = snapAxis(x, container.Length-effL, xFaces)
	snappedY = snapAxis(y, container.Width-effW, yFaces)
	snappedZ = snapAxis(z, container.Height-effH, zFaces)
	return
}
