// Package feasibility implements the can_place oracle (spec §4.1): given a
// candidate anchor and orientation, it answers whether the placement
// satisfies every invariant against the current placed set.
package feasibility

import (
	"github.com/piwi3910/loadplan/internal/geometry"
	"github.com/piwi3910/loadplan/internal/model"
)

// CanPlace returns true iff item, at (x,y,z) under the given rotation, can
// be committed against the container and the current placed set without
// violating any invariant. Checks run in the order specified in §4.1 so
// that the cheapest checks reject first.
func CanPlace(item model.Cargo, x, y, z float64, rotated bool, container model.Container, placed []model.Placement) bool {
	if rotated && !item.AllowRotate {
		return false
	}
	if item.BottomOnly && z > geometry.Tolerance {
		return false
	}
	if x < -geometry.Tolerance || y < -geometry.Tolerance || z < -geometry.Tolerance {
		return false
	}

	effL := item.Length
	effW := item.Width
	if rotated {
		effL, effW = item.Width, item.Length
	}

	if x+effL > container.Length+geometry.Tolerance {
		return false
	}
	if y+effW > container.Width+geometry.Tolerance {
		return false
	}
	if z+item.Height > container.Height+geometry.Tolerance {
		return false
	}

	candidate := geometry.AABB{X: x, Y: y, Z: z, Length: effL, Width: effW, Height: item.Height}

	for _, p := range placed {
		other := placementAABB(p)
		if geometry.OverlapsInterior(candidate, other) {
			return false
		}
	}

	if z > geometry.Tolerance {
		if !supported(candidate, placed) {
			return false
		}
	}

	return true
}

// supported returns true iff the accumulated footprint overlap area of
// every placement whose top face matches the candidate's bottom (within
// SupportTolerance) is at least 70% of the candidate's footprint area, per
// the support ratio defined in §3/§4.1.
func supported(candidate geometry.AABB, placed []model.Placement) bool {
	required := 0.7 * candidate.Length * candidate.Width
	var accumulated float64
	for _, p := range placed {
		other := placementAABB(p)
		if !geometry.ApproxEqual(other.MaxZ(), candidate.Z, geometry.SupportTolerance) {
			continue
		}
		accumulated += geometry.FootprintOverlapArea(candidate, other)
		if accumulated >= required {
			return true
		}
	}
	return accumulated >= required
}

func placementAABB(p model.Placement) geometry.AABB {
	return geometry.AABB{
		X:      p.X,
		Y:      p.Y,
		Z:      p.Z,
		Length: p.EffectiveLength(),
		Width:  p.EffectiveWidth(),
		Height: p.Cargo.Height,
	}
}

// PlacementAABB exposes placementAABB to sibling packages (scoring) that
// need the same conversion without duplicating it.
func PlacementAABB(p model.Placement) geometry.AABB {
	return placementAABB(p)
}
