// Package scoring implements the placement scorer (spec §4.3) and the
// orientation preselector (spec §4.4). Lower scores are better.
package scoring

import (
	"math"

	"github.com/piwi3910/loadplan/internal/feasibility"
	"github.com/piwi3910/loadplan/internal/geometry"
	"github.com/piwi3910/loadplan/internal/model"
)

const (
	distXWeight = 1.0
	distYWeight = 1.5
	distZWeight = 2.0

	lateralContactCoeff  = -0.01
	verticalContactCoeff = -0.02

	wallXCoeff = -0.005
	wallYCoeff = -0.005
	wallZCoeff = -0.01

	wasteSpan      = 30.0
	wastePerUnit   = 0.5
	contactEpsilon = 0.1
	wallEpsilon    = 0.01

	// OrientationBonus is subtracted from the score of any candidate using
	// the preselected "optimal" orientation (§4.4).
	OrientationBonus = -100.0
)

// Score computes the §4.3 score for a feasible (x,y,z,rotated) candidate.
// Lower is better.
func Score(item model.Cargo, x, y, z float64, rotated bool, container model.Container, placed []model.Placement) float64 {
	effL := item.Length
	effW := item.Width
	if rotated {
		effL, effW = item.Width, item.Length
	}
	candidate := geometry.AABB{X: x, Y: y, Z: z, Length: effL, Width: effW, Height: item.Height}

	score := x*distXWeight + y*distYWeight + z*distZWeight
	score += contactBonus(candidate, container, placed)
	score += wastePenalty(candidate, container)
	return score
}

func contactBonus(candidate geometry.AABB, container model.Container, placed []model.Placement) float64 {
	var bonus float64

	for _, p := range placed {
		other := feasibility.PlacementAABB(p)

		yOverlap := overlap1D(candidate.Y, candidate.MaxY(), other.Y, other.MaxY())
		zOverlap := overlap1D(candidate.Z, candidate.MaxZ(), other.Z, other.MaxZ())
		if yOverlap > 0 && zOverlap > 0 {
			if geometry.ApproxEqual(candidate.X, other.MaxX(), contactEpsilon) ||
				geometry.ApproxEqual(candidate.MaxX(), other.X, contactEpsilon) {
				bonus += lateralContactCoeff * (yOverlap * zOverlap)
			}
		}

		xOverlap := overlap1D(candidate.X, candidate.MaxX(), other.X, other.MaxX())
		if xOverlap > 0 && zOverlap > 0 {
			if geometry.ApproxEqual(candidate.Y, other.MaxY(), contactEpsilon) ||
				geometry.ApproxEqual(candidate.MaxY(), other.Y, contactEpsilon) {
				bonus += lateralContactCoeff * (xOverlap * zOverlap)
			}
		}

		if xOverlap > 0 && yOverlap > 0 {
			if geometry.ApproxEqual(candidate.Z, other.MaxZ(), contactEpsilon) ||
				geometry.ApproxEqual(candidate.MaxZ(), other.Z, contactEpsilon) {
				bonus += verticalContactCoeff * (xOverlap * yOverlap)
			}
		}
	}

	if geometry.ApproxEqual(candidate.X, 0, wallEpsilon) {
		bonus += wallXCoeff * container.Width * container.Height
	}
	if geometry.ApproxEqual(candidate.Y, 0, wallEpsilon) {
		bonus += wallYCoeff * container.Length * container.Height
	}
	if geometry.ApproxEqual(candidate.Z, 0, wallEpsilon) {
		bonus += wallZCoeff * container.Length * container.Width
	}

	return bonus
}

func wastePenalty(candidate geometry.AABB, container model.Container) float64 {
	var penalty float64

	remX := container.Length - candidate.MaxX()
	if remX > 0 && remX < wasteSpan {
		penalty += wastePerUnit * remX
	}
	remY := container.Width - candidate.MaxY()
	if remY > 0 && remY < wasteSpan {
		penalty += wastePerUnit * remY
	}

	return penalty
}

func overlap1D(aMin, aMax, bMin, bMax float64) float64 {
	o := math.Min(aMax, bMax) - math.Max(aMin, bMin)
	if o < 0 {
		return 0
	}
	return o
}

// PreferredOrientation computes, per §4.4, which orientation tiles more
// copies of item per layer in an empty container of the given dims, and
// returns true if the rotated orientation wins. Ties (including the exact
// 1-vs-1 boundary case) resolve to un-rotated, matching the spec's
// documented tie-break.
func PreferredOrientation(item model.Cargo, container model.Container) (rotatedPreferred bool) {
	normalCount := math.Floor(container.Width/item.Width) * math.Floor(container.Length/item.Length)
	rotatedCount := math.Floor(container.Width/item.Length) * math.Floor(container.Length/item.Width)
	return rotatedCount > normalCount
}
