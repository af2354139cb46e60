// Package candidates implements the candidate position generator of spec
// §4.2: from the current placed set it emits a deduplicated set of anchor
// points worth feasibility-testing, plus a coarse grid fallback for when
// the fast path finds nothing.
package candidates

import (
	"github.com/piwi3910/loadplan/internal/model"
)

// Point is a candidate anchor in container-local coordinates.
type Point struct {
	X, Y, Z float64
}

// Generate emits the primary (fast-path) candidate set for placing item
// (under the given rotation) against the current placed set, per §4.2.
func Generate(item model.Cargo, rotated bool, placed []model.Placement) []Point {
	seen := make(map[Point]bool)
	var out []Point
	add := func(p Point) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	add(Point{0, 0, 0})

	for _, p := range placed {
		pl := p.EffectiveLength()
		pw := p.EffectiveWidth()

		add(Point{p.X + pl, p.Y, p.Z})
		add(Point{p.X, p.Y + pw, p.Z})
		if p.Cargo.Stackable && !item.BottomOnly {
			add(Point{p.X, p.Y, p.Top()})
		}

		add(Point{p.X + pl, 0, p.Z})
		add(Point{0, p.Y + pw, p.Z})
		add(Point{p.X + pl, 0, 0})
		add(Point{0, p.Y + pw, 0})
		add(Point{0, p.Y, p.Z})
		add(Point{p.X, 0, p.Z})
	}

	return out
}

// GridStep is the spacing (cm) of the coarse fallback grid.
const GridStep = 10.0

// GridFallback emits a rectangular grid of candidates over the container
// floor plan, at every z-level a placement top or the floor introduces, for
// use only when the primary candidate set yields no feasible placement.
func GridFallback(container model.Container, placed []model.Placement) []Point {
	levels := map[float64]bool{0: true}
	for _, p := range placed {
		levels[p.Top()] = true
	}

	var out []Point
	for z := range levels {
		for x := 0.0; x < container.Length; x += GridStep {
			for y := 0.0; y < container.Width; y += GridStep {
				out = append(out, Point{x, y, z})
			}
		}
	}
	return out
}
