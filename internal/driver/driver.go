// Package driver implements the placement driver of spec §4.7: it expands
// groups and quantities, sorts with the rule pipeline, and for each
// singleton in turn asks the candidate generator, feasibility oracle and
// scorer for the best placement, committing it or recording the item as
// unplaced.
package driver

import (
	"github.com/piwi3910/loadplan/internal/candidates"
	"github.com/piwi3910/loadplan/internal/feasibility"
	"github.com/piwi3910/loadplan/internal/grouping"
	"github.com/piwi3910/loadplan/internal/model"
	"github.com/piwi3910/loadplan/internal/rules"
	"github.com/piwi3910/loadplan/internal/scoring"
)

// Result is the (placed, unplaced) partition the driver returns (§4.7.4).
type Result struct {
	Placed   []model.Placement
	Unplaced []model.Unplaced
}

// Run executes the full placement driver pipeline against a single
// container instance: it expands groups and quantities of the
// caller-supplied items into singletons, then applies the rule pipeline and
// placement search via RunSingletons. Callers that already hold expanded
// singletons (e.g. the multi-container orchestrator) call RunSingletons
// directly.
func Run(container model.Container, enabledRules []model.LoadingRule, groups []model.CargoGroup, items []model.Cargo) Result {
	singletons := grouping.Expand(items, groups)
	return RunSingletons(container, enabledRules, singletons)
}

// RunSingletons runs the rule pipeline and placement search directly on an
// already-expanded singleton list, skipping group/quantity expansion. Used
// by the multi-container orchestrator, which expands once up front and
// must not re-suffix cargo ids on every per-container re-run (§4.10).
func RunSingletons(container model.Container, enabledRules []model.LoadingRule, singletons []model.Cargo) Result {
	ordered := rules.Apply(enabledRules, singletons)
	return place(container, ordered)
}

// candidate is the tuple evaluated during search.
type candidate struct {
	x, y, z float64
	rotated bool
	score   float64
}

func place(container model.Container, ordered []model.Cargo) Result {
	var result Result
	placed := make([]model.Placement, 0, len(ordered))
	step := 1

	for _, item := range ordered {
		best, ok := bestPlacement(item, container, placed)
		if !ok {
			reason := model.ReasonNoFit
			if !fitsInEmptyContainer(item, container) {
				reason = model.ReasonItemTooLarge
			}
			result.Unplaced = append(result.Unplaced, model.Unplaced{Cargo: item, Reason: reason})
			continue
		}

		placed = append(placed, model.Placement{
			Cargo:      item,
			X:          best.x,
			Y:          best.y,
			Z:          best.z,
			Rotated:    best.rotated,
			StepNumber: step,
		})
		step++
	}

	result.Placed = placed
	return result
}

// orientationsToTry returns the orientation list to search, preferring the
// §4.4 preselected orientation first when rotation is admissible, along
// with which orientation that preference is.
func orientationsToTry(item model.Cargo, container model.Container) (orientations []bool, preferredRotated bool) {
	if !item.AllowRotate {
		return []bool{false}, false
	}
	if scoring.PreferredOrientation(item, container) {
		return []bool{true, false}, true
	}
	return []bool{false, true}, false
}

func bestPlacement(item model.Cargo, container model.Container, placed []model.Placement) (candidate, bool) {
	orientations, preferredRotated := orientationsToTry(item, container)

	var best candidate
	found := false

	tryPoint := func(rotated bool, p candidates.Point) {
		if !feasibility.CanPlace(item, p.X, p.Y, p.Z, rotated, container, placed) {
			return
		}
		s := scoring.Score(item, p.X, p.Y, p.Z, rotated, container, placed)
		if rotated == preferredRotated && item.AllowRotate {
			s += scoring.OrientationBonus
		}
		if !found || s < best.score {
			best = candidate{x: p.X, y: p.Y, z: p.Z, rotated: rotated, score: s}
			found = true
		}
	}

	for _, rotated := range orientations {
		for _, p := range candidates.Generate(item, rotated, placed) {
			tryPoint(rotated, p)
		}
	}

	if !found {
		for _, rotated := range orientations {
			for _, p := range candidates.GridFallback(container, placed) {
				tryPoint(rotated, p)
			}
		}
	}

	return best, found
}

// fitsInEmptyContainer reports whether any admissible orientation of item
// fits within the container's empty interior, used to distinguish
// item-too-large from no-fit in the unplaced reason (§7).
func fitsInEmptyContainer(item model.Cargo, container model.Container) bool {
	if item.Length <= container.Length+1e-9 && item.Width <= container.Width+1e-9 && item.Height <= container.Height+1e-9 {
		return true
	}
	if item.AllowRotate && item.Width <= container.Length+1e-9 && item.Length <= container.Width+1e-9 && item.Height <= container.Height+1e-9 {
		return true
	}
	return false
}
