// Package multicontainer implements the multi-container orchestrator of
// spec §4.10: it runs the placement driver repeatedly on fresh container
// instances until cargo is exhausted or the container count is reached.
// The rule pipeline is re-applied per container on the remainder, not once
// globally, per the spec's deliberate design note.
package multicontainer

import (
	"github.com/piwi3910/loadplan/internal/driver"
	"github.com/piwi3910/loadplan/internal/grouping"
	"github.com/piwi3910/loadplan/internal/model"
)

// Outcome is the ordered per-container results plus the final remainder.
type Outcome struct {
	Results   []model.ContainerLoadingResult
	Remainder []model.Cargo
}

// Run expands quantities once up front (groups and quantities are
// singleton-stable across containers), then for k = 1..count, while items
// remain, runs the placement driver on a fresh container instance with the
// current remainder. Each result's placements are tagged with the 1-based
// container index. Containers with zero placements at the tail are
// retained; the caller may trim them.
func Run(container model.Container, count int, enabledRules []model.LoadingRule, groups []model.CargoGroup, items []model.Cargo) Outcome {
	remainder := grouping.Expand(items, groups)

	var results []model.ContainerLoadingResult
	for k := 1; k <= count && len(remainder) > 0; k++ {
		inst := container
		res := driver.RunSingletons(inst, enabledRules, remainder)

		for i := range res.Placed {
			res.Placed[i].ContainerIndex = k
		}
		results = append(results, model.ContainerLoadingResult{
			Container:  inst,
			Placements: res.Placed,
		})

		next := make([]model.Cargo, 0, len(res.Unplaced))
		for _, u := range res.Unplaced {
			next = append(next, u.Cargo)
		}
		remainder = next
	}

	return Outcome{Results: results, Remainder: remainder}
}
