// Package grouping implements the group expander and quantity expander of
// spec §4.6: locked multi-item groups fold into single synthetic items,
// then every resulting item of quantity > 1 unfolds into singletons.
package grouping

import (
	"fmt"

	"github.com/piwi3910/loadplan/internal/model"
)

// ExpandGroups folds each group's members into one synthetic cargo item
// carrying the combined bounding box and mass (explicit if the group
// supplies them, else derived per §4.6), and passes through members of no
// group unchanged. It runs before quantity expansion.
func ExpandGroups(items []model.Cargo, groups []model.CargoGroup) []model.Cargo {
	memberOf := make(map[string]*model.CargoGroup, len(items))
	byID := make(map[string]model.Cargo, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	for i := range groups {
		g := &groups[i]
		for _, id := range g.CargoIDs {
			memberOf[id] = g
		}
	}

	seenGroup := make(map[string]bool, len(groups))
	var out []model.Cargo

	for _, it := range items {
		g, inGroup := memberOf[it.ID]
		if !inGroup {
			out = append(out, it)
			continue
		}
		if seenGroup[g.ID] {
			continue
		}
		seenGroup[g.ID] = true
		out = append(out, buildSynthetic(*g, byID))
	}

	return out
}

func buildSynthetic(g model.CargoGroup, byID map[string]model.Cargo) model.Cargo {
	var length, width, height, mass float64
	stackable := true
	color := ""
	first := true

	if g.HasCombined {
		length, width, height, mass = g.CombinedL, g.CombinedW, g.CombinedH, g.CombinedMass
	}

	for _, id := range g.CargoIDs {
		m, ok := byID[id]
		if !ok {
			continue
		}
		if !g.HasCombined {
			if m.Length > length {
				length = m.Length
			}
			if m.Width > width {
				width = m.Width
			}
			height += m.Height
			mass += m.Weight
		}
		stackable = stackable && m.Stackable
		if first {
			color = m.Color
			first = false
		}
	}

	return model.Cargo{
		ID:          g.ID,
		Name:        g.Name,
		Length:      length,
		Width:       width,
		Height:      height,
		Weight:      mass,
		Quantity:    1,
		Stackable:   stackable,
		AllowRotate: true,
		Color:       color,
		GroupID:     g.ID,
	}
}

// ExpandQuantities unfolds each item's Quantity into that many singletons
// with quantity 1 and ids "${id}_${index}".
func ExpandQuantities(items []model.Cargo) []model.Cargo {
	var out []model.Cargo
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		for i := 0; i < qty; i++ {
			singleton := it
			singleton.Quantity = 1
			singleton.ID = fmt.Sprintf("%s_%d", it.ID, i)
			out = append(out, singleton)
		}
	}
	return out
}

// Expand runs ExpandGroups followed by ExpandQuantities, the full §4.6
// pipeline from caller-supplied items and groups to singleton cargo ready
// for the rule pipeline.
func Expand(items []model.Cargo, groups []model.CargoGroup) []model.Cargo {
	return ExpandQuantities(ExpandGroups(items, groups))
}
