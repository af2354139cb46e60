// Package pallet implements the palletization engine of spec §4.9: a
// recursive application of the placement driver onto a synthetic pallet
// container, producing a single pallet cargo item whose payload is the
// resulting mini-placement. Per the spec's design note, "pallet = mini
// container": this package re-invokes the same candidate/feasibility/
// scoring primitives as the outer driver rather than a bespoke algorithm.
package pallet

import (
	"sort"

	"github.com/google/uuid"

	"github.com/piwi3910/loadplan/internal/candidates"
	"github.com/piwi3910/loadplan/internal/feasibility"
	"github.com/piwi3910/loadplan/internal/grouping"
	"github.com/piwi3910/loadplan/internal/model"
	"github.com/piwi3910/loadplan/internal/scoring"
)

// Spec describes the pallet geometry and mass cap used by Pack.
type Spec struct {
	Name             string
	Length           float64 // cm
	Width            float64 // cm
	DeckThickness    float64 // cm, defaults to model.DefaultPalletBaseHeight when 0
	ContentHeightCap float64 // cm, the usable interior height above the deck
	MassCap          float64 // kg
}

// Result is the outcome of one palletization pass.
type Result struct {
	Pallets   []model.Cargo
	Remainder []model.Cargo
	// TooSmall is true when a pass placed zero items while items remained,
	// per §4.9.4 / §7's pallet-too-small error kind.
	TooSmall bool
}

// Pack repeatedly builds pallets from source, per §4.9:
//  1. fully expand quantities to singletons, sort by volume descending;
//  2. instantiate a fresh pallet-local placement state per pallet and scan
//     the remaining list, committing what fits under the mass cap;
//  3. package the committed placements into a synthetic pallet cargo item;
//  4. stop when a pass places nothing while items remain.
func Pack(spec Spec, groups []model.CargoGroup, source []model.Cargo) Result {
	deck := spec.DeckThickness
	if deck == 0 {
		deck = model.DefaultPalletBaseHeight
	}

	singletons := grouping.Expand(source, groups)
	sort.SliceStable(singletons, func(i, j int) bool {
		vi := singletons[i].Length * singletons[i].Width * singletons[i].Height
		vj := singletons[j].Length * singletons[j].Width * singletons[j].Height
		return vi > vj
	})

	remaining := singletons
	var pallets []model.Cargo

	for len(remaining) > 0 {
		contents, leftover := packOnePallet(spec, deck, remaining)
		if len(contents) == 0 {
			return Result{Pallets: pallets, Remainder: remaining, TooSmall: true}
		}
		pallets = append(pallets, buildPalletCargo(spec, deck, contents))
		remaining = leftover
	}

	return Result{Pallets: pallets, Remainder: remaining}
}

func packOnePallet(spec Spec, deck float64, items []model.Cargo) (contents []model.PalletContent, remainder []model.Cargo) {
	palletContainer := model.Container{
		Name:   spec.Name,
		Length: spec.Length,
		Width:  spec.Width,
		Height: spec.ContentHeightCap,
		Type:   model.ContainerTypePallet,
	}

	var placed []model.Placement
	var totalMass float64
	remaining := items

	for progress := true; progress && len(remaining) > 0; {
		progress = false
		var stillRemaining []model.Cargo

		for _, item := range remaining {
			if totalMass+item.Weight > spec.MassCap && spec.MassCap > 0 {
				stillRemaining = append(stillRemaining, item)
				continue
			}

			p, ok := bestPalletPlacement(item, palletContainer, placed)
			if !ok {
				stillRemaining = append(stillRemaining, item)
				continue
			}

			placed = append(placed, p)
			totalMass += item.Weight
			progress = true
		}

		remaining = stillRemaining
	}

	contents = make([]model.PalletContent, len(placed))
	for i, p := range placed {
		contents[i] = model.PalletContent{Cargo: p.Cargo, X: p.X, Y: p.Y, Z: p.Z, Rotated: p.Rotated}
	}
	return contents, remaining
}

type candidate struct {
	x, y, z float64
	rotated bool
	score   float64
}

func bestPalletPlacement(item model.Cargo, container model.Container, placed []model.Placement) (model.Placement, bool) {
	orientations := []bool{false}
	if item.AllowRotate {
		if scoring.PreferredOrientation(item, container) {
			orientations = []bool{true, false}
		} else {
			orientations = []bool{false, true}
		}
	}

	var best candidate
	found := false

	for _, rotated := range orientations {
		for _, pt := range candidates.Generate(item, rotated, placed) {
			if !feasibility.CanPlace(item, pt.X, pt.Y, pt.Z, rotated, container, placed) {
				continue
			}
			s := scoring.Score(item, pt.X, pt.Y, pt.Z, rotated, container, placed)
			if !found || s < best.score {
				best = candidate{pt.X, pt.Y, pt.Z, rotated, s}
				found = true
			}
		}
	}

	if !found {
		return model.Placement{}, false
	}
	return model.Placement{Cargo: item, X: best.x, Y: best.y, Z: best.z, Rotated: best.rotated}, true
}

func buildPalletCargo(spec Spec, deck float64, contents []model.PalletContent) model.Cargo {
	var mass float64
	var maxTop float64
	for _, c := range contents {
		mass += c.Cargo.Weight
		top := c.Z + c.Cargo.Height
		if top > maxTop {
			maxTop = top
		}
	}

	return model.Cargo{
		ID:               uuid.New().String()[:8],
		Name:             "Pallet (" + spec.Name + ")",
		Length:           spec.Length,
		Width:            spec.Width,
		Height:           deck + maxTop,
		Weight:           mass,
		Quantity:         1,
		Stackable:        false,
		AllowRotate:      true,
		BottomOnly:       true,
		IsPallet:         true,
		PalletBaseHeight: deck,
		PalletContents:   contents,
	}
}
