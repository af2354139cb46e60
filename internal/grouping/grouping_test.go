package grouping

import (
	"testing"

	"github.com/piwi3910/loadplan/internal/model"
)

func TestExpandGroupsFoldsMembers(t *testing.T) {
	items := []model.Cargo{
		{ID: "a", Length: 10, Width: 5, Height: 2, Weight: 3, Stackable: true},
		{ID: "b", Length: 8, Width: 6, Height: 4, Weight: 5, Stackable: true},
		{ID: "solo", Length: 1, Width: 1, Height: 1},
	}
	groups := []model.CargoGroup{
		{ID: "g1", Name: "Bundle", CargoIDs: []string{"a", "b"}},
	}

	out := ExpandGroups(items, groups)
	if len(out) != 2 {
		t.Fatalf("expected 2 items after folding (1 synthetic + 1 solo), got %d", len(out))
	}

	var synthetic model.Cargo
	for _, it := range out {
		if it.ID == "g1" {
			synthetic = it
		}
	}
	if synthetic.ID == "" {
		t.Fatal("expected a synthetic group item with id g1")
	}
	if synthetic.Length != 10 || synthetic.Width != 6 || synthetic.Height != 6 {
		t.Errorf("unexpected combined dims: %+v", synthetic)
	}
	if synthetic.Weight != 8 {
		t.Errorf("expected combined weight 8, got %v", synthetic.Weight)
	}
}

func TestExpandGroupsRespectsExplicitCombinedDims(t *testing.T) {
	items := []model.Cargo{
		{ID: "a", Length: 10, Width: 5, Height: 2, Weight: 3},
	}
	groups := []model.CargoGroup{
		{ID: "g1", CargoIDs: []string{"a"}, HasCombined: true, CombinedL: 99, CombinedW: 88, CombinedH: 77, CombinedMass: 66},
	}

	out := ExpandGroups(items, groups)
	if len(out) != 1 {
		t.Fatalf("expected 1 synthetic item, got %d", len(out))
	}
	if out[0].Length != 99 || out[0].Width != 88 || out[0].Height != 77 || out[0].Weight != 66 {
		t.Errorf("expected explicit combined dims to be used verbatim, got %+v", out[0])
	}
}

func TestExpandQuantitiesUnfoldsSingletons(t *testing.T) {
	items := []model.Cargo{
		{ID: "x", Quantity: 3},
	}
	out := ExpandQuantities(items)
	if len(out) != 3 {
		t.Fatalf("expected 3 singletons, got %d", len(out))
	}
	for i, s := range out {
		if s.Quantity != 1 {
			t.Errorf("expected singleton quantity 1, got %d", s.Quantity)
		}
		want := "x_0"
		if i == 1 {
			want = "x_1"
		} else if i == 2 {
			want = "x_2"
		}
		if s.ID != want {
			t.Errorf("expected id %s, got %s", want, s.ID)
		}
	}
}

func TestExpandRoundTripForUngroupedItems(t *testing.T) {
	items := []model.Cargo{
		{ID: "a", Length: 10, Width: 5, Height: 2, Quantity: 2},
		{ID: "b", Length: 1, Width: 1, Height: 1, Quantity: 1},
	}
	out := Expand(items, nil)
	if len(out) != 3 {
		t.Fatalf("expected 3 singletons (2 + 1), got %d", len(out))
	}

	dimCounts := make(map[[3]float64]int)
	for _, it := range items {
		for i := 0; i < it.Quantity; i++ {
			dimCounts[[3]float64{it.Length, it.Width, it.Height}]++
		}
	}
	for _, it := range out {
		dimCounts[[3]float64{it.Length, it.Width, it.Height}]--
	}
	for dims, remaining := range dimCounts {
		if remaining != 0 {
			t.Errorf("dims %v: multiset mismatch, remaining count %d", dims, remaining)
		}
	}
}
