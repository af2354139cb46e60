package candidates

import (
	"testing"

	"github.com/piwi3910/loadplan/internal/model"
)

func TestGenerateEmptyContainerYieldsOrigin(t *testing.T) {
	pts := Generate(model.Cargo{Length: 10, Width: 10, Height: 10}, false, nil)
	if len(pts) != 1 || pts[0] != (Point{0, 0, 0}) {
		t.Errorf("expected only the origin candidate for an empty placed set, got %v", pts)
	}
}

func TestGenerateDeduplicates(t *testing.T) {
	placed := []model.Placement{
		{Cargo: model.Cargo{Length: 5, Width: 5, Height: 5}, X: 0, Y: 0, Z: 0},
	}
	pts := Generate(model.Cargo{Length: 5, Width: 5, Height: 5, Stackable: true}, false, placed)

	seen := make(map[Point]bool)
	for _, p := range pts {
		if seen[p] {
			t.Fatalf("duplicate candidate point: %v", p)
		}
		seen[p] = true
	}
}

func TestGenerateSkipsStackingForBottomOnly(t *testing.T) {
	placed := []model.Placement{
		{Cargo: model.Cargo{Length: 5, Width: 5, Height: 5, Stackable: true}, X: 0, Y: 0, Z: 0},
	}
	pts := Generate(model.Cargo{Length: 5, Width: 5, Height: 5, BottomOnly: true}, false, placed)
	for _, p := range pts {
		if p.Z > 0 {
			t.Errorf("expected no above-floor candidate for a bottom_only item, got %v", p)
		}
	}
}

func TestGridFallbackCoversFloorAndStackLevels(t *testing.T) {
	container := model.Container{Length: 20, Width: 20, Height: 20}
	placed := []model.Placement{
		{Cargo: model.Cargo{Length: 5, Width: 5, Height: 5}, X: 0, Y: 0, Z: 0},
	}
	pts := GridFallback(container, placed)

	var sawFloor, sawTop bool
	for _, p := range pts {
		if p.Z == 0 {
			sawFloor = true
		}
		if p.Z == 5 {
			sawTop = true
		}
	}
	if !sawFloor || !sawTop {
		t.Errorf("expected grid candidates at floor and stack-top levels, sawFloor=%v sawTop=%v", sawFloor, sawTop)
	}
}
