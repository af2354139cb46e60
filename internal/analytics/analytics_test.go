package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/loadplan/internal/model"
)

func TestComputeEmptyPlacementsNeverFails(t *testing.T) {
	container := model.Container{Length: 100, Width: 50, Height: 50, MaxWeight: 1000}
	stats := Compute(container, nil)

	assert.Equal(t, 0, stats.LoadedCount)
	assert.Equal(t, 0.0, stats.TotalVolume)
	assert.Equal(t, 0.0, stats.VolumeUtilization)
	assert.Equal(t, CoGGood, stats.CoGStatus)
}

func TestComputeCenterOfGravityCenteredLoad(t *testing.T) {
	container := model.Container{Length: 100, Width: 100, Height: 100, MaxWeight: 1000}
	placements := []model.Placement{
		{Cargo: model.Cargo{Length: 10, Width: 10, Height: 10, Weight: 10}, X: 45, Y: 45, Z: 0},
	}
	stats := Compute(container, placements)
	assert.InDelta(t, 50.0, stats.CoGX, 0.01)
	assert.InDelta(t, 50.0, stats.CoGY, 0.01)
	assert.Equal(t, CoGGood, stats.CoGStatus)
}

func TestComputeCenterOfGravityBiasedLoad(t *testing.T) {
	container := model.Container{Length: 100, Width: 100, Height: 100, MaxWeight: 1000}
	placements := []model.Placement{
		{Cargo: model.Cargo{Length: 10, Width: 10, Height: 10, Weight: 10}, X: 0, Y: 45, Z: 0},
	}
	stats := Compute(container, placements)
	assert.Equal(t, CoGBiased, stats.CoGStatus)
}

func TestLoadingStepsOrderedByStep(t *testing.T) {
	container := model.Container{Length: 100, Width: 100, Height: 100}
	placements := []model.Placement{
		{Cargo: model.Cargo{Name: "Second", Length: 10, Width: 10, Height: 10}, StepNumber: 2},
		{Cargo: model.Cargo{Name: "First", Length: 10, Width: 10, Height: 10}, StepNumber: 1},
	}
	steps := LoadingSteps(container, placements)
	assert.Equal(t, "First", steps[0].CargoName)
	assert.Equal(t, "Second", steps[1].CargoName)
}

func TestLoadingStepsSecuringNoteFloorAnchoring(t *testing.T) {
	container := model.Container{Length: 100, Width: 100, Height: 100}
	placements := []model.Placement{
		{Cargo: model.Cargo{Name: "A", Length: 10, Width: 10, Height: 10, Weight: 600, Stackable: false}, StepNumber: 1, Z: 0},
	}
	steps := LoadingSteps(container, placements)
	assert.Contains(t, steps[0].SecuringNote, "floor anchoring")
	assert.Contains(t, steps[0].SecuringNote, "strap restraint")
	assert.Contains(t, steps[0].SecuringNote, "do not stack")
}

func TestAnalyzeTailSpaceNoseToTailGap(t *testing.T) {
	container := model.Container{Length: 100, Width: 50, Height: 50}
	placements := []model.Placement{
		{Cargo: model.Cargo{Length: 60, Width: 50, Height: 50}, X: 0, Y: 0, Z: 0},
	}
	ts := AnalyzeTailSpace(container, placements)
	assert.InDelta(t, 40.0, ts.NoseToTailGap, 0.01)
	assert.Len(t, ts.LateralGaps, 1)
	assert.False(t, ts.Stacked[0])
}

func TestAnalyzeTailSpaceLastRowMeasuredFromLoadedExtentNotContainerWall(t *testing.T) {
	// The container is far longer than the load itself, so a naive
	// distance-from-the-container-wall test would wrongly exclude the
	// farthest placement from the last row; it must be measured from the
	// load's own farthest extent (maxX) instead.
	container := model.Container{Length: 500, Width: 50, Height: 50}
	placements := []model.Placement{
		{Cargo: model.Cargo{Length: 50, Width: 50, Height: 50}, X: 0, Y: 0, Z: 0},
		{Cargo: model.Cargo{Length: 50, Width: 50, Height: 50}, X: 200, Y: 0, Z: 0},
	}
	ts := AnalyzeTailSpace(container, placements)
	assert.InDelta(t, 250.0, ts.NoseToTailGap, 0.01)
	require.Len(t, ts.LateralGaps, 1)
}

func TestTailAdviceVariesByContainerType(t *testing.T) {
	truck := model.Container{Length: 100, Width: 50, Height: 50, Type: model.ContainerTypeTruck}
	container := model.Container{Length: 100, Width: 50, Height: 50, Type: model.ContainerTypeContainer}
	placements := []model.Placement{
		{Cargo: model.Cargo{Length: 60, Width: 50, Height: 50}, X: 0, Y: 0, Z: 0},
	}

	truckAdvice := TailAdvice(truck, AnalyzeTailSpace(truck, placements))
	containerAdvice := TailAdvice(container, AnalyzeTailSpace(container, placements))

	assert.Contains(t, truckAdvice[0], "tailgate")
	assert.Contains(t, containerAdvice[0], "container doors")
}

func TestTailAdviceNoGapNoAdvice(t *testing.T) {
	container := model.Container{Length: 100, Width: 50, Height: 50}
	placements := []model.Placement{
		{Cargo: model.Cargo{Length: 100, Width: 50, Height: 50}, X: 0, Y: 0, Z: 0},
	}
	ts := AnalyzeTailSpace(container, placements)
	assert.Empty(t, TailAdvice(container, ts))
}
