package multicontainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/loadplan/internal/model"
)

func TestRunSplitsAcrossContainers(t *testing.T) {
	container := model.Container{Length: 20, Width: 20, Height: 20, MaxWeight: 1000}
	items := []model.Cargo{
		{ID: "a", Name: "A", Length: 20, Width: 20, Height: 20, Weight: 5, Quantity: 3, Stackable: true, AllowRotate: true},
	}

	outcome := Run(container, 3, model.DefaultRules(), nil, items)

	require.Len(t, outcome.Results, 3)
	for k, r := range outcome.Results {
		require.Len(t, r.Placements, 1)
		assert.Equal(t, k+1, r.Placements[0].ContainerIndex)
	}
	assert.Empty(t, outcome.Remainder)
}

func TestRunStopsWhenCountExhaustedAndReportsRemainder(t *testing.T) {
	container := model.Container{Length: 20, Width: 20, Height: 20, MaxWeight: 1000}
	items := []model.Cargo{
		{ID: "a", Name: "A", Length: 20, Width: 20, Height: 20, Weight: 5, Quantity: 3, Stackable: true, AllowRotate: true},
	}

	outcome := Run(container, 2, model.DefaultRules(), nil, items)

	require.Len(t, outcome.Results, 2)
	require.Len(t, outcome.Remainder, 1)
}

// TestRunConservation checks the §8 multi-container conservation property
// by count: placed items across all results plus the remainder add up to
// the quantity-weighted number of input items.
func TestRunConservation(t *testing.T) {
	container := model.Container{Length: 20, Width: 20, Height: 20, MaxWeight: 1000}
	items := []model.Cargo{
		{ID: "a", Name: "A", Length: 20, Width: 20, Height: 20, Weight: 5, Quantity: 2, Stackable: true, AllowRotate: true},
		{ID: "b", Name: "B", Length: 5, Width: 5, Height: 5, Weight: 1, Quantity: 1, Stackable: true, AllowRotate: true},
	}

	outcome := Run(container, 5, model.DefaultRules(), nil, items)

	total := len(outcome.Remainder)
	for _, r := range outcome.Results {
		total += len(r.Placements)
	}
	assert.Equal(t, 3, total, "expected 2 units of A plus 1 unit of B accounted for")
}

func TestRunIDsAreNotReSuffixedAcrossContainers(t *testing.T) {
	container := model.Container{Length: 20, Width: 20, Height: 20, MaxWeight: 1000}
	items := []model.Cargo{
		{ID: "a", Name: "A", Length: 20, Width: 20, Height: 20, Weight: 5, Quantity: 2, Stackable: true, AllowRotate: true},
	}

	outcome := Run(container, 2, model.DefaultRules(), nil, items)
	require.Len(t, outcome.Results, 2)

	for _, r := range outcome.Results {
		require.Len(t, r.Placements, 1)
		id := r.Placements[0].Cargo.ID
		assert.Regexp(t, `^a_\d$`, id, "expected a single quantity-expansion suffix, not nested re-suffixing")
	}
}
