package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/loadplan/internal/model"
)

func TestBuildDocumentShape(t *testing.T) {
	container := model.Container{Length: 100, Width: 100, Height: 100, MaxWeight: 1000}
	placements := []model.Placement{
		{Cargo: model.Cargo{Name: "Box", Length: 10, Width: 10, Height: 10, Weight: 5}, X: 0, Y: 0, Z: 0, StepNumber: 1},
	}
	unplaced := []model.Unplaced{
		{Cargo: model.Cargo{Name: "TooBig"}, Reason: model.ReasonItemTooLarge},
	}

	doc := BuildDocument(container, placements, unplaced)

	require.Len(t, doc.LoadingSteps, 1)
	assert.Equal(t, "Box", doc.LoadingSteps[0].CargoName)
	assert.Equal(t, 5.0, doc.LoadingSteps[0].Weight)
	require.Len(t, doc.Unplaced, 1)
	assert.Contains(t, doc.Unplaced[0], "TooBig")
}

func TestBuildMultiDocumentShape(t *testing.T) {
	results := []model.ContainerLoadingResult{
		{
			Container: model.Container{Length: 100, Width: 100, Height: 100, MaxWeight: 1000},
			Placements: []model.Placement{
				{Cargo: model.Cargo{Name: "Box", Length: 10, Width: 10, Height: 10, Weight: 5}, StepNumber: 1},
			},
		},
	}
	remainder := []model.Cargo{{Name: "Leftover"}}

	doc := BuildMultiDocument(results, remainder)
	assert.True(t, doc.MultiContainer)
	assert.Equal(t, 1, doc.ContainerCount)
	require.Len(t, doc.Containers, 1)
	assert.Len(t, doc.Containers[0].Cargos, 1)
	assert.Equal(t, []string{"Leftover"}, doc.Remainder)
}

func TestDecodeJSONFillsDefaults(t *testing.T) {
	data := []byte(`{"container":{"length":100,"width":100,"height":100,"max_weight":1000},"cargo":[]}`)
	s, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ContainerCount)
	assert.Len(t, s.Rules, 5)
}

func TestDecodeYAMLFillsDefaults(t *testing.T) {
	data := []byte("container:\n  length: 100\n  width: 100\n  height: 100\n  max_weight: 1000\ncargo: []\n")
	s, err := DecodeYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ContainerCount)
	assert.Len(t, s.Rules, 5)
}

func TestDecodeYAMLBindsSnakeCaseFields(t *testing.T) {
	data := []byte("" +
		"container:\n" +
		"  length: 100\n" +
		"  width: 50\n" +
		"  height: 50\n" +
		"  max_weight: 1000\n" +
		"  container_type: truck\n" +
		"cargo:\n" +
		"  - name: Box\n" +
		"    length: 10\n" +
		"    width: 10\n" +
		"    height: 10\n" +
		"    weight: 5\n" +
		"    quantity: 1\n" +
		"    stackable: true\n" +
		"    allow_rotate: false\n" +
		"    bottom_only: true\n")

	s, err := DecodeYAML(data)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, s.Container.MaxWeight)
	assert.Equal(t, model.ContainerTypeTruck, s.Container.Type)

	require.Len(t, s.Cargo, 1)
	assert.True(t, s.Cargo[0].Stackable)
	assert.False(t, s.Cargo[0].AllowRotate)
	assert.True(t, s.Cargo[0].BottomOnly)
}

func TestDecodeJSONPreservesExplicitRules(t *testing.T) {
	data := []byte(`{"container":{"length":1,"width":1,"height":1,"max_weight":1},"cargo":[],"rules":[{"id":"r1","kind":"priority_first","enabled":true,"priority":10}]}`)
	s, err := DecodeJSON(data)
	require.NoError(t, err)
	require.Len(t, s.Rules, 1)
	assert.Equal(t, "r1", s.Rules[0].ID)
}
