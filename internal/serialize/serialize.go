// Package serialize implements the §6 external interchange format: the
// JSON shape consumed by surrounding tooling, plus a scenario document
// decoder (JSON or YAML) that drives the cmd/loadplan CLI. Neither format
// is read by the engine itself; both exist purely for interop, per the
// spec's "does not read files" note.
package serialize

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/loadplan/internal/analytics"
	"github.com/piwi3910/loadplan/internal/model"
)

// position is the {x,y,z} shape embedded in each step.
type position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// step is the §6 LoadingStep wire shape.
type step struct {
	Step               int                          `json:"step"`
	CargoName          string                       `json:"cargo_name"`
	Dimensions         string                       `json:"dimensions"`
	Weight             float64                      `json:"weight"`
	Position           position                     `json:"position"`
	PositionDescriptor analytics.PositionDescriptor `json:"position_descriptor"`
	Rotated            bool                         `json:"rotated"`
	SecuringNote       string                       `json:"securing_note,omitempty"`
}

// statistics is the §6 Statistics wire shape.
type statistics struct {
	LoadedCount       int     `json:"loaded_count"`
	TotalVolume       float64 `json:"total_volume"`
	VolumeUtilization float64 `json:"volume_utilization"`
	TotalWeight       float64 `json:"total_weight"`
	WeightUtilization float64 `json:"weight_utilization"`
}

// cog is the §6 cog/cog_offset wire shape.
type cog struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Document is the single-container top-level wire shape.
type Document struct {
	Container       model.Container `json:"container"`
	Statistics      statistics      `json:"statistics"`
	CenterOfGravity cog             `json:"center_of_gravity"`
	CoGOffset       cog             `json:"cog_offset"`
	LoadingSteps    []step          `json:"loading_steps"`
	Unplaced        []string        `json:"unplaced,omitempty"`
}

func toStep(s analytics.LoadingStep, weight float64) step {
	return step{
		Step:               s.Step,
		CargoName:          s.CargoName,
		Dimensions:         s.Dimensions,
		Weight:             weight,
		Position:           position{X: s.X, Y: s.Y, Z: s.Z},
		PositionDescriptor: s.PositionDescriptor,
		Rotated:            s.Rotated,
		SecuringNote:       s.SecuringNote,
	}
}

// BuildDocument assembles the §6 single-container serialization document
// from a container loading result's placements and unplaced list.
func BuildDocument(container model.Container, placements []model.Placement, unplaced []model.Unplaced) Document {
	stats := analytics.Compute(container, placements)
	steps := analytics.LoadingSteps(container, placements)

	weightByStep := make(map[int]float64, len(placements))
	for _, p := range placements {
		weightByStep[p.StepNumber] = p.Cargo.Weight
	}

	wireSteps := make([]step, len(steps))
	for i, s := range steps {
		wireSteps[i] = toStep(s, weightByStep[s.Step])
	}

	names := make([]string, len(unplaced))
	for i, u := range unplaced {
		names[i] = fmt.Sprintf("%s (%s)", u.Cargo.Name, u.Reason)
	}

	return Document{
		Container:       container,
		Statistics:      statistics{stats.LoadedCount, stats.TotalVolume, stats.VolumeUtilization, stats.TotalWeight, stats.WeightUtilization},
		CenterOfGravity: cog{stats.CoGX, stats.CoGY, stats.CoGZ},
		CoGOffset:       cog{stats.OffsetX, stats.OffsetY, stats.OffsetZ},
		LoadingSteps:    wireSteps,
		Unplaced:        names,
	}
}

// MultiDocument is the §6 multi-container variant's top-level wire shape.
type MultiDocument struct {
	MultiContainer bool           `json:"multi_container"`
	ContainerCount int            `json:"container_count"`
	Containers     []ContainerDoc `json:"containers"`
	Remainder      []string       `json:"remainder,omitempty"`
}

// ContainerDoc is one entry of MultiDocument's containers array.
type ContainerDoc struct {
	Container  model.Container `json:"container"`
	Statistics statistics      `json:"statistics"`
	Cargos     []step          `json:"cargos"`
}

// BuildMultiDocument assembles the §6 multi-container serialization
// document from an ordered list of per-container results and the final
// unplaced remainder.
func BuildMultiDocument(results []model.ContainerLoadingResult, remainder []model.Cargo) MultiDocument {
	containers := make([]ContainerDoc, len(results))
	for i, r := range results {
		stats := analytics.Compute(r.Container, r.Placements)
		steps := analytics.LoadingSteps(r.Container, r.Placements)

		weightByStep := make(map[int]float64, len(r.Placements))
		for _, p := range r.Placements {
			weightByStep[p.StepNumber] = p.Cargo.Weight
		}

		wireSteps := make([]step, len(steps))
		for j, s := range steps {
			wireSteps[j] = toStep(s, weightByStep[s.Step])
		}

		containers[i] = ContainerDoc{
			Container:  r.Container,
			Statistics: statistics{stats.LoadedCount, stats.TotalVolume, stats.VolumeUtilization, stats.TotalWeight, stats.WeightUtilization},
			Cargos:     wireSteps,
		}
	}

	names := make([]string, len(remainder))
	for i, c := range remainder {
		names[i] = c.Name
	}

	return MultiDocument{
		MultiContainer: true,
		ContainerCount: len(results),
		Containers:     containers,
		Remainder:      names,
	}
}

// ToJSON marshals any document to indented JSON, the format interop
// tooling expects per §6.
func ToJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Scenario is the supplemented CLI input document: a container spec, a
// cargo list, optional groups and rules, and an optional container count
// for multi-container runs. It carries no palletization directive. It is
// decoded from JSON or YAML (cmd/loadplan picks the codec by file
// extension).
type Scenario struct {
	Container      model.Container     `json:"container" yaml:"container"`
	Cargo          []model.Cargo       `json:"cargo" yaml:"cargo"`
	Groups         []model.CargoGroup  `json:"groups,omitempty" yaml:"groups,omitempty"`
	Rules          []model.LoadingRule `json:"rules,omitempty" yaml:"rules,omitempty"`
	ContainerCount int                 `json:"container_count,omitempty" yaml:"container_count,omitempty"`
}

// DecodeJSON decodes a Scenario from JSON bytes.
func DecodeJSON(data []byte) (Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario json: %w", err)
	}
	return normalizeScenario(s), nil
}

// DecodeYAML decodes a Scenario from YAML bytes.
func DecodeYAML(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario yaml: %w", err)
	}
	return normalizeScenario(s), nil
}

// normalizeScenario fills in defaults a hand-written scenario document is
// likely to omit: a container count of 1 and the five built-in rules
// enabled at their default priorities. It also marks each group that
// supplies all four combined_* values as carrying explicit combined dims.
func normalizeScenario(s Scenario) Scenario {
	if s.ContainerCount == 0 {
		s.ContainerCount = 1
	}
	for i := range s.Groups {
		g := &s.Groups[i]
		if g.CombinedL > 0 && g.CombinedW > 0 && g.CombinedH > 0 && g.CombinedMass > 0 {
			g.HasCombined = true
		}
	}
	if len(s.Rules) == 0 {
		s.Rules = model.DefaultRules()
	}
	return s
}
