// Package model holds the data-typed surface of the loading engine:
// containers, cargo, groups, rules, placements and statistics. It carries
// no behavior beyond simple derived accessors — the packing algorithms
// live in their own packages and treat these types as read-only input or
// driver-owned output, per the lifecycle rules in the spec's data model.
package model

import "github.com/google/uuid"

// ContainerType tags the logistic role of a container.
type ContainerType string

const (
	ContainerTypeContainer ContainerType = "container"
	ContainerTypeTruck     ContainerType = "truck"
	ContainerTypePallet    ContainerType = "pallet"
)

// Container is a rigid rectangular volume cargo is loaded into.
type Container struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Length      float64       `json:"length" yaml:"length"`         // cm
	Width       float64       `json:"width" yaml:"width"`           // cm
	Height      float64       `json:"height" yaml:"height"`         // cm
	MaxWeight   float64       `json:"max_weight" yaml:"max_weight"` // kg
	Type        ContainerType `json:"container_type" yaml:"container_type"`
	Description string        `json:"description" yaml:"description"`
}

// Volume returns the container's interior volume in cubic cm.
func (c Container) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// NewContainer builds a container with a generated ID, matching the
// teacher's NewPart/NewStockSheet constructor convention.
func NewContainer(name string, length, width, height, maxWeight float64, typ ContainerType) Container {
	return Container{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Length:    length,
		Width:     width,
		Height:    height,
		MaxWeight: maxWeight,
		Type:      typ,
	}
}

// PalletContent is a cargo item placed inside a synthetic pallet item, in
// pallet-local coordinates where z=0 is the pallet deck top, not the floor.
type PalletContent struct {
	Cargo   Cargo   `json:"cargo" yaml:"cargo"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Z       float64 `json:"z" yaml:"z"`
	Rotated bool    `json:"rotated" yaml:"rotated"`
}

// Cargo is a single cargo item definition as supplied by the caller. The
// engine treats cargo as read-only; placements are produced separately.
type Cargo struct {
	ID               string          `json:"id" yaml:"id"`
	Name             string          `json:"name" yaml:"name"`
	Length           float64         `json:"length" yaml:"length"` // cm
	Width            float64         `json:"width" yaml:"width"`   // cm
	Height           float64         `json:"height" yaml:"height"` // cm
	Weight           float64         `json:"weight" yaml:"weight"` // kg, per unit
	Quantity         int             `json:"quantity" yaml:"quantity"`
	Stackable        bool            `json:"stackable" yaml:"stackable"`
	AllowRotate      bool            `json:"allow_rotate" yaml:"allow_rotate"`
	BottomOnly       bool            `json:"bottom_only" yaml:"bottom_only"`
	Priority         int             `json:"priority" yaml:"priority"`
	Color            string          `json:"color" yaml:"color"`
	GroupID          string          `json:"group_id,omitempty" yaml:"group_id,omitempty"`
	IsPallet         bool            `json:"is_pallet" yaml:"is_pallet"`
	PalletBaseHeight float64         `json:"pallet_base_height,omitempty" yaml:"pallet_base_height,omitempty"`
	PalletContents   []PalletContent `json:"pallet_contents,omitempty" yaml:"pallet_contents,omitempty"`
}

// DefaultPalletBaseHeight is the deck thickness assumed when a pallet item
// does not specify one explicitly.
const DefaultPalletBaseHeight = 15.0

// NewCargo builds a cargo item with a generated ID and sensible defaults
// (stackable, rotatable, not bottom-only), mirroring the teacher's
// NewPart convention.
func NewCargo(name string, length, width, height, weight float64, quantity int) Cargo {
	return Cargo{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Length:      length,
		Width:       width,
		Height:      height,
		Weight:      weight,
		Quantity:    quantity,
		Stackable:   true,
		AllowRotate: true,
	}
}

// Dims returns the cargo's outer dimensions as a geometry.Box-shaped triple.
// Kept as plain fields here (not importing geometry) so model stays a leaf
// package with no dependency on the algorithm packages.
func (c Cargo) Dims() (length, width, height float64) {
	return c.Length, c.Width, c.Height
}

// CargoGroup binds a set of cargo item ids into a single locked unit that
// the group expander folds into one synthetic item before placement.
type CargoGroup struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	CargoIDs     []string `json:"cargo_ids" yaml:"cargo_ids"`
	CombinedL    float64  `json:"combined_length,omitempty" yaml:"combined_length,omitempty"`
	CombinedW    float64  `json:"combined_width,omitempty" yaml:"combined_width,omitempty"`
	CombinedH    float64  `json:"combined_height,omitempty" yaml:"combined_height,omitempty"`
	CombinedMass float64  `json:"combined_weight,omitempty" yaml:"combined_weight,omitempty"`
	HasCombined  bool     `json:"-" yaml:"-"` // true when explicit combined dims/mass were supplied
}

// RuleKind identifies one of the five built-in rule pipeline rules (§4.5).
type RuleKind string

const (
	RulePriorityFirst    RuleKind = "priority_first"
	RuleHeavyBottom      RuleKind = "heavy_bottom"
	RuleVolumeFirst      RuleKind = "volume_first"
	RuleSimilarSizeStack RuleKind = "similar_size_stack"
	RuleSameSizeFirst    RuleKind = "same_size_first"
)

// LoadingRule is a single enabled/disabled, prioritized pipeline stage.
type LoadingRule struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Kind        RuleKind `json:"kind" yaml:"kind"`
	Enabled     bool     `json:"enabled" yaml:"enabled"`
	Priority    int      `json:"priority" yaml:"priority"`

	// HeavyBottomThresholdKg is the mass threshold used by heavy_bottom (§4.5).
	HeavyBottomThresholdKg float64 `json:"heavy_bottom_threshold_kg,omitempty" yaml:"heavy_bottom_threshold_kg,omitempty"`
	// SameSizeBucketCM is the rounding bucket used by same_size_first (§4.5).
	SameSizeBucketCM float64 `json:"same_size_bucket_cm,omitempty" yaml:"same_size_bucket_cm,omitempty"`
}

// DefaultHeavyBottomThresholdKg is the default mass threshold for heavy_bottom.
const DefaultHeavyBottomThresholdKg = 100.0

// DefaultSameSizeBucketCM is the default bucket size for same_size_first.
const DefaultSameSizeBucketCM = 10.0

// DefaultRules returns the five built-in rules enabled with the default
// priorities from §4.5.
func DefaultRules() []LoadingRule {
	return []LoadingRule{
		{ID: "priority_first", Name: "Priority First", Kind: RulePriorityFirst, Enabled: true, Priority: 100},
		{ID: "heavy_bottom", Name: "Heavy Bottom", Kind: RuleHeavyBottom, Enabled: true, Priority: 80,
			HeavyBottomThresholdKg: DefaultHeavyBottomThresholdKg},
		{ID: "similar_size_stack", Name: "Similar Size Stack", Kind: RuleSimilarSizeStack, Enabled: true, Priority: 60},
		{ID: "same_size_first", Name: "Same Size First", Kind: RuleSameSizeFirst, Enabled: true, Priority: 50,
			SameSizeBucketCM: DefaultSameSizeBucketCM},
		{ID: "volume_first", Name: "Volume First", Kind: RuleVolumeFirst, Enabled: true, Priority: 40},
	}
}

// Placement is a committed anchor position for a singleton cargo item.
type Placement struct {
	Cargo          Cargo   `json:"cargo"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Z              float64 `json:"z"`
	Rotated        bool    `json:"rotated"`
	StepNumber     int     `json:"step_number"`
	ContainerIndex int     `json:"container_index"`
}

// EffectiveLength returns the footprint length under the placement's rotation.
func (p Placement) EffectiveLength() float64 {
	if p.Rotated {
		return p.Cargo.Width
	}
	return p.Cargo.Length
}

// EffectiveWidth returns the footprint width under the placement's rotation.
func (p Placement) EffectiveWidth() float64 {
	if p.Rotated {
		return p.Cargo.Length
	}
	return p.Cargo.Width
}

// Top returns the Z coordinate of the placement's top face.
func (p Placement) Top() float64 {
	return p.Z + p.Cargo.Height
}

// Center returns the geometric center of the placed box.
func (p Placement) Center() (x, y, z float64) {
	return p.X + p.EffectiveLength()/2, p.Y + p.EffectiveWidth()/2, p.Z + p.Cargo.Height/2
}

// UnplacedReason classifies why a cargo singleton could not be placed (§7).
type UnplacedReason string

const (
	ReasonItemTooLarge UnplacedReason = "item-too-large"
	ReasonNoFit        UnplacedReason = "no-fit"
)

// Unplaced pairs a cargo singleton with the reason it was not placed.
type Unplaced struct {
	Cargo  Cargo          `json:"cargo"`
	Reason UnplacedReason `json:"reason"`
}

// ContainerLoadingResult is one container instance paired with its placements.
type ContainerLoadingResult struct {
	Container  Container   `json:"container"`
	Placements []Placement `json:"placements"`
}

// TotalVolume returns the summed volume of all placed cargo.
func (r ContainerLoadingResult) TotalVolume() float64 {
	var total float64
	for _, p := range r.Placements {
		total += p.Cargo.Length * p.Cargo.Width * p.Cargo.Height
	}
	return total
}

// TotalWeight returns the summed weight of all placed cargo.
func (r ContainerLoadingResult) TotalWeight() float64 {
	var total float64
	for _, p := range r.Placements {
		total += p.Cargo.Weight
	}
	return total
}

// VolumeUtilization returns TotalVolume / container volume, or 0 for a
// zero-volume container.
func (r ContainerLoadingResult) VolumeUtilization() float64 {
	v := r.Container.Volume()
	if v == 0 {
		return 0
	}
	return r.TotalVolume() / v
}

// WeightUtilization returns TotalWeight / container max weight, or 0 for a
// non-positive max weight.
func (r ContainerLoadingResult) WeightUtilization() float64 {
	if r.Container.MaxWeight <= 0 {
		return 0
	}
	return r.TotalWeight() / r.Container.MaxWeight
}
