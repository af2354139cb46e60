// Package analytics implements the post-placement analytics of spec
// §4.11: center-of-gravity, utilization statistics, loading-step
// derivation with positional descriptors, tail-space analysis, and the
// securing advisor heuristic.
package analytics

import (
	"fmt"
	"math"

	"github.com/piwi3910/loadplan/internal/model"
)

// CoGStatus classifies the lateral center-of-gravity offset.
type CoGStatus string

const (
	CoGGood   CoGStatus = "good"
	CoGBiased CoGStatus = "biased"
)

// Statistics is the §6 Statistics output shape.
type Statistics struct {
	LoadedCount               int       `json:"loaded_count"`
	TotalVolume               float64   `json:"total_volume"`
	VolumeUtilization         float64   `json:"volume_utilization"`
	TotalWeight               float64   `json:"total_weight"`
	WeightUtilization         float64   `json:"weight_utilization"`
	CoGX, CoGY, CoGZ          float64   `json:"-"`
	OffsetX, OffsetY, OffsetZ float64   `json:"-"`
	CoGStatus                 CoGStatus `json:"cog_status"`
}

// CenterOfGravity returns the mass-weighted mean of placement centers. For
// an empty placement list it returns the container's geometric center with
// zero offset, so analytics never fails on empty input.
func CenterOfGravity(container model.Container, placements []model.Placement) (x, y, z float64) {
	var totalMass, sx, sy, sz float64
	for _, p := range placements {
		cx, cy, cz := p.Center()
		totalMass += p.Cargo.Weight
		sx += cx * p.Cargo.Weight
		sy += cy * p.Cargo.Weight
		sz += cz * p.Cargo.Weight
	}
	if totalMass == 0 {
		return container.Length / 2, container.Width / 2, container.Height / 2
	}
	return sx / totalMass, sy / totalMass, sz / totalMass
}

// CoGOffset returns CoG minus the container's geometric center.
func CoGOffset(container model.Container, cogX, cogY, cogZ float64) (dx, dy, dz float64) {
	return cogX - container.Length/2, cogY - container.Width/2, cogZ - container.Height/2
}

// cogStatusThreshold is the fraction of the corresponding container
// dimension within which the lateral offset is considered "good" (§4.11).
const cogStatusThreshold = 0.1

func cogStatus(container model.Container, offsetX, offsetY float64) CoGStatus {
	if math.Abs(offsetX) < cogStatusThreshold*container.Length && math.Abs(offsetY) < cogStatusThreshold*container.Width {
		return CoGGood
	}
	return CoGBiased
}

// Compute derives the full Statistics for a container and its placements.
func Compute(container model.Container, placements []model.Placement) Statistics {
	var totalVolume, totalWeight float64
	for _, p := range placements {
		totalVolume += p.Cargo.Length * p.Cargo.Width * p.Cargo.Height
		totalWeight += p.Cargo.Weight
	}

	cogX, cogY, cogZ := CenterOfGravity(container, placements)
	offX, offY, offZ := CoGOffset(container, cogX, cogY, cogZ)

	var volUtil, weightUtil float64
	if v := container.Volume(); v > 0 {
		volUtil = totalVolume / v
	}
	if container.MaxWeight > 0 {
		weightUtil = totalWeight / container.MaxWeight
	}

	return Statistics{
		LoadedCount:       len(placements),
		TotalVolume:       totalVolume,
		VolumeUtilization: volUtil,
		TotalWeight:       totalWeight,
		WeightUtilization: weightUtil,
		CoGX:              cogX,
		CoGY:              cogY,
		CoGZ:              cogZ,
		OffsetX:           offX,
		OffsetY:           offY,
		OffsetZ:           offZ,
		CoGStatus:         cogStatus(container, offX, offY),
	}
}

// PositionDescriptor is a human-readable positional tag derived from a
// placement's coordinates relative to the container (§4.11).
type PositionDescriptor string

// LoadingStep is the §6 LoadingStep output shape.
type LoadingStep struct {
	Step               int                `json:"step"`
	CargoName          string             `json:"cargo_name"`
	Dimensions         string             `json:"dimensions"`
	X, Y, Z            float64            `json:"-"`
	PositionDescriptor PositionDescriptor `json:"position_descriptor"`
	Rotated            bool               `json:"rotated"`
	SecuringNote       string             `json:"securing_note"`
}

const (
	heavyWeightKg  = 500.0
	tailBraceLastN = 3
	lateralGapCM   = 50.0
)

func describePosition(container model.Container, p model.Placement) PositionDescriptor {
	var depth string
	third := container.Length / 3
	switch {
	case p.X < third:
		depth = "head"
	case p.X < 2*third:
		depth = "middle"
	default:
		depth = "tail"
	}

	var side string
	if p.Y < container.Width/2 {
		side = "left"
	} else {
		side = "right"
	}

	var level string
	half := container.Height / 2
	switch {
	case p.Z+p.Cargo.Height/2 < half*2.0/3.0:
		level = "bottom"
	case p.Z+p.Cargo.Height/2 < half*4.0/3.0:
		level = "middle"
	default:
		level = "top"
	}

	return PositionDescriptor(fmt.Sprintf("%s-%s-%s", depth, side, level))
}

// securingNote builds the per-item securing advice string (§4.11): floor
// anchoring if z=0, strap restraint above heavyWeightKg, tail bracing for
// the last tailBraceLastN loading steps, and do-not-stack when the item is
// not stackable.
func securingNote(p model.Placement, totalSteps int) string {
	var parts []string
	if p.Z <= 0.01 {
		parts = append(parts, "floor anchoring")
	}
	if p.Cargo.Weight > heavyWeightKg {
		parts = append(parts, "strap restraint")
	}
	if totalSteps-p.StepNumber < tailBraceLastN {
		parts = append(parts, "tail bracing")
	}
	if !p.Cargo.Stackable {
		parts = append(parts, "do not stack")
	}
	note := ""
	for i, s := range parts {
		if i > 0 {
			note += "; "
		}
		note += s
	}
	return note
}

// LoadingSteps derives the ordered loading-step records for a container's
// placements, sorted by step number.
func LoadingSteps(container model.Container, placements []model.Placement) []LoadingStep {
	sorted := make([]model.Placement, len(placements))
	copy(sorted, placements)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].StepNumber < sorted[j-1].StepNumber; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	steps := make([]LoadingStep, len(sorted))
	for i, p := range sorted {
		steps[i] = LoadingStep{
			Step:               p.StepNumber,
			CargoName:          p.Cargo.Name,
			Dimensions:         fmt.Sprintf("%gx%gx%g", p.Cargo.Length, p.Cargo.Width, p.Cargo.Height),
			X:                  p.X,
			Y:                  p.Y,
			Z:                  p.Z,
			PositionDescriptor: describePosition(container, p),
			Rotated:            p.Rotated,
			SecuringNote:       securingNote(p, len(sorted)),
		}
	}
	return steps
}

// TailSpace holds the tail-space analysis results of §4.11.
type TailSpace struct {
	// NoseToTailGap is the residual gap between the farthest placement and
	// the container's far wall along the length axis.
	NoseToTailGap float64
	// LateralGaps lists, for each last-row placement (whose right face lies
	// within lateralGapCM of the load's farthest extent along the length
	// axis), the lateral gap beside it.
	LateralGaps []float64
	// Headroom lists, for each last-row placement, the vertical clearance
	// above it.
	Headroom []float64
	// Stacked reports, in the same order as LateralGaps/Headroom, whether
	// each last-row placement sits above floor level.
	Stacked []bool
}

// AnalyzeTailSpace computes the residual gaps at the back of the
// container, used to drive the securing advisor's tail-specific advice.
func AnalyzeTailSpace(container model.Container, placements []model.Placement) TailSpace {
	var maxX float64
	for _, p := range placements {
		if m := p.X + p.EffectiveLength(); m > maxX {
			maxX = m
		}
	}

	ts := TailSpace{NoseToTailGap: container.Length - maxX}

	for _, p := range placements {
		right := p.X + p.EffectiveLength()
		if maxX-right <= lateralGapCM {
			lateralGap := container.Width - (p.Y + p.EffectiveWidth())
			ts.LateralGaps = append(ts.LateralGaps, lateralGap)
			ts.Headroom = append(ts.Headroom, container.Height-p.Top())
			ts.Stacked = append(ts.Stacked, p.Z > 0.01)
		}
	}

	return ts
}

// tailGapThreshold is the residual nose-to-tail gap, in cm, above which the
// load is considered to have meaningful unsecured travel room at the back.
const tailGapThreshold = 5.0

// TailAdvice enumerates the rule-based tail-specific securing advice of
// §4.11: it is keyed on the gap classification from AnalyzeTailSpace and on
// the container's logistic tag, since a flatbed truck and a sealed
// shipping container call for different bracing language even given the
// same residual gap.
func TailAdvice(container model.Container, ts TailSpace) []string {
	var advice []string

	if ts.NoseToTailGap > tailGapThreshold {
		switch container.Type {
		case model.ContainerTypeTruck:
			advice = append(advice, fmt.Sprintf("brace load against tailgate, %.0fcm of travel room at the nose-to-tail gap", ts.NoseToTailGap))
		case model.ContainerTypePallet:
			advice = append(advice, fmt.Sprintf("wrap or strap pallet overhang, %.0fcm residual gap", ts.NoseToTailGap))
		default:
			advice = append(advice, fmt.Sprintf("install load bar or dunnage bag, %.0fcm residual gap at container doors", ts.NoseToTailGap))
		}
	}

	for i, gap := range ts.LateralGaps {
		if gap <= 0 {
			continue
		}
		if ts.Stacked[i] {
			advice = append(advice, fmt.Sprintf("lateral void beside a stacked row (%.0fcm) — fill with dunnage before the stack can shift", gap))
		} else {
			advice = append(advice, fmt.Sprintf("lateral void beside last row (%.0fcm) — brace or fill", gap))
		}
	}

	for _, headroom := range ts.Headroom {
		if headroom > 0 && headroom < lateralGapCM {
			advice = append(advice, fmt.Sprintf("limited headroom above last row (%.0fcm) — anti-shift strap recommended", headroom))
		}
	}

	return advice
}
