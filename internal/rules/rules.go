// Package rules implements the rule pipeline of spec §4.5: a composable,
// stable, multi-key sort over cargo singletons. Each enabled rule is a
// closed variant (model.RuleKind) contributing one or more sort keys,
// concatenated in descending rule-priority order. This mirrors the
// teacher's closed rotationStrategy enum in its optimizer rather than an
// interface-per-rule collection, per the spec's "avoid a trait-object
// collection" design note.
package rules

import (
	"math"
	"sort"

	"github.com/piwi3910/loadplan/internal/model"
)

// key is one rule's contribution to a singleton's composite sort key.
// Rules contribute one or more floats; smaller sorts earlier.
type key []float64

// compare returns -1, 0, 1 comparing a to b lexicographically.
func compare(a, b key) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func keyFor(rule model.LoadingRule, item model.Cargo) key {
	switch rule.Kind {
	case model.RulePriorityFirst:
		return key{-float64(item.Priority)}
	case model.RuleHeavyBottom:
		threshold := rule.HeavyBottomThresholdKg
		if threshold == 0 {
			threshold = model.DefaultHeavyBottomThresholdKg
		}
		bucket := 1.0
		if item.Weight >= threshold {
			bucket = 0
		}
		return key{bucket, -item.Weight}
	case model.RuleVolumeFirst:
		return key{-(item.Length * item.Width * item.Height)}
	case model.RuleSimilarSizeStack:
		return key{-item.Length}
	case model.RuleSameSizeFirst:
		bucket := rule.SameSizeBucketCM
		if bucket == 0 {
			bucket = model.DefaultSameSizeBucketCM
		}
		return key{
			-roundTo(item.Length, bucket),
			-roundTo(item.Width, bucket),
			-roundTo(item.Height, bucket),
		}
	default:
		return key{}
	}
}

func roundTo(v, bucket float64) float64 {
	return math.Round(v/bucket) * bucket
}

// Apply reorders items by the enabled rules in enabledRules, highest
// priority first, each rule's key appended to the composite key in that
// order. The sort is stable: ties preserve input order. Apply never
// mutates items, and two invocations with the same inputs yield the same
// order (§4.5 contract, §8 idempotence property).
func Apply(enabledRules []model.LoadingRule, items []model.Cargo) []model.Cargo {
	active := make([]model.LoadingRule, 0, len(enabledRules))
	for _, r := range enabledRules {
		if r.Enabled {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})

	keys := make([]key, len(items))
	for i, item := range items {
		var composite key
		for _, r := range active {
			composite = append(composite, keyFor(r, item)...)
		}
		keys[i] = composite
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return compare(keys[order[i]], keys[order[j]]) < 0
	})

	out := make([]model.Cargo, len(items))
	for i, idx := range order {
		out[i] = items[idx]
	}
	return out
}
