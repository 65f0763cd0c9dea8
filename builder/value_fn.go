// Package builder: element generators for the Random* constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueFn produces one element given an optional *rand.Rand source.
// It must be deterministic for a given RNG state. With a nil RNG every
// generator below returns a fixed fallback instead of panicking.
type ValueFn func(rng *rand.Rand) float64

// ConstantValueFn always yields value.
// Complexity: O(1).
func ConstantValueFn(value float64) ValueFn {
	return func(_ *rand.Rand) float64 { return value }
}

// IntRangeValueFn samples integers uniformly in [lo, hi] inclusive.
// Panics if hi < lo. A nil RNG yields lo.
func IntRangeValueFn(lo, hi int) ValueFn {
	if hi < lo {
		panic(fmt.Sprintf("IntRangeValueFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// UniformValueFn samples uniformly in [min, max).
// Panics if max < min. A nil RNG yields min.
func UniformValueFn(min, max float64) ValueFn {
	if max < min {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalValueFn samples from N(mean, stddev).
// Panics if stddev < 0 or is NaN. A nil RNG yields mean.
func NormalValueFn(mean, stddev float64) ValueFn {
	if stddev < 0 || math.IsNaN(stddev) {
		panic(fmt.Sprintf("NormalValueFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return rng.NormFloat64()*stddev + mean
	}
}
