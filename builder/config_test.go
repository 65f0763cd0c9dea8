// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConfigDefaults verifies the deterministic defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.Equal(t, 0, cfg.maxSize)
	require.Equal(t, 1, nth[int](cfg, 0))
	require.Equal(t, 5, nth[int](cfg, 4))
	require.Equal(t, float64(defaultLow), cfg.valueFn(nil))
}

// TestConfigLastWins verifies in-order application and nil skipping.
func TestConfigLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithStart(10), WithStep(2), WithStart(0), nil, WithMaxSize(4), WithMaxSize(8))
	require.Equal(t, 0.0, cfg.start)
	require.Equal(t, 2.0, cfg.step)
	require.Equal(t, 8, cfg.maxSize)
	require.Equal(t, 6.0, nth[float64](cfg, 3))
}

// TestRNGOptions verifies WithSeed reproducibility and WithRand identity.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	require.NotNil(t, a.rng)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	require.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

// TestDrawUsesValueFn checks that draw converts the generated float64.
func TestDrawUsesValueFn(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithValueFn(ConstantValueFn(2.75)))
	require.Equal(t, 2.75, draw[float64](cfg))
	require.Equal(t, 2, draw[int](cfg)) // truncation toward zero
}

// TestOptionPanics covers the programmer-error guards.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithValueFn(nil) })
	require.Panics(t, func() { WithRange(3, 2) })
	require.Panics(t, func() { WithMaxSize(0) })
	require.NotPanics(t, func() { WithRange(2, 2) })
}
