package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfigDefaults(t *testing.T) {
	cfg := newBuilderConfig()

	assert.Nil(t, cfg.rng)
	assert.Equal(t, DefaultSpacing, cfg.spacing)
	assert.Equal(t, DefaultAvgDegree, cfg.avgDegree)
	assert.Equal(t, DefaultInterClusterLinks, cfg.interClusterLinks)
	assert.Equal(t, 1.0, cfg.weightFn(nil))
	assert.Empty(t, cfg.label(3, nil))
	assert.Equal(t, "V3", cfg.label(3, DefaultLabelFn))
}

func TestOptionsApplyInOrder(t *testing.T) {
	cfg := newBuilderConfig(
		WithSpacing(2), WithSpacing(5),
		WithLabelScheme(PrefixLabelFn("x")),
		WithArea(10, 20), WithMinDistance(0), WithAvgDegree(3),
		WithClusterRadius(7), WithWorldSize(70), WithInterClusterLinks(0),
		WithDiagonals(), WithNoise(0.5), WithRandomLinks(),
	)

	assert.Equal(t, 5.0, cfg.spacing)
	assert.Equal(t, "x4", cfg.label(4, DefaultLabelFn))
	assert.Equal(t, 10.0, cfg.width)
	assert.Equal(t, 20.0, cfg.height)
	assert.Zero(t, cfg.minDistance)
	assert.Equal(t, 3.0, cfg.avgDegree)
	assert.Equal(t, 7.0, cfg.clusterRadius)
	assert.Equal(t, 70.0, cfg.worldSize)
	assert.Zero(t, cfg.interClusterLinks)
	assert.True(t, cfg.diagonals)
	assert.True(t, cfg.randomLinks)
	assert.Equal(t, 0.5, cfg.noise)
}

func TestSeedAndRand(t *testing.T) {
	a := newBuilderConfig(WithSeed(9))
	b := newBuilderConfig(WithSeed(9))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	assert.Equal(t, int64(9), a.seed)

	// Weight draws come from their own stream and leave the layout stream alone.
	c := newBuilderConfig(WithSeed(9))
	require.NotNil(t, c.weightRng)
	assert.NotSame(t, c.rng, c.weightRng)
	for i := 0; i < 5; i++ {
		c.weightRng.Float64()
	}
	assert.Equal(t, rand.New(rand.NewSource(9)).Int63(), c.rng.Int63())

	r := rand.New(rand.NewSource(1))
	rc := newBuilderConfig(WithRand(r))
	assert.Same(t, r, rc.rng)
	assert.NotNil(t, rc.weightRng)
	assert.Nil(t, newBuilderConfig().weightRng)

	s := newBuilderConfig(WithStreetNames())
	assert.True(t, s.streetNames)
	assert.NotNil(t, s.labelFn)
}

func TestOptionPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"WithRand":              func() { WithRand(nil) },
		"WithLabelScheme":       func() { WithLabelScheme(nil) },
		"WithWeightFn":          func() { WithWeightFn(nil) },
		"WithSpacing":           func() { WithSpacing(0) },
		"WithNoise":             func() { WithNoise(1.5) },
		"WithArea":              func() { WithArea(0, 1) },
		"WithMinDistance":       func() { WithMinDistance(-1) },
		"WithAvgDegree":         func() { WithAvgDegree(0.5) },
		"WithClusterRadius":     func() { WithClusterRadius(-1) },
		"WithWorldSize":         func() { WithWorldSize(0) },
		"WithInterClusterLinks": func() { WithInterClusterLinks(-1) },
	} {
		assert.Panics(t, fn, name)
	}
}
