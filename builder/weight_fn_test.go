package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdoulaye05/Smart-GPS/builder"
)

func TestWeightFnConstructorsPanic(t *testing.T) {
	for name, fn := range map[string]func(){
		"Constant_negative":   func() { builder.ConstantWeightFn(-1) },
		"Uniform_minNegative": func() { builder.UniformWeightFn(-1, 5) },
		"Uniform_maxBelowMin": func() { builder.UniformWeightFn(5, 4) },
		"Congestion_factor":   func() { builder.CongestionWeightFn(0.5, 0.5) },
		"Congestion_ratio":    func() { builder.CongestionWeightFn(2, 1.5) },
	} {
		assert.Panics(t, fn, name)
	}
}

func TestWeightFnBehavior(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, 1.0, builder.DefaultWeightFn(rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))

	uni := builder.UniformWeightFn(1, 3)
	assert.Equal(t, 1.0, uni(nil))
	for i := 0; i < 100; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, 1.0)
		assert.Less(t, w, 3.0)
	}

	assert.Equal(t, 1.0, builder.CongestionWeightFn(3, 1)(nil))
	assert.Equal(t, 3.0, builder.CongestionWeightFn(3, 1)(rng))
	assert.Equal(t, 1.0, builder.CongestionWeightFn(3, 0)(rng))

	congested := 0
	fn := builder.CongestionWeightFn(2, 0.3)
	for i := 0; i < 1000; i++ {
		if fn(rng) == 2 {
			congested++
		}
	}
	assert.InDelta(t, 300, congested, 60)
}
