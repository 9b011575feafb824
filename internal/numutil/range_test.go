package numutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestEnsureRange(t *testing.T) {
	tests := []struct {
		name       string
		sample     float64
		min, max   *float64
		exMin      bool
		exMax      bool
		multipleOf *float64
		want       float64
	}{
		{name: "no bounds", sample: 100, want: 100},
		{name: "raised to minimum", sample: 10, min: ptr(100), want: 100},
		{name: "exclusive minimum", sample: 10, min: ptr(100), exMin: true, want: 101},
		{name: "lowered to maximum", sample: 100, max: ptr(50), want: 50},
		{name: "exclusive maximum", sample: 100, max: ptr(50), exMax: true, want: 49},
		{name: "inside exclusive bounds", sample: 40, min: ptr(10), max: ptr(50), exMin: true, exMax: true, want: 40},
		{name: "multiple of", sample: 10, multipleOf: ptr(3), want: 9},
		{name: "multiple of one is ignored", sample: 10.5, multipleOf: ptr(1), want: 10.5},
		{name: "fractional multiple", sample: 0.7, multipleOf: ptr(0.1), want: 0.7},
		{name: "negative sample rounds down", sample: -7, multipleOf: ptr(3), want: -9},
		{name: "absent maximum takes minimum", sample: 32, min: ptr(5), want: 5},
		{name: "exclusive minimum without minimum", sample: 5, exMin: true, want: 5},
		{name: "exclusive maximum without maximum", sample: 5, exMax: true, want: 5},
		{name: "clamp then multiple", sample: 64, min: ptr(1), max: ptr(20), multipleOf: ptr(6), want: 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureRange(tt.sample, tt.min, tt.max, tt.exMin, tt.exMax, tt.multipleOf)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEnsureRange_Idempotent(t *testing.T) {
	bounds := []struct {
		min, max     *float64
		exMin, exMax bool
		multipleOf   *float64
	}{
		{nil, nil, false, false, nil},
		{ptr(0), ptr(1), true, true, nil},
		{ptr(-10), ptr(10), true, false, ptr(3)},
		{ptr(5), nil, true, false, nil},
		{nil, ptr(99), false, true, ptr(0.25)},
		{ptr(1), ptr(1), true, true, ptr(2)},
		{nil, nil, true, false, nil},
		{nil, nil, false, true, nil},
		{ptr(3), nil, false, true, nil},
	}
	samples := []float64{-1000, -3.5, 0, 0.1, 1, 7, 42, 99, 1e6}

	for _, b := range bounds {
		for _, s := range samples {
			once := EnsureRange(s, b.min, b.max, b.exMin, b.exMax, b.multipleOf)
			twice := EnsureRange(once, b.min, b.max, b.exMin, b.exMax, b.multipleOf)
			assert.InDelta(t, once, twice, 1e-9, "sample %v", s)
		}
	}
}

func TestFloorMultiple(t *testing.T) {
	assert.Equal(t, 9.0, FloorMultiple(10, 3))
	assert.Equal(t, 9.0, FloorMultiple(9, 3))
	assert.Equal(t, -3.0, FloorMultiple(-1, 3))
	assert.Equal(t, 10.0, FloorMultiple(10, -5))
}
