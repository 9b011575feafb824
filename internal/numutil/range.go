// Package numutil fits numeric samples into schema bounds.
package numutil

import "math"

// epsilon absorbs float error when dividing a sample by multipleOf.
const epsilon = 1e-9

// EnsureRange fits sample into the bounds described by a schema.
//
// A nil minimum defaults to the sample and a nil maximum defaults to the
// minimum. The sample is clamped first, then moved off an exclusive bound by
// one (an exclusive flag without its bound is ignored), then rounded down to a multiple of multipleOf (unless it is nil, zero
// or one). Applying EnsureRange twice with the same bounds yields the result
// of applying it once.
func EnsureRange(sample float64, minimum, maximum *float64, exclusiveMin, exclusiveMax bool, multipleOf *float64) float64 {
	lo := sample
	if minimum != nil {
		lo = *minimum
	}
	hi := lo
	if maximum != nil {
		hi = *maximum
	}

	if lo > sample {
		sample = lo
	}
	if hi < sample {
		sample = hi
	}

	if minimum != nil && exclusiveMin && sample == lo {
		sample++
	}
	if maximum != nil && exclusiveMax && sample == hi {
		sample--
	}

	if multipleOf != nil && *multipleOf != 0 && *multipleOf != 1 {
		sample = FloorMultiple(sample, *multipleOf)
	}
	return sample
}

// FloorMultiple returns the largest multiple of m that is not greater than v.
func FloorMultiple(v, m float64) float64 {
	m = math.Abs(m)
	q := v / m
	if r := math.Round(q); math.Abs(q-r) < epsilon {
		q = r
	}
	return math.Floor(q) * m
}
