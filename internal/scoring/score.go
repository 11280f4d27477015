package scoring

import (
	"trailcut/internal/signals"
)

// Weights is the fixed signal weight table. Dialogue emotion and motion are
// the strongest trailer-worthiness indicators; chronological position is a
// small deliberate late-film bias. Must sum to exactly 1.0 so standout
// scores stay in [0,1] by construction.
var Weights = map[string]float64{
	signals.KeyMotion:                0.20,
	signals.KeyContrast:              0.15,
	signals.KeyUniqueness:            0.15,
	signals.KeyEmotionalWeight:       0.20,
	signals.KeyFacePresence:          0.10,
	signals.KeyDescriptionConfidence: 0.10,
	signals.KeySaturation:            0.05,
	signals.KeyPosition:              0.05,
}

// WeightSum returns the sum of the weight table; exposed for the invariant check.
func WeightSum() float64 {
	var sum float64
	for _, w := range Weights {
		sum += w
	}
	return sum
}

// Normalized is a scene's signal vector rescaled to [0,1] per dimension.
type Normalized map[string]float64

// NormalizePool min-max rescales one dimension across the pool. If every
// value is identical the whole dimension becomes exactly 0.5, defined rather
// than an error.
func NormalizePool(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	out := make([]float64, len(values))
	if maxV == minV {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	rng := maxV - minV
	for i, v := range values {
		out[i] = (v - minV) / rng
	}
	return out
}

// NormalizeAll rescales all 8 dimensions independently across the pool and
// returns one normalized vector per scene, in input order.
func NormalizeAll(pool []signals.RawSignals) []Normalized {
	if len(pool) == 0 {
		return nil
	}
	raw := make([]map[string]float64, len(pool))
	for i, sig := range pool {
		raw[i] = sig.Map()
	}

	out := make([]Normalized, len(pool))
	for i := range out {
		out[i] = make(Normalized, len(signals.Keys))
	}
	column := make([]float64, len(pool))
	for _, key := range signals.Keys {
		for i := range raw {
			column[i] = raw[i][key]
		}
		for i, v := range NormalizePool(column) {
			out[i][key] = v
		}
	}
	return out
}

// Score computes the weighted standout score for a normalized vector.
// In [0,1] whenever the input is normalized. Summation follows the fixed
// key order so identical pools always score bit-identically.
func Score(norm Normalized) float64 {
	var score float64
	for _, key := range signals.Keys {
		score += Weights[key] * norm[key]
	}
	return score
}
