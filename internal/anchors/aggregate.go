package anchors

import "sort"

// Aggregator reduces per-chunk candidate values for one anchor into a single
// timestamp. Kept pluggable: median vs. confidence-weighted aggregation was
// never settled empirically.
type Aggregator func(values []float64) float64

// Median is the default aggregator; robust to a single bad chunk.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 1 {
		return cp[mid]
	}
	return (cp[mid-1] + cp[mid]) / 2
}

// TrimmedMean drops the lowest and highest candidate before averaging,
// falling back to a plain mean for small sets.
func TrimmedMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	if len(cp) > 2 {
		cp = cp[1 : len(cp)-1]
	}
	var sum float64
	for _, v := range cp {
		sum += v
	}
	return sum / float64(len(cp))
}
