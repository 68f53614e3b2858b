package stats

import (
	"sort"

	"fair-mcs/internal/model"
)

const (
	// BucketCount is the number of equal-width histogram buckets.
	BucketCount = 10
	// CurvePoints is the number of exceedance-curve thresholds.
	CurvePoints = 50
)

// BuildDistributionBuckets splits an ascending loss vector into BucketCount
// equal-width buckets between its min and max. Each bucket is [Min, Max)
// except the last, which is closed so every loss is counted once.
func BuildDistributionBuckets(sorted []float64) []model.DistributionBucket {
	n := len(sorted)
	if n == 0 {
		return []model.DistributionBucket{}
	}

	lo, hi := sorted[0], sorted[n-1]
	if lo == hi {
		return []model.DistributionBucket{{Min: lo, Max: hi, Count: n, Probability: 1}}
	}

	width := (hi - lo) / BucketCount
	buckets := make([]model.DistributionBucket, BucketCount)
	for i := range buckets {
		buckets[i].Min = lo + float64(i)*width
		buckets[i].Max = lo + float64(i+1)*width
	}
	buckets[BucketCount-1].Max = hi

	for _, v := range sorted {
		idx := int((v - lo) / width)
		if idx >= BucketCount {
			idx = BucketCount - 1
		}
		// settle rounding at the edges against the stored bounds
		for idx > 0 && v < buckets[idx].Min {
			idx--
		}
		for idx < BucketCount-1 && v >= buckets[idx+1].Min {
			idx++
		}
		buckets[idx].Count++
	}

	for i := range buckets {
		buckets[i].Probability = float64(buckets[i].Count) / float64(n)
	}
	return buckets
}

// BuildExceedanceCurve evaluates P(loss > threshold) at CurvePoints evenly
// spaced thresholds from min to max of an ascending loss vector. A vector with
// a single distinct value yields one point.
func BuildExceedanceCurve(sorted []float64) []model.ExceedancePoint {
	n := len(sorted)
	if n == 0 {
		return []model.ExceedancePoint{}
	}

	lo, hi := sorted[0], sorted[n-1]
	if lo == hi {
		return []model.ExceedancePoint{{Loss: lo, Probability: exceedance(sorted, lo)}}
	}

	step := (hi - lo) / (CurvePoints - 1)
	curve := make([]model.ExceedancePoint, CurvePoints)
	for i := range curve {
		threshold := lo + float64(i)*step
		if i == CurvePoints-1 {
			threshold = hi
		}
		curve[i] = model.ExceedancePoint{Loss: threshold, Probability: exceedance(sorted, threshold)}
	}
	return curve
}

// exceedance returns the share of values strictly greater than threshold.
func exceedance(sorted []float64, threshold float64) float64 {
	n := len(sorted)
	firstAbove := sort.Search(n, func(i int) bool { return sorted[i] > threshold })
	return float64(n-firstAbove) / float64(n)
}
