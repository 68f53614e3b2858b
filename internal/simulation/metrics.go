package simulation

import (
	"math"

	"fair-mcs/internal/model"
)

const (
	// approximates 1/e, the Gordon-Loeb bound on optimal investment
	gordonLoebFactor = 0.37
	// practical ceiling on security spend, independent of the model
	spendRevenueCeiling = 0.05
)

// ComputeRiskRating classifies ALE as a share of revenue. Tiers are half-open
// on the low side: exactly 1% is MODERATE, 3% HIGH, 7% CRITICAL.
func ComputeRiskRating(ale, revenue float64) model.RiskRating {
	if revenue <= 0 {
		if ale <= 0 {
			return model.RiskLow
		}
		return model.RiskCritical
	}

	pct := ale / revenue
	switch {
	case pct < 0.01:
		return model.RiskLow
	case pct < 0.03:
		return model.RiskModerate
	case pct < 0.07:
		return model.RiskHigh
	default:
		return model.RiskCritical
	}
}

// GordonLoebSpend returns min(0.37 x vulnerability x ALE, 5% of revenue).
func GordonLoebSpend(meanVulnerability, ale, revenue float64) float64 {
	return math.Min(gordonLoebFactor*meanVulnerability*ale, spendRevenueCeiling*revenue)
}

// BenchmarkPercentileRank maps ALE onto 0-100 relative to the industry's
// typical breach cost, where matching the industry scores 50. This is a
// linear heuristic, not a statistical percentile. A zero denominator carries
// no signal and scores 50.
func BenchmarkPercentileRank(ale, industryMedian float64) int {
	if industryMedian == 0 {
		return 50
	}
	rank := ale / industryMedian * 50
	rank = math.Max(0, math.Min(100, rank))
	return int(math.Round(rank))
}
