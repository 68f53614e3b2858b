package simulation

import (
	"math"
	"testing"

	"fair-mcs/internal/model"
)

func TestComputeRiskRating(t *testing.T) {
	revenue := 100_000_000.0
	tests := []struct {
		name     string
		ale      float64
		revenue  float64
		expected model.RiskRating
	}{
		{"Zero", 0, revenue, model.RiskLow},
		{"JustBelowOnePercent", 999_999, revenue, model.RiskLow},
		{"ExactlyOnePercent", 1_000_000, revenue, model.RiskModerate},
		{"ExactlyThreePercent", 3_000_000, revenue, model.RiskHigh},
		{"JustBelowSevenPercent", 6_999_999, revenue, model.RiskHigh},
		{"ExactlySevenPercent", 7_000_000, revenue, model.RiskCritical},
		{"AboveRevenue", 200_000_000, revenue, model.RiskCritical},
		{"NoRevenueNoLoss", 0, 0, model.RiskLow},
		{"NoRevenueWithLoss", 10, 0, model.RiskCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeRiskRating(tt.ale, tt.revenue); got != tt.expected {
				t.Errorf("ComputeRiskRating(%v, %v) = %s, want %s", tt.ale, tt.revenue, got, tt.expected)
			}
		})
	}
}

func TestGordonLoebSpend(t *testing.T) {
	tests := []struct {
		name      string
		vuln, ale float64
		revenue   float64
		expected  float64
	}{
		{"ModelBound", 0.2, 1_000_000, 100_000_000, 0.37 * 0.2 * 1_000_000},
		{"RevenueCeiling", 0.9, 100_000_000, 10_000_000, 500_000},
		{"NoLoss", 0.3, 0, 10_000_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GordonLoebSpend(tt.vuln, tt.ale, tt.revenue); math.Abs(got-tt.expected) > 1e-6 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBenchmarkPercentileRank(t *testing.T) {
	tests := []struct {
		name     string
		ale      float64
		median   float64
		expected int
	}{
		{"ZeroMedianNoSignal", 1_000_000, 0, 50},
		{"MatchesIndustry", 5_000_000, 5_000_000, 50},
		{"HalfIndustry", 2_500_000, 5_000_000, 25},
		{"ClampedHigh", 50_000_000, 5_000_000, 100},
		{"Zero", 0, 5_000_000, 0},
		{"Rounded", 1_010_000, 5_000_000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BenchmarkPercentileRank(tt.ale, tt.median); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}
