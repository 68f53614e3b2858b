package model

// ALESummary summarizes the annual-loss distribution.
type ALESummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P10    float64 `json:"p10"`
	P90    float64 `json:"p90"`
	P95    float64 `json:"p95"` // PML
}

// IndustryBenchmark places the ALE against the industry's typical breach cost.
type IndustryBenchmark struct {
	YourALE        float64 `json:"your_ale"`
	IndustryMedian float64 `json:"industry_median"`
	PercentileRank int     `json:"percentile_rank"` // linear heuristic, not a true percentile
}

// DistributionBucket is one histogram bin of annual losses.
type DistributionBucket struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
}

// ExceedancePoint is the probability that annual loss exceeds Loss.
type ExceedancePoint struct {
	Loss        float64 `json:"loss"`
	Probability float64 `json:"probability"`
}

// Driver explains one factor behind the result.
type Driver struct {
	Factor      string `json:"factor"`
	Impact      Impact `json:"impact"`
	Description string `json:"description"`
}

// Recommendation proposes a risk-reducing action.
type Recommendation struct {
	Title              string  `json:"title"`
	Priority           Impact  `json:"priority"`
	Description        string  `json:"description"`
	EstimatedReduction float64 `json:"estimated_reduction,omitempty"`
}

// SimulationResults is the full output of one simulation. The caller owns it.
type SimulationResults struct {
	Iterations          int                  `json:"iterations"`
	ALE                 ALESummary           `json:"ale"`
	GordonLoebSpend     float64              `json:"gordon_loeb_spend"`
	RiskRating          RiskRating           `json:"risk_rating"`
	IndustryBenchmark   IndustryBenchmark    `json:"industry_benchmark"`
	MeanVulnerability   float64              `json:"mean_vulnerability"`
	DistributionBuckets []DistributionBucket `json:"distribution_buckets"`
	ExceedanceCurve     []ExceedancePoint    `json:"exceedance_curve"`
	KeyDrivers          []Driver             `json:"key_drivers"`
	Recommendations     []Recommendation     `json:"recommendations"`
	RawLosses           []float64            `json:"raw_losses"`
}

// ScenarioDelta holds signed differences (modified minus base).
type ScenarioDelta struct {
	AleMean           float64 `json:"ale_mean"`
	AlePml95          float64 `json:"ale_pml95"`
	GordonLoeb        float64 `json:"gordon_loeb"`
	RiskRatingChanged bool    `json:"risk_rating_changed"`
}

// ScenarioSavings holds reductions (base minus modified).
type ScenarioSavings struct {
	AleMean  float64 `json:"ale_mean"`
	AlePml95 float64 `json:"ale_pml95"`
}

// ScenarioComparison compares a base assessment against a modified one.
type ScenarioComparison struct {
	Base     *SimulationResults `json:"base"`
	Modified *SimulationResults `json:"modified"`
	Delta    ScenarioDelta      `json:"delta"`
	Savings  ScenarioSavings    `json:"savings"`
}
