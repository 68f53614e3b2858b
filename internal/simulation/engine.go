package simulation

import (
	"errors"
	"sort"
	"time"

	"fair-mcs/internal/model"
	"fair-mcs/internal/rng"
	"fair-mcs/internal/stats"
	"fair-mcs/internal/tables"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rs/zerolog/log"
)

// DefaultIterations is the trial count used when callers have no preference.
const DefaultIterations = 10_000

// ErrNegativeIterations is returned when a negative trial count is requested.
var ErrNegativeIterations = errors.New("iterations must not be negative")

// Engine performs the Monte-Carlo simulation.
//
// An Engine owns its random source and is not safe for concurrent use. Run
// concurrent simulations on separate engines, each with its own source.
type Engine struct {
	rng rng.Source
}

// NewEngine creates an engine drawing from src. A nil src gets a clock-seeded default.
func NewEngine(src rng.Source) *Engine {
	if src == nil {
		src = rng.NewDefault()
	}
	return &Engine{rng: src}
}

// SetSeed replaces the engine's source with a deterministic one.
func (e *Engine) SetSeed(seed int64) {
	e.rng = rng.NewSeeded(seed)
}

// Simulate runs iterations trials with src. It is shorthand for NewEngine(src).Simulate.
func Simulate(in model.AssessmentInputs, iterations int, src rng.Source) (*model.SimulationResults, error) {
	return NewEngine(src).Simulate(in, iterations)
}

// trialSummary is the raw output of the trial loop.
type trialSummary struct {
	losses []float64 // ascending
	// mean of the sampled vulnerabilities
	meanVulnerability float64
	// mean annualized secondary loss (LEF x secondary)
	meanSecondary float64
}

// Simulate runs iterations independent trial years for in and reduces them
// into the full result. Zero iterations yields an empty, well-defined result.
func (e *Engine) Simulate(in model.AssessmentInputs, iterations int) (*model.SimulationResults, error) {
	if iterations < 0 {
		return nil, goerr.Wrap(ErrNegativeIterations, "cannot simulate", goerr.V("iterations", iterations))
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	trials := e.runTrials(in, iterations)
	res := buildResults(in, trials)

	log.Debug().
		Int("iterations", iterations).
		Str("industry", string(in.Company.Industry)).
		Float64("ale_mean", res.ALE.Mean).
		Str("risk_rating", string(res.RiskRating)).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation complete")

	return res, nil
}

func (e *Engine) runTrials(in model.AssessmentInputs, iterations int) trialSummary {
	losses := make([]float64, iterations)
	vulnSum := 0.0
	secondarySum := 0.0

	for i := 0; i < iterations; i++ {
		tef := SampleTEF(in, e.rng)
		vuln := SampleVulnerability(in, e.rng)
		lef := tef * vuln

		primary := SamplePrimaryLoss(in, e.rng)
		secondary := SampleSecondaryLoss(in, primary, e.rng)

		losses[i] = lef * (primary + secondary)
		vulnSum += vuln
		secondarySum += lef * secondary
	}

	sort.Float64s(losses)

	summary := trialSummary{losses: losses}
	if iterations > 0 {
		summary.meanVulnerability = vulnSum / float64(iterations)
		summary.meanSecondary = secondarySum / float64(iterations)
	}
	return summary
}

func buildResults(in model.AssessmentInputs, t trialSummary) *model.SimulationResults {
	revenue := tables.RevenueMidpoint(in.Company.RevenueBand)
	industryMedian := tables.IndustryMedianCost(in.Company.Industry)

	ale := model.ALESummary{
		Mean:   stats.Mean(t.losses),
		Median: stats.Percentile(t.losses, 0.50),
		P10:    stats.Percentile(t.losses, 0.10),
		P90:    stats.Percentile(t.losses, 0.90),
		P95:    stats.Percentile(t.losses, 0.95),
	}

	res := &model.SimulationResults{
		Iterations:      len(t.losses),
		ALE:             ale,
		GordonLoebSpend: GordonLoebSpend(t.meanVulnerability, ale.Mean, revenue),
		RiskRating:      ComputeRiskRating(ale.Mean, revenue),
		IndustryBenchmark: model.IndustryBenchmark{
			YourALE:        ale.Mean,
			IndustryMedian: industryMedian,
			PercentileRank: BenchmarkPercentileRank(ale.Mean, industryMedian),
		},
		MeanVulnerability:   t.meanVulnerability,
		DistributionBuckets: stats.BuildDistributionBuckets(t.losses),
		ExceedanceCurve:     stats.BuildExceedanceCurve(t.losses),
		RawLosses:           t.losses,
	}

	ctx := ruleContext{inputs: in, results: res, meanSecondary: t.meanSecondary}
	res.KeyDrivers = buildDrivers(ctx)
	res.Recommendations = buildRecommendations(ctx)
	return res
}
