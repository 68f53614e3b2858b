package simulation

import (
	"fmt"

	"fair-mcs/internal/model"
)

// CompareScenarios simulates base then modified on the engine's source, in
// that order, and reports how the modified scenario changes the outcome.
func (e *Engine) CompareScenarios(base, modified model.AssessmentInputs, iterations int) (*model.ScenarioComparison, error) {
	baseRes, err := e.Simulate(base, iterations)
	if err != nil {
		return nil, fmt.Errorf("base scenario: %w", err)
	}
	modRes, err := e.Simulate(modified, iterations)
	if err != nil {
		return nil, fmt.Errorf("modified scenario: %w", err)
	}

	return &model.ScenarioComparison{
		Base:     baseRes,
		Modified: modRes,
		Delta: model.ScenarioDelta{
			AleMean:           modRes.ALE.Mean - baseRes.ALE.Mean,
			AlePml95:          modRes.ALE.P95 - baseRes.ALE.P95,
			GordonLoeb:        modRes.GordonLoebSpend - baseRes.GordonLoebSpend,
			RiskRatingChanged: modRes.RiskRating != baseRes.RiskRating,
		},
		Savings: model.ScenarioSavings{
			AleMean:  baseRes.ALE.Mean - modRes.ALE.Mean,
			AlePml95: baseRes.ALE.P95 - modRes.ALE.P95,
		},
	}, nil
}
