package simulation

import (
	"math"

	"fair-mcs/internal/distribution"
	"fair-mcs/internal/model"
	"fair-mcs/internal/rng"
	"fair-mcs/internal/tables"
)

const (
	minVulnerability = 0.01
	maxVulnerability = 0.99

	// share of held records assumed exposed in a typical breach (log-normal median)
	affectedRecordShare = 0.1
	affectedRecordSigma = 1.0
	// a single trial's primary loss never exceeds this share of revenue
	primaryLossRevenueCap = 0.10
	insuranceRecovery     = 0.5
)

// SampleTEF draws threat events per year for the industry, scaled by headcount.
func SampleTEF(in model.AssessmentInputs, src rng.Source) float64 {
	r := tables.TEF(in.Company.Industry)
	return distribution.PERT(r.Min, r.Mode, r.Max, src) * tables.EmployeeMultiplier(in.Company.EmployeeBand)
}

// ControlAdjustedVulnerability applies active control modifiers
// multiplicatively to the base rate and clamps to [0.01, 0.99].
func ControlAdjustedVulnerability(c model.SecurityControls) float64 {
	v := tables.BaseVulnerability
	for _, ctrl := range model.AllControls {
		if c.Enabled(ctrl) {
			v *= 1 + tables.ControlModifier(ctrl)
		}
	}
	return math.Max(minVulnerability, math.Min(maxVulnerability, v))
}

// SampleVulnerability draws the per-trial vulnerability around the
// control-adjusted point estimate.
func SampleVulnerability(in model.AssessmentInputs, src rng.Source) float64 {
	adjusted := ControlAdjustedVulnerability(in.Controls)
	return distribution.PERT(0.5*adjusted, adjusted, math.Min(2*adjusted, maxVulnerability), src)
}

// MeanRecordCost is the unweighted mean per-record cost over the selected data types.
func MeanRecordCost(types []model.DataType) float64 {
	if len(types) == 0 {
		return 0
	}
	sum := 0.0
	for _, dt := range types {
		sum += tables.RecordCost(dt)
	}
	return sum / float64(len(types))
}

// SamplePrimaryLoss draws the direct loss of one breach.
func SamplePrimaryLoss(in model.AssessmentInputs, src rng.Source) float64 {
	if len(in.Data.DataTypes) == 0 {
		return 0
	}
	records := float64(in.Data.RecordCount)
	affected := distribution.LogNormal(math.Log(records*affectedRecordShare), affectedRecordSigma, src)
	affected = math.Min(affected, records)

	loss := MeanRecordCost(in.Data.DataTypes) * affected
	return math.Min(loss, primaryLossRevenueCap*tables.RevenueMidpoint(in.Company.RevenueBand))
}

// SampleSecondaryLoss draws regulatory, litigation, reputation and
// notification costs following a breach with the given primary loss.
func SampleSecondaryLoss(in model.AssessmentInputs, primaryLoss float64, src rng.Source) float64 {
	revenue := tables.RevenueMidpoint(in.Company.RevenueBand)
	exposure := tables.RegulatoryExposure(in.Company.Geography, in.Company.Industry)

	regulatory := exposure * revenue * distribution.PERT(0.01, 0.10, 0.50, src)
	litigation := primaryLoss * distribution.PERT(0.15, 0.22, 0.30, src)
	reputation := primaryLoss * distribution.PERT(0.20, 0.30, 0.40, src)
	notification := float64(in.Data.RecordCount) * distribution.PERT(2, 3.5, 5, src)

	total := regulatory + litigation + reputation + notification
	if in.Controls.CyberInsurance {
		total *= insuranceRecovery
	}
	return total
}
