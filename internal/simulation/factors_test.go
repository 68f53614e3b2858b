package simulation

import (
	"math"
	"testing"

	"fair-mcs/internal/model"
	"fair-mcs/internal/rng"
	"fair-mcs/internal/tables"
)

func testInputs() model.AssessmentInputs {
	return model.AssessmentInputs{
		Company: model.CompanyProfile{
			Industry:     model.IndustryFinancial,
			RevenueBand:  model.Revenue50To250M,
			EmployeeBand: model.Employees500To999,
			Geography:    model.GeographyUS,
		},
		Data: model.DataProfile{
			DataTypes:       []model.DataType{model.DataCustomerPII, model.DataFinancial},
			RecordCount:     500000,
			CloudPercentage: 60,
		},
		Threats: model.ThreatProfile{
			Types:           []model.ThreatType{model.ThreatRansomware},
			IncidentHistory: model.IncidentsNone,
		},
	}
}

func TestControlAdjustedVulnerability(t *testing.T) {
	tests := []struct {
		name     string
		controls model.SecurityControls
		expected float64
	}{
		{"NoControls", model.SecurityControls{}, 0.30},
		{"IRPlanOnly", model.SecurityControls{IncidentResponsePlan: true}, 0.30 * 0.77},
		{"IRAndMFAStackMultiplicatively", model.SecurityControls{IncidentResponsePlan: true, MFA: true}, 0.30 * 0.77 * 0.80},
		{"InsuranceDoesNotChangeVulnerability", model.SecurityControls{CyberInsurance: true}, 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ControlAdjustedVulnerability(tt.controls); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSampleVulnerability_InRange(t *testing.T) {
	src := rng.NewSeeded(8)
	for _, controls := range []model.SecurityControls{{}, model.AllEnabled()} {
		in := testInputs()
		in.Controls = controls
		adjusted := ControlAdjustedVulnerability(controls)
		for i := 0; i < 2000; i++ {
			v := SampleVulnerability(in, src)
			if v < 0.5*adjusted || v > math.Min(2*adjusted, 0.99) {
				t.Fatalf("Vulnerability %v outside [%v, %v]", v, 0.5*adjusted, 2*adjusted)
			}
		}
	}
}

func TestSampleTEF_ScalesWithHeadcount(t *testing.T) {
	in := testInputs()
	r := tables.TEF(in.Company.Industry)
	mult := tables.EmployeeMultiplier(in.Company.EmployeeBand)

	src := rng.NewSeeded(4)
	for i := 0; i < 1000; i++ {
		v := SampleTEF(in, src)
		if v < r.Min*mult || v > r.Max*mult {
			t.Fatalf("TEF %v outside [%v, %v]", v, r.Min*mult, r.Max*mult)
		}
	}
}

func TestSamplePrimaryLoss_NoDataTypes(t *testing.T) {
	in := testInputs()
	in.Data.DataTypes = nil
	src := rng.NewSequence(0.5)

	if got := SamplePrimaryLoss(in, src); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if src.Draws != 0 {
		t.Errorf("Expected no draws without data types, got %d", src.Draws)
	}
}

func TestSamplePrimaryLoss_Capped(t *testing.T) {
	in := testInputs()
	in.Data.RecordCount = 1_000_000_000
	in.Data.DataTypes = []model.DataType{model.DataHealth}
	limit := 0.10 * tables.RevenueMidpoint(in.Company.RevenueBand)

	src := rng.NewSeeded(10)
	for i := 0; i < 500; i++ {
		v := SamplePrimaryLoss(in, src)
		if v < 0 || v > limit {
			t.Fatalf("Primary loss %v outside [0, %v]", v, limit)
		}
	}
}

func TestSamplePrimaryLoss_AffectedRecordsCapped(t *testing.T) {
	in := testInputs()
	in.Data.RecordCount = 10
	in.Data.DataTypes = []model.DataType{model.DataCredentials}

	src := rng.NewSeeded(12)
	for i := 0; i < 500; i++ {
		if v := SamplePrimaryLoss(in, src); v > 10*tables.RecordCost(model.DataCredentials) {
			t.Fatalf("Expected affected records capped at the record count, loss %v", v)
		}
	}
}

func TestSampleSecondaryLoss_InsuranceHalves(t *testing.T) {
	in := testInputs()
	insured := in
	insured.Controls.CyberInsurance = true

	a := SampleSecondaryLoss(in, 1_000_000, rng.NewLCG(5))
	b := SampleSecondaryLoss(insured, 1_000_000, rng.NewLCG(5))

	if math.Abs(b-a/2) > 1e-6 {
		t.Errorf("Expected insured loss %v to be half of %v", b, a)
	}
}

func TestSampleSecondaryLoss_NonNegative(t *testing.T) {
	in := testInputs()
	src := rng.NewSeeded(6)
	for i := 0; i < 1000; i++ {
		if v := SampleSecondaryLoss(in, 0, src); v < 0 {
			t.Fatalf("Expected non-negative secondary loss, got %v", v)
		}
	}
}
