package model

import (
	"errors"
	"math"
	"testing"
)

func validInputs() AssessmentInputs {
	return AssessmentInputs{
		Company: CompanyProfile{
			Industry:     IndustryFinancial,
			RevenueBand:  Revenue50To250M,
			EmployeeBand: Employees500To999,
			Geography:    GeographyUS,
		},
		Data: DataProfile{
			DataTypes:       []DataType{DataCustomerPII, DataPayment},
			RecordCount:     250000,
			CloudPercentage: 40,
		},
		Threats: ThreatProfile{
			Types:           []ThreatType{ThreatRansomware},
			IncidentHistory: IncidentsNone,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *AssessmentInputs)
		wantErr bool
	}{
		{"Valid", func(in *AssessmentInputs) {}, false},
		{"UnknownIndustry", func(in *AssessmentInputs) { in.Company.Industry = "aerospace" }, true},
		{"UnknownRevenue", func(in *AssessmentInputs) { in.Company.RevenueBand = "" }, true},
		{"UnknownEmployees", func(in *AssessmentInputs) { in.Company.EmployeeBand = "10" }, true},
		{"UnknownGeography", func(in *AssessmentInputs) { in.Company.Geography = "mars" }, true},
		{"UnknownDataType", func(in *AssessmentInputs) { in.Data.DataTypes = []DataType{"dna"} }, true},
		{"NegativeRecords", func(in *AssessmentInputs) { in.Data.RecordCount = -1 }, true},
		{"CloudAbove100", func(in *AssessmentInputs) { in.Data.CloudPercentage = 101 }, true},
		{"CloudNaN", func(in *AssessmentInputs) { in.Data.CloudPercentage = math.NaN() }, true},
		{"DuplicateDataType", func(in *AssessmentInputs) {
			in.Data.DataTypes = []DataType{DataPayment, DataCustomerPII, DataPayment}
		}, true},
		{"TooManyThreats", func(in *AssessmentInputs) {
			in.Threats.Types = []ThreatType{ThreatRansomware, ThreatPhishing, ThreatInsider, ThreatDDoS}
		}, true},
		{"UnknownThreat", func(in *AssessmentInputs) { in.Threats.Types = []ThreatType{"meteor"} }, true},
		{"DuplicateThreat", func(in *AssessmentInputs) {
			in.Threats.Types = []ThreatType{ThreatPhishing, ThreatPhishing}
		}, true},
		{"UnknownHistory", func(in *AssessmentInputs) { in.Threats.IncidentHistory = "lots" }, true},
		{"NoDataTypes", func(in *AssessmentInputs) { in.Data.DataTypes = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInputs()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected validation error, got nil")
				}
				if !errors.Is(err, ErrInvalidInputs) {
					t.Errorf("Expected error to wrap ErrInvalidInputs, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestFirstDuplicate(t *testing.T) {
	if _, ok := firstDuplicate([]ThreatType{ThreatRansomware, ThreatPhishing}); ok {
		t.Errorf("Expected no duplicate in distinct list")
	}
	if _, ok := firstDuplicate[DataType](nil); ok {
		t.Errorf("Expected no duplicate in empty list")
	}
	got, ok := firstDuplicate([]DataType{DataHealth, DataPayment, DataHealth, DataPayment})
	if !ok || got != DataHealth {
		t.Errorf("Expected first duplicate %s, got %s (found=%v)", DataHealth, got, ok)
	}
}

func TestSecurityControls_Missing(t *testing.T) {
	c := SecurityControls{MFA: true, CyberInsurance: true}
	missing := c.Missing()
	want := []Control{ControlIncidentResponsePlan, ControlSecurityTraining, ControlEndpointDetection, ControlEncryption}

	if len(missing) != len(want) {
		t.Fatalf("Expected %d missing controls, got %v", len(want), missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], missing[i])
		}
	}

	if n := len(AllEnabled().Missing()); n != 0 {
		t.Errorf("Expected no missing controls, got %d", n)
	}
}

func TestDataType_IsSensitive(t *testing.T) {
	for _, dt := range DataTypes {
		want := dt == DataHealth || dt == DataPayment || dt == DataFinancial
		if got := dt.IsSensitive(); got != want {
			t.Errorf("%s: expected %v, got %v", dt, want, got)
		}
	}
}
