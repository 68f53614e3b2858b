package model

import (
	"errors"
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// MaxThreats is the maximum number of threat types an assessment may select.
const MaxThreats = 3

var (
	// ErrInvalidInputs marks assessment inputs that violate the engine's preconditions.
	ErrInvalidInputs = errors.New("invalid assessment inputs")
)

// CompanyProfile describes the organization.
type CompanyProfile struct {
	Industry     Industry     `json:"industry" jsonschema:"industry sector, e.g. financial or healthcare"`
	RevenueBand  RevenueBand  `json:"revenue_band" jsonschema:"annual revenue band, e.g. 50m_250m"`
	EmployeeBand EmployeeBand `json:"employee_band" jsonschema:"headcount band, e.g. 1000_4999"`
	Geography    Geography    `json:"geography" jsonschema:"primary regulatory jurisdiction, e.g. eu"`
}

// DataProfile describes the data at risk.
type DataProfile struct {
	DataTypes       []DataType `json:"data_types,omitempty" jsonschema:"categories of data held"`
	RecordCount     int        `json:"record_count" jsonschema:"number of records held"`
	CloudPercentage float64    `json:"cloud_percentage" jsonschema:"share of data hosted in the cloud, 0-100"`
}

// SecurityControls holds the six independent control flags.
type SecurityControls struct {
	IncidentResponsePlan bool `json:"incident_response_plan"`
	MFA                  bool `json:"mfa"`
	SecurityTraining     bool `json:"security_training"`
	EndpointDetection    bool `json:"endpoint_detection"`
	Encryption           bool `json:"encryption"`
	CyberInsurance       bool `json:"cyber_insurance"`
}

// Enabled reports whether the named control is active.
func (c SecurityControls) Enabled(ctrl Control) bool {
	switch ctrl {
	case ControlIncidentResponsePlan:
		return c.IncidentResponsePlan
	case ControlMFA:
		return c.MFA
	case ControlSecurityTraining:
		return c.SecurityTraining
	case ControlEndpointDetection:
		return c.EndpointDetection
	case ControlEncryption:
		return c.Encryption
	case ControlCyberInsurance:
		return c.CyberInsurance
	}
	return false
}

// Missing lists inactive controls in evaluation order.
func (c SecurityControls) Missing() []Control {
	var missing []Control
	for _, ctrl := range AllControls {
		if !c.Enabled(ctrl) {
			missing = append(missing, ctrl)
		}
	}
	return missing
}

// AllEnabled returns a control set with every control active.
func AllEnabled() SecurityControls {
	return SecurityControls{true, true, true, true, true, true}
}

// ThreatProfile captures threat concerns and history.
type ThreatProfile struct {
	Types           []ThreatType    `json:"types,omitempty" jsonschema:"up to 3 threat types of concern"`
	IncidentHistory IncidentHistory `json:"incident_history" jsonschema:"incidents in the last three years: none, 1, 2_5, 5_plus"`
}

// Has reports whether the threat type was selected.
func (t ThreatProfile) Has(threat ThreatType) bool {
	return contains(t.Types, threat)
}

// AssessmentInputs is the complete, read-only input to a simulation.
type AssessmentInputs struct {
	Company  CompanyProfile   `json:"company"`
	Data     DataProfile      `json:"data"`
	Controls SecurityControls `json:"controls"`
	Threats  ThreatProfile    `json:"threats"`
}

// Validate checks every enum and numeric bound. The engine assumes validated
// inputs and refuses to run on anything that fails here.
func (in AssessmentInputs) Validate() error {
	if !contains(Industries, in.Company.Industry) {
		return goerr.Wrap(ErrInvalidInputs, "unknown industry", goerr.V("industry", in.Company.Industry))
	}
	if !contains(RevenueBands, in.Company.RevenueBand) {
		return goerr.Wrap(ErrInvalidInputs, "unknown revenue band", goerr.V("revenue_band", in.Company.RevenueBand))
	}
	if !contains(EmployeeBands, in.Company.EmployeeBand) {
		return goerr.Wrap(ErrInvalidInputs, "unknown employee band", goerr.V("employee_band", in.Company.EmployeeBand))
	}
	if !contains(Geographies, in.Company.Geography) {
		return goerr.Wrap(ErrInvalidInputs, "unknown geography", goerr.V("geography", in.Company.Geography))
	}

	for _, dt := range in.Data.DataTypes {
		if !contains(DataTypes, dt) {
			return goerr.Wrap(ErrInvalidInputs, "unknown data type", goerr.V("data_type", dt))
		}
	}
	if dt, ok := firstDuplicate(in.Data.DataTypes); ok {
		return goerr.Wrap(ErrInvalidInputs, "duplicate data type", goerr.V("data_type", dt))
	}
	if in.Data.RecordCount < 0 {
		return goerr.Wrap(ErrInvalidInputs, "record count must not be negative", goerr.V("record_count", in.Data.RecordCount))
	}
	if math.IsNaN(in.Data.CloudPercentage) || in.Data.CloudPercentage < 0 || in.Data.CloudPercentage > 100 {
		return goerr.Wrap(ErrInvalidInputs, "cloud percentage must be within 0-100", goerr.V("cloud_percentage", in.Data.CloudPercentage))
	}

	if len(in.Threats.Types) > MaxThreats {
		return goerr.Wrap(ErrInvalidInputs, "too many threat types selected", goerr.V("count", len(in.Threats.Types)), goerr.V("max", MaxThreats))
	}
	for _, th := range in.Threats.Types {
		if !contains(ThreatTypes, th) {
			return goerr.Wrap(ErrInvalidInputs, "unknown threat type", goerr.V("threat", th))
		}
	}
	if th, ok := firstDuplicate(in.Threats.Types); ok {
		return goerr.Wrap(ErrInvalidInputs, "duplicate threat type", goerr.V("threat", th))
	}
	if !contains(IncidentHistories, in.Threats.IncidentHistory) {
		return goerr.Wrap(ErrInvalidInputs, "unknown incident history", goerr.V("incident_history", in.Threats.IncidentHistory))
	}

	return nil
}
