// Package tables holds the static reference data behind the FAIR model:
// breach costs, control effects, threat frequencies and regulatory exposure.
//
// The data is initialized once and never mutated. Accessors return values or
// copies so callers cannot alter it.
package tables

import (
	"fair-mcs/internal/model"
)

// BaseVulnerability is the probability a threat event becomes a loss event
// before any control is applied.
const BaseVulnerability = 0.30

// TEFRange is the PERT (min, mode, max) of threat events per year.
type TEFRange struct {
	Min  float64 `json:"min"`
	Mode float64 `json:"mode"`
	Max  float64 `json:"max"`
}

// per-record breach cost in USD
var recordCosts = map[model.DataType]float64{
	model.DataCustomerPII:          173,
	model.DataEmployeePII:          189,
	model.DataHealth:               408,
	model.DataPayment:              180,
	model.DataFinancial:            195,
	model.DataIntellectualProperty: 173,
	model.DataCredentials:          150,
}

// average breach cost in USD millions
var industryCosts = map[model.Industry]float64{
	model.IndustryHealthcare:      9.77,
	model.IndustryFinancial:       6.08,
	model.IndustryIndustrial:      5.56,
	model.IndustryTechnology:      5.45,
	model.IndustryEnergy:          5.29,
	model.IndustryPharmaceuticals: 5.10,
	model.IndustryEducation:       3.65,
	model.IndustryMedia:           3.58,
	model.IndustryRetail:          3.48,
	model.IndustryHospitality:     3.36,
	model.IndustryPublicSector:    2.55,
}

// multiplicative vulnerability modifiers; insurance transfers loss instead
var controlModifiers = map[model.Control]float64{
	model.ControlIncidentResponsePlan: -0.23,
	model.ControlMFA:                  -0.20,
	model.ControlSecurityTraining:     -0.15,
	model.ControlEndpointDetection:    -0.18,
	model.ControlEncryption:           -0.12,
	model.ControlCyberInsurance:       0,
}

var tefRanges = map[model.Industry]TEFRange{
	model.IndustryHealthcare:      {Min: 2, Mode: 5, Max: 12},
	model.IndustryFinancial:       {Min: 3, Mode: 6, Max: 15},
	model.IndustryPharmaceuticals: {Min: 1, Mode: 3, Max: 8},
	model.IndustryTechnology:      {Min: 2, Mode: 5, Max: 12},
	model.IndustryEnergy:          {Min: 1, Mode: 4, Max: 10},
	model.IndustryIndustrial:      {Min: 1, Mode: 4, Max: 10},
	model.IndustryEducation:       {Min: 1, Mode: 3, Max: 9},
	model.IndustryRetail:          {Min: 2, Mode: 4, Max: 10},
	model.IndustryMedia:           {Min: 1, Mode: 3, Max: 8},
	model.IndustryHospitality:     {Min: 1, Mode: 3, Max: 8},
	model.IndustryPublicSector:    {Min: 2, Mode: 4, Max: 11},
}

// revenue band midpoints in USD
var revenueMidpoints = map[model.RevenueBand]float64{
	model.RevenueUnder10M: 5_000_000,
	model.Revenue10To50M:  30_000_000,
	model.Revenue50To250M: 150_000_000,
	model.Revenue250MTo1B: 625_000_000,
	model.RevenueOver1B:   2_500_000_000,
}

var employeeMultipliers = map[model.EmployeeBand]float64{
	model.Employees1To99:      0.6,
	model.Employees100To499:   0.9,
	model.Employees500To999:   1.1,
	model.Employees1000To4999: 1.4,
	model.Employees5000Plus:   1.8,
}

// maximum regulatory fine as a share of revenue, by jurisdiction
var geographyFinePct = map[model.Geography]float64{
	model.GeographyUS:     0.020,
	model.GeographyEU:     0.040,
	model.GeographyUK:     0.040,
	model.GeographyCanada: 0.030,
	model.GeographyAPAC:   0.025,
	model.GeographyLatAm:  0.020,
	model.GeographyOther:  0.010,
}

// sector-specific regimes stacked on top of the jurisdiction (HIPAA, GLBA/PCI, NERC ...)
var industryFinePct = map[model.Industry]float64{
	model.IndustryHealthcare:      0.015,
	model.IndustryFinancial:       0.020,
	model.IndustryPharmaceuticals: 0.010,
	model.IndustryEnergy:          0.010,
	model.IndustryEducation:       0.005,
	model.IndustryRetail:          0.005,
	model.IndustryPublicSector:    0.005,
}

// RecordCost returns the breach cost per record for a data type.
func RecordCost(dt model.DataType) float64 {
	return recordCosts[dt]
}

// IndustryAverageCostM returns the average breach cost in USD millions.
func IndustryAverageCostM(ind model.Industry) float64 {
	return industryCosts[ind]
}

// IndustryMedianCost returns the industry's typical breach cost in USD,
// the benchmark denominator.
func IndustryMedianCost(ind model.Industry) float64 {
	return industryCosts[ind] * 1_000_000
}

// ControlModifier returns the vulnerability modifier of a control.
func ControlModifier(c model.Control) float64 {
	return controlModifiers[c]
}

// TEF returns the threat-event-frequency PERT range for an industry.
func TEF(ind model.Industry) TEFRange {
	return tefRanges[ind]
}

// RevenueMidpoint returns the USD midpoint of a revenue band.
func RevenueMidpoint(b model.RevenueBand) float64 {
	return revenueMidpoints[b]
}

// EmployeeMultiplier returns the attack-surface multiplier of a headcount band.
func EmployeeMultiplier(b model.EmployeeBand) float64 {
	return employeeMultipliers[b]
}

// RegulatoryExposure returns the compounded maximum fine as a share of revenue
// for a jurisdiction and industry.
func RegulatoryExposure(geo model.Geography, ind model.Industry) float64 {
	return geographyFinePct[geo] + industryFinePct[ind]
}

// Snapshot is a plain copy of every table for report and UI collaborators.
type Snapshot struct {
	BaseVulnerability   float64                        `json:"base_vulnerability"`
	RecordCosts         map[model.DataType]float64     `json:"record_costs"`
	IndustryCostsM      map[model.Industry]float64     `json:"industry_costs_m"`
	ControlModifiers    map[model.Control]float64      `json:"control_modifiers"`
	TEF                 map[model.Industry]TEFRange    `json:"tef"`
	RevenueMidpoints    map[model.RevenueBand]float64  `json:"revenue_midpoints"`
	EmployeeMultipliers map[model.EmployeeBand]float64 `json:"employee_multipliers"`
	GeographyFinePct    map[model.Geography]float64    `json:"geography_fine_pct"`
	IndustryFinePct     map[model.Industry]float64     `json:"industry_fine_pct"`
}

// Current returns a deep copy of the tables.
func Current() Snapshot {
	return Snapshot{
		BaseVulnerability:   BaseVulnerability,
		RecordCosts:         clone(recordCosts),
		IndustryCostsM:      clone(industryCosts),
		ControlModifiers:    clone(controlModifiers),
		TEF:                 clone(tefRanges),
		RevenueMidpoints:    clone(revenueMidpoints),
		EmployeeMultipliers: clone(employeeMultipliers),
		GeographyFinePct:    clone(geographyFinePct),
		IndustryFinePct:     clone(industryFinePct),
	}
}

func clone[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
