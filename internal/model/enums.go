package model

// Industry identifies the sector an organization operates in.
type Industry string

const (
	IndustryHealthcare      Industry = "healthcare"
	IndustryFinancial       Industry = "financial"
	IndustryPharmaceuticals Industry = "pharmaceuticals"
	IndustryTechnology      Industry = "technology"
	IndustryEnergy          Industry = "energy"
	IndustryIndustrial      Industry = "industrial"
	IndustryEducation       Industry = "education"
	IndustryRetail          Industry = "retail"
	IndustryMedia           Industry = "media"
	IndustryHospitality     Industry = "hospitality"
	IndustryPublicSector    Industry = "public_sector"
)

// Industries lists every supported industry in display order.
var Industries = []Industry{
	IndustryHealthcare, IndustryFinancial, IndustryPharmaceuticals, IndustryTechnology,
	IndustryEnergy, IndustryIndustrial, IndustryEducation, IndustryRetail,
	IndustryMedia, IndustryHospitality, IndustryPublicSector,
}

// RevenueBand buckets annual revenue.
type RevenueBand string

const (
	RevenueUnder10M RevenueBand = "under_10m"
	Revenue10To50M  RevenueBand = "10m_50m"
	Revenue50To250M RevenueBand = "50m_250m"
	Revenue250MTo1B RevenueBand = "250m_1b"
	RevenueOver1B   RevenueBand = "over_1b"
)

var RevenueBands = []RevenueBand{RevenueUnder10M, Revenue10To50M, Revenue50To250M, Revenue250MTo1B, RevenueOver1B}

// EmployeeBand buckets headcount.
type EmployeeBand string

const (
	Employees1To99      EmployeeBand = "1_99"
	Employees100To499   EmployeeBand = "100_499"
	Employees500To999   EmployeeBand = "500_999"
	Employees1000To4999 EmployeeBand = "1000_4999"
	Employees5000Plus   EmployeeBand = "5000_plus"
)

var EmployeeBands = []EmployeeBand{Employees1To99, Employees100To499, Employees500To999, Employees1000To4999, Employees5000Plus}

// Geography is the primary regulatory jurisdiction.
type Geography string

const (
	GeographyUS     Geography = "us"
	GeographyEU     Geography = "eu"
	GeographyUK     Geography = "uk"
	GeographyCanada Geography = "canada"
	GeographyAPAC   Geography = "apac"
	GeographyLatAm  Geography = "latam"
	GeographyOther  Geography = "other"
)

var Geographies = []Geography{GeographyUS, GeographyEU, GeographyUK, GeographyCanada, GeographyAPAC, GeographyLatAm, GeographyOther}

// DataType is a category of data held by the organization.
type DataType string

const (
	DataCustomerPII          DataType = "customer_pii"
	DataEmployeePII          DataType = "employee_pii"
	DataHealth               DataType = "health"
	DataPayment              DataType = "payment"
	DataFinancial            DataType = "financial"
	DataIntellectualProperty DataType = "intellectual_property"
	DataCredentials          DataType = "credentials"
)

var DataTypes = []DataType{
	DataCustomerPII, DataEmployeePII, DataHealth, DataPayment,
	DataFinancial, DataIntellectualProperty, DataCredentials,
}

// IsSensitive reports whether the data type carries elevated regulatory weight.
func (d DataType) IsSensitive() bool {
	return d == DataHealth || d == DataPayment || d == DataFinancial
}

// ThreatType is a threat the organization is concerned about.
type ThreatType string

const (
	ThreatRansomware  ThreatType = "ransomware"
	ThreatPhishing    ThreatType = "phishing"
	ThreatInsider     ThreatType = "insider"
	ThreatSupplyChain ThreatType = "supply_chain"
	ThreatDDoS        ThreatType = "ddos"
	ThreatDataTheft   ThreatType = "data_theft"
)

var ThreatTypes = []ThreatType{ThreatRansomware, ThreatPhishing, ThreatInsider, ThreatSupplyChain, ThreatDDoS, ThreatDataTheft}

// IncidentHistory counts incidents over the last three years.
type IncidentHistory string

const (
	IncidentsNone      IncidentHistory = "none"
	IncidentsOne       IncidentHistory = "1"
	IncidentsTwoToFive IncidentHistory = "2_5"
	IncidentsFivePlus  IncidentHistory = "5_plus"
)

var IncidentHistories = []IncidentHistory{IncidentsNone, IncidentsOne, IncidentsTwoToFive, IncidentsFivePlus}

// Control names one of the six security controls.
type Control string

const (
	ControlIncidentResponsePlan Control = "incident_response_plan"
	ControlMFA                  Control = "mfa"
	ControlSecurityTraining     Control = "security_training"
	ControlEndpointDetection    Control = "endpoint_detection"
	ControlEncryption           Control = "encryption"
	ControlCyberInsurance       Control = "cyber_insurance"
)

// AllControls lists the controls in evaluation order.
var AllControls = []Control{
	ControlIncidentResponsePlan, ControlMFA, ControlSecurityTraining,
	ControlEndpointDetection, ControlEncryption, ControlCyberInsurance,
}

// RiskRating is the tier derived from ALE as a share of revenue.
type RiskRating string

const (
	RiskLow      RiskRating = "LOW"
	RiskModerate RiskRating = "MODERATE"
	RiskHigh     RiskRating = "HIGH"
	RiskCritical RiskRating = "CRITICAL"
)

// Impact grades a driver or recommendation.
type Impact string

const (
	ImpactLow    Impact = "LOW"
	ImpactMedium Impact = "MEDIUM"
	ImpactHigh   Impact = "HIGH"
)

func contains[T comparable](list []T, v T) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// firstDuplicate reports the first value that appears more than once in list.
func firstDuplicate[T comparable](list []T) (T, bool) {
	seen := make(map[T]struct{}, len(list))
	for _, item := range list {
		if _, ok := seen[item]; ok {
			return item, true
		}
		seen[item] = struct{}{}
	}
	var zero T
	return zero, false
}
