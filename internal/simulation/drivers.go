package simulation

import (
	"fmt"
	"math"
	"strings"

	"fair-mcs/internal/model"
	"fair-mcs/internal/tables"

	"github.com/dustin/go-humanize"
)

// ruleContext is the read-only view every rule evaluates.
type ruleContext struct {
	inputs        model.AssessmentInputs
	results       *model.SimulationResults
	meanSecondary float64
}

type driverRule func(ruleContext) (model.Driver, bool)

type recommendationRule func(ruleContext) []model.Recommendation

// Rule order is presentation order, not magnitude.
var driverRules = []driverRule{
	industryCostDriver,
	dataVolumeDriver,
	sensitiveDataDriver,
	missingControlsDriver,
	regulatoryExposureDriver,
	attackSurfaceDriver,
	ransomwareDriver,
	incidentHistoryDriver,
}

var recommendationRules = []recommendationRule{
	missingControlRecommendations,
	ransomwareReadinessRecommendation,
	cloudProtectionRecommendation,
	incidentReviewRecommendation,
	budgetRecommendation,
}

func buildDrivers(ctx ruleContext) []model.Driver {
	drivers := make([]model.Driver, 0, len(driverRules))
	for _, rule := range driverRules {
		if d, ok := rule(ctx); ok {
			drivers = append(drivers, d)
		}
	}
	return drivers
}

func buildRecommendations(ctx ruleContext) []model.Recommendation {
	recs := make([]model.Recommendation, 0)
	for _, rule := range recommendationRules {
		recs = append(recs, rule(ctx)...)
	}
	return recs
}

func industryCostDriver(ctx ruleContext) (model.Driver, bool) {
	ind := ctx.inputs.Company.Industry
	cost := tables.IndustryAverageCostM(ind)

	impact := model.ImpactLow
	switch {
	case cost > 6:
		impact = model.ImpactHigh
	case cost > 4:
		impact = model.ImpactMedium
	}
	return model.Driver{
		Factor:      "Industry breach cost",
		Impact:      impact,
		Description: fmt.Sprintf("Breaches in the %s sector average $%.2fM.", label(string(ind)), cost),
	}, true
}

func dataVolumeDriver(ctx ruleContext) (model.Driver, bool) {
	records := ctx.inputs.Data.RecordCount

	var impact model.Impact
	switch {
	case records > 1_000_000:
		impact = model.ImpactHigh
	case records > 100_000:
		impact = model.ImpactMedium
	default:
		return model.Driver{}, false
	}
	return model.Driver{
		Factor:      "Data volume",
		Impact:      impact,
		Description: fmt.Sprintf("%s records held; notification and per-record costs scale with volume.", humanize.Comma(int64(records))),
	}, true
}

func sensitiveDataDriver(ctx ruleContext) (model.Driver, bool) {
	var sensitive []string
	for _, dt := range ctx.inputs.Data.DataTypes {
		if dt.IsSensitive() {
			sensitive = append(sensitive, label(string(dt)))
		}
	}
	if len(sensitive) == 0 {
		return model.Driver{}, false
	}
	return model.Driver{
		Factor:      "Sensitive data",
		Impact:      model.ImpactHigh,
		Description: fmt.Sprintf("Holds %s data, which carries the highest per-record breach costs.", strings.Join(sensitive, ", ")),
	}, true
}

func missingControlsDriver(ctx ruleContext) (model.Driver, bool) {
	missing := ctx.inputs.Controls.Missing()

	var impact model.Impact
	switch {
	case len(missing) >= 3:
		impact = model.ImpactHigh
	case len(missing) >= 1:
		impact = model.ImpactMedium
	default:
		return model.Driver{}, false
	}

	names := make([]string, len(missing))
	for i, c := range missing {
		names[i] = label(string(c))
	}
	return model.Driver{
		Factor:      "Missing security controls",
		Impact:      impact,
		Description: fmt.Sprintf("%d of %d controls not in place: %s.", len(missing), len(model.AllControls), strings.Join(names, ", ")),
	}, true
}

func regulatoryExposureDriver(ctx ruleContext) (model.Driver, bool) {
	c := ctx.inputs.Company
	exposure := tables.RegulatoryExposure(c.Geography, c.Industry)
	if exposure < 0.04 {
		return model.Driver{}, false
	}
	return model.Driver{
		Factor:      "Regulatory exposure",
		Impact:      model.ImpactHigh,
		Description: fmt.Sprintf("Combined maximum fines in %s for %s reach %.1f%% of revenue.", strings.ToUpper(string(c.Geography)), label(string(c.Industry)), exposure*100),
	}, true
}

func attackSurfaceDriver(ctx ruleContext) (model.Driver, bool) {
	mult := tables.EmployeeMultiplier(ctx.inputs.Company.EmployeeBand)
	if mult < 1.6 {
		return model.Driver{}, false
	}
	return model.Driver{
		Factor:      "Attack surface",
		Impact:      model.ImpactHigh,
		Description: fmt.Sprintf("Headcount raises threat event frequency by %.1fx.", mult),
	}, true
}

func ransomwareDriver(ctx ruleContext) (model.Driver, bool) {
	if !ctx.inputs.Threats.Has(model.ThreatRansomware) {
		return model.Driver{}, false
	}
	return model.Driver{
		Factor:      "Ransomware concern",
		Impact:      model.ImpactHigh,
		Description: "Ransomware drives both operational disruption and extortion losses.",
	}, true
}

func incidentHistoryDriver(ctx ruleContext) (model.Driver, bool) {
	switch ctx.inputs.Threats.IncidentHistory {
	case model.IncidentsFivePlus:
		return model.Driver{
			Factor:      "Incident history",
			Impact:      model.ImpactHigh,
			Description: "Five or more incidents in the last three years indicates persistent exposure.",
		}, true
	case model.IncidentsTwoToFive:
		return model.Driver{
			Factor:      "Incident history",
			Impact:      model.ImpactMedium,
			Description: "Two to five incidents in the last three years indicates recurring exposure.",
		}, true
	}
	return model.Driver{}, false
}

var controlAdvice = map[model.Control]struct{ title, description string }{
	model.ControlIncidentResponsePlan: {"Adopt an incident response plan", "A tested response plan shortens breach lifecycles and contains losses."},
	model.ControlMFA:                  {"Enforce multi-factor authentication", "MFA blocks most credential-based intrusions."},
	model.ControlSecurityTraining:     {"Run security awareness training", "Regular training reduces successful phishing and social engineering."},
	model.ControlEndpointDetection:    {"Deploy endpoint detection and response", "EDR detects and isolates compromised hosts before lateral movement."},
	model.ControlEncryption:           {"Encrypt sensitive data", "Encryption at rest and in transit reduces what an intruder can use."},
	model.ControlCyberInsurance:       {"Obtain cyber insurance", "Insurance transfers part of the regulatory, legal and notification costs."},
}

func missingControlRecommendations(ctx ruleContext) []model.Recommendation {
	var recs []model.Recommendation
	for _, c := range ctx.inputs.Controls.Missing() {
		advice := controlAdvice[c]
		rec := model.Recommendation{Title: advice.title, Description: advice.description}

		if c == model.ControlCyberInsurance {
			rec.Priority = model.ImpactMedium
			rec.EstimatedReduction = ctx.meanSecondary * insuranceRecovery
		} else {
			effect := math.Abs(tables.ControlModifier(c))
			rec.Priority = priorityFor(effect)
			rec.EstimatedReduction = ctx.results.ALE.Mean * effect
		}
		recs = append(recs, rec)
	}
	return recs
}

func ransomwareReadinessRecommendation(ctx ruleContext) []model.Recommendation {
	c := ctx.inputs.Controls
	if !ctx.inputs.Threats.Has(model.ThreatRansomware) || (c.IncidentResponsePlan && c.EndpointDetection) {
		return nil
	}
	return []model.Recommendation{{
		Title:       "Prepare for ransomware",
		Priority:    model.ImpactHigh,
		Description: "Pair endpoint detection with a rehearsed response plan and offline backups to limit extortion leverage.",
	}}
}

func cloudProtectionRecommendation(ctx ruleContext) []model.Recommendation {
	if ctx.inputs.Data.CloudPercentage < 50 || ctx.inputs.Controls.Encryption {
		return nil
	}
	return []model.Recommendation{{
		Title:       "Protect cloud-hosted data",
		Priority:    model.ImpactMedium,
		Description: fmt.Sprintf("%.0f%% of data lives in the cloud without encryption; review key management and storage exposure.", ctx.inputs.Data.CloudPercentage),
	}}
}

func incidentReviewRecommendation(ctx ruleContext) []model.Recommendation {
	h := ctx.inputs.Threats.IncidentHistory
	if h != model.IncidentsTwoToFive && h != model.IncidentsFivePlus {
		return nil
	}
	return []model.Recommendation{{
		Title:       "Review past incidents",
		Priority:    model.ImpactHigh,
		Description: "Run a root-cause review across recent incidents to close recurring gaps.",
	}}
}

func budgetRecommendation(ctx ruleContext) []model.Recommendation {
	spend := ctx.results.GordonLoebSpend
	if spend <= 0 {
		return nil
	}
	return []model.Recommendation{{
		Title:       "Align the security budget",
		Priority:    model.ImpactMedium,
		Description: fmt.Sprintf("The Gordon-Loeb model suggests up to $%s per year of security investment for this exposure.", humanize.Commaf(math.Round(spend))),
	}}
}

func priorityFor(effect float64) model.Impact {
	switch {
	case effect >= 0.20:
		return model.ImpactHigh
	case effect >= 0.15:
		return model.ImpactMedium
	default:
		return model.ImpactLow
	}
}

// label turns an enum value such as "public_sector" into "public sector".
func label(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
