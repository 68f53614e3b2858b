package visuals

import (
	"fmt"
	"math"
	"strings"

	"fair-mcs/internal/model"

	"github.com/dustin/go-humanize"
)

// millions converts a dollar amount into the unit used on chart axes.
func millions(v float64) float64 {
	return v / 1e6
}

// compactMoney renders a short axis label such as "$1.2M".
func compactMoney(v float64) string {
	return "$" + strings.ReplaceAll(humanize.SIWithDigits(v, 1, ""), " ", "")
}

// GenerateLossDistributionChart creates a Mermaid bar chart of the annual-loss histogram.
func GenerateLossDistributionChart(buckets []model.DistributionBucket) string {
	if len(buckets) == 0 {
		return ""
	}

	var labels []string
	var values []string
	maxVal := 0.0

	for _, b := range buckets {
		labels = append(labels, fmt.Sprintf("\"%s\"", compactMoney(b.Min)))
		pct := b.Probability * 100
		values = append(values, fmt.Sprintf("%.1f", pct))
		if pct > maxVal {
			maxVal = pct
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Annual Loss Distribution\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Share of Trials (%%)\" 0 --> %d\n", int(math.Ceil(math.Max(1, maxVal*1.2)))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateExceedanceChart creates a Mermaid line chart of the loss exceedance curve.
func GenerateExceedanceChart(curve []model.ExceedancePoint) string {
	if len(curve) == 0 {
		return ""
	}

	// Every fifth point keeps the x-axis readable.
	step := 1
	if len(curve) > 10 {
		step = 5
	}

	var labels []string
	var values []string
	plot := func(p model.ExceedancePoint) {
		labels = append(labels, fmt.Sprintf("\"%s\"", compactMoney(p.Loss)))
		values = append(values, fmt.Sprintf("%.1f", p.Probability*100))
	}
	for i := 0; i < len(curve); i += step {
		plot(curve[i])
	}
	// the tail at the maximum loss is always shown
	if last := len(curve) - 1; last%step != 0 {
		plot(curve[last])
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Loss Exceedance Curve\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString("    y-axis \"P(Loss > x) (%)\" 0 --> 100\n")
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateALEChart creates a Mermaid bar chart of the ALE summary percentiles.
func GenerateALEChart(ale model.ALESummary) string {
	if ale.P95 == 0 {
		return ""
	}

	labels := []string{
		"\"P10\"",
		"\"Median\"",
		"\"Mean\"",
		"\"P90\"",
		"\"P95 (PML)\"",
	}
	values := []string{
		fmt.Sprintf("%.2f", millions(ale.P10)),
		fmt.Sprintf("%.2f", millions(ale.Median)),
		fmt.Sprintf("%.2f", millions(ale.Mean)),
		fmt.Sprintf("%.2f", millions(ale.P90)),
		fmt.Sprintf("%.2f", millions(ale.P95)),
	}

	maxVal := math.Max(ale.P95, ale.Mean)

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Annualized Loss Expectancy\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Loss ($M)\" 0 --> %.2f\n", millions(maxVal)*1.1))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateComparisonChart plots base and modified mean ALE and PML side by side.
func GenerateComparisonChart(cmp *model.ScenarioComparison) string {
	if cmp == nil || cmp.Base == nil || cmp.Modified == nil {
		return ""
	}

	base, mod := cmp.Base.ALE, cmp.Modified.ALE
	maxVal := math.Max(math.Max(base.P95, mod.P95), math.Max(base.Mean, mod.Mean))
	if maxVal == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Scenario Comparison (Base vs Modified)\"\n")
	sb.WriteString("    x-axis [\"Base Mean\", \"Modified Mean\", \"Base PML\", \"Modified PML\"]\n")
	sb.WriteString(fmt.Sprintf("    y-axis \"Loss ($M)\" 0 --> %.2f\n", millions(maxVal)*1.1))
	sb.WriteString(fmt.Sprintf("    bar [%.2f, %.2f, %.2f, %.2f]\n",
		millions(base.Mean), millions(mod.Mean), millions(base.P95), millions(mod.P95)))
	sb.WriteString("```")
	return sb.String()
}

// GenerateRiskSummary bundles every chart for a single result.
func GenerateRiskSummary(res *model.SimulationResults) string {
	if res == nil {
		return ""
	}
	var parts []string
	for _, chart := range []string{
		GenerateALEChart(res.ALE),
		GenerateLossDistributionChart(res.DistributionBuckets),
		GenerateExceedanceChart(res.ExceedanceCurve),
	} {
		if chart != "" {
			parts = append(parts, chart)
		}
	}
	return strings.Join(parts, "\n\n")
}
