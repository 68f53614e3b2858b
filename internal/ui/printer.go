package ui

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"fair-mcs/internal/model"
	"fair-mcs/internal/simulation"
	"fair-mcs/internal/tables"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// Money formats a dollar amount with thousands separators and no cents.
func Money(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + humanize.Comma(-n)
	}
	return "$" + humanize.Comma(n)
}

// Percent formats a fraction as a percentage.
func Percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64) + "%"
}

func ratingStyle(r model.RiskRating) string {
	switch r {
	case model.RiskCritical:
		return pterm.FgRed.Sprint(string(r))
	case model.RiskHigh:
		return pterm.FgLightRed.Sprint(string(r))
	case model.RiskModerate:
		return pterm.FgYellow.Sprint(string(r))
	default:
		return pterm.FgGreen.Sprint(string(r))
	}
}

func impactStyle(i model.Impact) string {
	switch i {
	case model.ImpactHigh:
		return pterm.FgRed.Sprint(string(i))
	case model.ImpactMedium:
		return pterm.FgYellow.Sprint(string(i))
	default:
		return pterm.FgBlue.Sprint(string(i))
	}
}

// PrintResults renders a single simulation result.
func PrintResults(res *model.SimulationResults) {
	pterm.DefaultSection.Println("Annualized Loss Expectancy")
	pterm.Info.Printf("%s iterations, mean vulnerability %s\n",
		humanize.Comma(int64(res.Iterations)), Percent(res.MeanVulnerability))

	_ = pterm.DefaultTable.WithHasHeader().WithData([][]string{
		{"Metric", "Value"},
		{"Mean ALE", Money(res.ALE.Mean)},
		{"Median", Money(res.ALE.Median)},
		{"P10", Money(res.ALE.P10)},
		{"P90", Money(res.ALE.P90)},
		{"P95 (PML)", Money(res.ALE.P95)},
		{"Risk Rating", ratingStyle(res.RiskRating)},
		{"Gordon-Loeb Spend", Money(res.GordonLoebSpend)},
		{"Industry Median", Money(res.IndustryBenchmark.IndustryMedian)},
		{"Benchmark Rank", strconv.Itoa(res.IndustryBenchmark.PercentileRank)},
	}).Render()

	if len(res.DistributionBuckets) > 0 {
		pterm.DefaultSection.Println("Loss Distribution")
		bars := make(pterm.Bars, 0, len(res.DistributionBuckets))
		for _, b := range res.DistributionBuckets {
			bars = append(bars, pterm.Bar{Label: Money(b.Min), Value: b.Count})
		}
		_ = pterm.DefaultBarChart.WithHorizontal().WithBars(bars).WithShowValue().Render()
	}

	printDrivers(res.KeyDrivers)
	printRecommendations(res.Recommendations)
}

func printDrivers(drivers []model.Driver) {
	if len(drivers) == 0 {
		return
	}
	pterm.DefaultSection.Println("Key Drivers")
	data := [][]string{{"Impact", "Factor", "Description"}}
	for _, d := range drivers {
		data = append(data, []string{impactStyle(d.Impact), pterm.FgCyan.Sprint(d.Factor), d.Description})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printRecommendations(recs []model.Recommendation) {
	if len(recs) == 0 {
		pterm.Success.Println("No recommendations. Controls look complete.")
		return
	}
	pterm.DefaultSection.Println("Recommendations")
	data := [][]string{{"Priority", "Title", "Est. Reduction", "Description"}}
	for _, r := range recs {
		reduction := "-"
		if r.EstimatedReduction > 0 {
			reduction = Money(r.EstimatedReduction)
		}
		data = append(data, []string{impactStyle(r.Priority), r.Title, reduction, r.Description})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// PrintComparison renders a base-vs-modified comparison.
func PrintComparison(cmp *model.ScenarioComparison) {
	pterm.DefaultSection.Println("Scenario Comparison")
	_ = pterm.DefaultTable.WithHasHeader().WithData([][]string{
		{"Metric", "Base", "Modified", "Delta"},
		{"Mean ALE", Money(cmp.Base.ALE.Mean), Money(cmp.Modified.ALE.Mean), Money(cmp.Delta.AleMean)},
		{"P95 (PML)", Money(cmp.Base.ALE.P95), Money(cmp.Modified.ALE.P95), Money(cmp.Delta.AlePml95)},
		{"Gordon-Loeb Spend", Money(cmp.Base.GordonLoebSpend), Money(cmp.Modified.GordonLoebSpend), Money(cmp.Delta.GordonLoeb)},
		{"Risk Rating", ratingStyle(cmp.Base.RiskRating), ratingStyle(cmp.Modified.RiskRating), strconv.FormatBool(cmp.Delta.RiskRatingChanged)},
	}).Render()

	if cmp.Savings.AleMean > 0 {
		pterm.Success.Printf("Expected annual savings: %s (PML %s)\n", Money(cmp.Savings.AleMean), Money(cmp.Savings.AlePml95))
	} else {
		pterm.Warning.Printf("Modified scenario does not reduce expected loss (%s)\n", Money(cmp.Savings.AleMean))
	}
}

// PrintBatch renders one summary row per batch job.
func PrintBatch(results []simulation.BatchResult) {
	data := [][]string{{"Job", "Mean ALE", "P95 (PML)", "Rating", "Gordon-Loeb"}}
	for _, r := range results {
		data = append(data, []string{
			r.ID,
			Money(r.Results.ALE.Mean),
			Money(r.Results.ALE.P95),
			ratingStyle(r.Results.RiskRating),
			Money(r.Results.GordonLoebSpend),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Success.Printf("Simulated %d scenarios\n", len(results))
}

// PrintTables renders the reference lookup tables.
func PrintTables(s tables.Snapshot) {
	pterm.DefaultSection.Println("Industry Breach Cost and Threat Event Frequency")
	industries := sortedKeys(s.IndustryCostsM)
	data := [][]string{{"Industry", "Avg Cost", "TEF min", "TEF mode", "TEF max", "Fine %"}}
	for _, ind := range industries {
		tef := s.TEF[ind]
		data = append(data, []string{
			string(ind),
			Money(s.IndustryCostsM[ind] * 1e6),
			fmt.Sprintf("%g", tef.Min),
			fmt.Sprintf("%g", tef.Mode),
			fmt.Sprintf("%g", tef.Max),
			Percent(s.IndustryFinePct[ind]),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	pterm.DefaultSection.Println("Per-Record Cost")
	data = [][]string{{"Data Type", "Cost"}}
	for _, dt := range sortedKeys(s.RecordCosts) {
		data = append(data, []string{string(dt), Money(s.RecordCosts[dt])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	pterm.DefaultSection.Println("Control Modifiers")
	data = [][]string{{"Control", "Vulnerability Modifier"}}
	for _, c := range sortedKeys(s.ControlModifiers) {
		data = append(data, []string{string(c), Percent(s.ControlModifiers[c])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	pterm.DefaultSection.Println("Company Size and Geography")
	data = [][]string{{"Revenue Band", "Midpoint"}}
	for _, b := range sortedKeys(s.RevenueMidpoints) {
		data = append(data, []string{string(b), Money(s.RevenueMidpoints[b])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	data = [][]string{{"Employee Band", "Multiplier"}}
	for _, b := range sortedKeys(s.EmployeeMultipliers) {
		data = append(data, []string{string(b), fmt.Sprintf("%.1fx", s.EmployeeMultipliers[b])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	data = [][]string{{"Geography", "Fine %"}}
	for _, g := range sortedKeys(s.GeographyFinePct) {
		data = append(data, []string{string(g), Percent(s.GeographyFinePct[g])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Printf("Base vulnerability: %s\n", Percent(s.BaseVulnerability))
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// StartSpinner shows progress for long simulations.
func StartSpinner(text string) *pterm.SpinnerPrinter {
	spinner, _ := pterm.DefaultSpinner.Start(text)
	return spinner
}
