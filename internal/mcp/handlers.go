package mcp

import (
	"context"
	"fmt"

	"fair-mcs/internal/model"
	"fair-mcs/internal/rng"
	"fair-mcs/internal/simulation"
	"fair-mcs/internal/tables"
	"fair-mcs/internal/visuals"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

func (s *Server) handleRunSimulation(ctx context.Context, req *mcpsdk.CallToolRequest, args SimulateArgs) (*mcpsdk.CallToolResult, any, error) {
	iterations := s.cfg.ClampIterations(args.Iterations)
	log.Info().
		Str("industry", string(args.Inputs.Company.Industry)).
		Int("iterations", iterations).
		Msg("run_simulation")

	res, err := simulation.NewEngine(s.sources(args.Seed)).Simulate(args.Inputs, iterations)
	if err != nil {
		return nil, nil, fmt.Errorf("simulation failed: %w", err)
	}
	if !args.IncludeRawLosses {
		res.RawLosses = nil
	}

	var charts []string
	if args.IncludeCharts || s.cfg.EnableMermaidCharts {
		charts = append(charts, visuals.GenerateRiskSummary(res))
	}
	return textResult(res, charts...)
}

func (s *Server) handleCompareScenarios(ctx context.Context, req *mcpsdk.CallToolRequest, args CompareArgs) (*mcpsdk.CallToolResult, any, error) {
	iterations := s.cfg.ClampIterations(args.Iterations)
	log.Info().Int("iterations", iterations).Msg("compare_scenarios")

	cmp, err := simulation.NewEngine(s.sources(args.Seed)).CompareScenarios(args.Base, args.Modified, iterations)
	if err != nil {
		return nil, nil, fmt.Errorf("comparison failed: %w", err)
	}
	cmp.Base.RawLosses = nil
	cmp.Modified.RawLosses = nil

	var charts []string
	if args.IncludeCharts || s.cfg.EnableMermaidCharts {
		charts = append(charts, visuals.GenerateComparisonChart(cmp))
	}
	return textResult(cmp, charts...)
}

func (s *Server) handleRunBatch(ctx context.Context, req *mcpsdk.CallToolRequest, args BatchArgs) (*mcpsdk.CallToolResult, any, error) {
	if len(args.Jobs) == 0 {
		return nil, nil, fmt.Errorf("run_batch requires at least one job")
	}
	iterations := s.cfg.ClampIterations(args.Iterations)
	log.Info().Int("jobs", len(args.Jobs)).Int("iterations", iterations).Msg("run_batch")

	jobs := make([]simulation.BatchJob, len(args.Jobs))
	for i, j := range args.Jobs {
		jobs[i] = simulation.BatchJob{ID: j.ID, Inputs: j.Inputs}
	}

	var sources simulation.SourceFactory
	switch {
	case args.Seed != nil:
		sources = simulation.SeededSources(*args.Seed)
	case s.cfg.HasSeed:
		sources = simulation.SeededSources(s.cfg.Seed)
	default:
		sources = func(int) rng.Source { return s.sources(nil) }
	}

	results, err := simulation.RunBatch(ctx, jobs, iterations, s.cfg.BatchConcurrency, sources)
	if err != nil {
		return nil, nil, fmt.Errorf("batch failed: %w", err)
	}
	for _, r := range results {
		r.Results.RawLosses = nil
	}
	return textResult(results)
}

func (s *Server) handleGetLookupTables(ctx context.Context, req *mcpsdk.CallToolRequest, args TablesArgs) (*mcpsdk.CallToolResult, any, error) {
	return textResult(lookupTables{
		Tables:        tables.Current(),
		Industries:    model.Industries,
		RevenueBands:  model.RevenueBands,
		EmployeeBands: model.EmployeeBands,
		Geographies:   model.Geographies,
		DataTypes:     model.DataTypes,
		ThreatTypes:   model.ThreatTypes,
		Controls:      model.AllControls,
	})
}

// lookupTables pairs the reference data with the accepted enum values.
type lookupTables struct {
	Tables        tables.Snapshot      `json:"tables"`
	Industries    []model.Industry     `json:"industries"`
	RevenueBands  []model.RevenueBand  `json:"revenue_bands"`
	EmployeeBands []model.EmployeeBand `json:"employee_bands"`
	Geographies   []model.Geography    `json:"geographies"`
	DataTypes     []model.DataType     `json:"data_types"`
	ThreatTypes   []model.ThreatType   `json:"threat_types"`
	Controls      []model.Control      `json:"controls"`
}
