package mcp

import (
	"fair-mcs/internal/model"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SimulateArgs are the arguments of run_simulation.
type SimulateArgs struct {
	Inputs           model.AssessmentInputs `json:"inputs" jsonschema:"the organization, data, controls and threat profile to assess"`
	Iterations       int                    `json:"iterations,omitempty" jsonschema:"number of Monte Carlo trials; defaults to the server setting and is capped by it"`
	Seed             *int64                 `json:"seed,omitempty" jsonschema:"optional seed for reproducible results"`
	IncludeRawLosses bool                   `json:"include_raw_losses,omitempty" jsonschema:"return every simulated annual loss"`
	IncludeCharts    bool                   `json:"include_charts,omitempty" jsonschema:"append Mermaid charts of the distribution and exceedance curve"`
}

// CompareArgs are the arguments of compare_scenarios.
type CompareArgs struct {
	Base          model.AssessmentInputs `json:"base" jsonschema:"the current state"`
	Modified      model.AssessmentInputs `json:"modified" jsonschema:"the proposed state, usually with additional controls"`
	Iterations    int                    `json:"iterations,omitempty" jsonschema:"number of Monte Carlo trials per scenario"`
	Seed          *int64                 `json:"seed,omitempty" jsonschema:"optional seed for reproducible results"`
	IncludeCharts bool                   `json:"include_charts,omitempty" jsonschema:"append a Mermaid comparison chart"`
}

// BatchJobArgs is one named assessment in run_batch.
type BatchJobArgs struct {
	ID     string                 `json:"id,omitempty" jsonschema:"optional label; a random ID is assigned when empty"`
	Inputs model.AssessmentInputs `json:"inputs" jsonschema:"the assessment to simulate"`
}

// BatchArgs are the arguments of run_batch.
type BatchArgs struct {
	Jobs       []BatchJobArgs `json:"jobs" jsonschema:"assessments to simulate concurrently"`
	Iterations int            `json:"iterations,omitempty" jsonschema:"number of Monte Carlo trials per job"`
	Seed       *int64         `json:"seed,omitempty" jsonschema:"optional base seed; job i uses seed+i"`
}

// TablesArgs are the (empty) arguments of get_lookup_tables.
type TablesArgs struct{}

func (s *Server) registerTools(server *mcpsdk.Server) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name: "run_simulation",
		Description: "Run a FAIR Monte Carlo simulation of annual cyber loss for one organization. " +
			"Returns the ALE summary (mean, median, P10, P90, P95/PML), risk rating, Gordon-Loeb optimal security spend, " +
			"industry benchmark, loss histogram, exceedance curve, key drivers and prioritized recommendations.\n\n" +
			"STRICT GUARDRAIL: Do not invent loss figures or probabilities if the tool fails. " +
			"The benchmark percentile rank is a linear heuristic, not a true percentile.",
	}, s.handleRunSimulation)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name: "compare_scenarios",
		Description: "Simulate a base and a modified assessment and report the change in mean ALE, PML, " +
			"Gordon-Loeb spend and risk rating. Use it to quantify the value of adding controls. " +
			"Savings are base minus modified; deltas are modified minus base.",
	}, s.handleCompareScenarios)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "run_batch",
		Description: "Simulate several independent assessments concurrently and return one result per job, in input order.",
	}, s.handleRunBatch)

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get_lookup_tables",
		Description: "Return the reference tables the engine uses: per-record costs, industry breach costs, threat event frequencies, control modifiers, company-size factors and regulatory fine rates.",
	}, s.handleGetLookupTables)
}
