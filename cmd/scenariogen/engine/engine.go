package engine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"fair-mcs/internal/model"
	"fair-mcs/internal/rng"
	"fair-mcs/internal/scenario"
	"fair-mcs/internal/simulation"
)

type GeneratorConfig struct {
	Profile string // "exposed", "hardened" or "mixed"
	Kind    string // "single", "compare" or "batch"
	Count   int
	Seed    int64
}

func pick[T any](src rng.Source, values []T) T {
	i := int(src.Float64() * float64(len(values)))
	if i >= len(values) {
		i = len(values) - 1
	}
	return values[i]
}

// Generate returns count random, valid assessments.
func Generate(cfg GeneratorConfig) []model.AssessmentInputs {
	src := rng.NewSeeded(cfg.Seed)
	out := make([]model.AssessmentInputs, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		in := model.AssessmentInputs{
			Company: model.CompanyProfile{
				Industry:     pick(src, model.Industries),
				RevenueBand:  pick(src, model.RevenueBands),
				EmployeeBand: pick(src, model.EmployeeBands),
				Geography:    pick(src, model.Geographies),
			},
			Data: model.DataProfile{
				// Log-uniform between 1K and 10M records
				RecordCount:     int(1e3 * math.Pow(10, src.Float64()*4)),
				CloudPercentage: float64(int(src.Float64() * 101)),
			},
			Threats: model.ThreatProfile{
				IncidentHistory: pick(src, model.IncidentHistories),
			},
		}

		for _, dt := range model.DataTypes {
			if src.Float64() < 0.35 {
				in.Data.DataTypes = append(in.Data.DataTypes, dt)
			}
		}
		for _, th := range model.ThreatTypes {
			if len(in.Threats.Types) < model.MaxThreats && src.Float64() < 0.3 {
				in.Threats.Types = append(in.Threats.Types, th)
			}
		}

		// Probability that each control is enabled
		p := 0.5
		switch cfg.Profile {
		case "exposed":
			p = 0.15
		case "hardened":
			p = 0.9
		}
		in.Controls = randomControls(src, p)

		out = append(out, in)
	}
	return out
}

func randomControls(src rng.Source, p float64) model.SecurityControls {
	return model.SecurityControls{
		IncidentResponsePlan: src.Float64() < p,
		MFA:                  src.Float64() < p,
		SecurityTraining:     src.Float64() < p,
		EndpointDetection:    src.Float64() < p,
		Encryption:           src.Float64() < p,
		CyberInsurance:       src.Float64() < p,
	}
}

// Build returns the document for cfg.Kind, ready to be encoded.
func Build(cfg GeneratorConfig) (any, error) {
	switch cfg.Kind {
	case "single":
		cfg.Count = 1
		return Generate(cfg)[0], nil
	case "compare":
		cfg.Count = 1
		base := Generate(cfg)[0]
		modified := base
		modified.Controls = model.AllEnabled()
		return scenario.Comparison{Base: base, Modified: modified}, nil
	case "batch":
		if cfg.Count < 1 {
			return nil, fmt.Errorf("batch needs a positive count, got %d", cfg.Count)
		}
		inputs := Generate(cfg)
		jobs := make([]simulation.BatchJob, len(inputs))
		for i, in := range inputs {
			jobs[i] = simulation.BatchJob{ID: fmt.Sprintf("%s-%03d", cfg.Profile, i+1), Inputs: in}
		}
		return scenario.Batch{Jobs: jobs}, nil
	}
	return nil, fmt.Errorf("unknown kind %q", cfg.Kind)
}

// Save writes the generated document to outDir and returns its path.
func Save(outDir, format string, cfg GeneratorConfig) (string, error) {
	doc, err := Build(cfg)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s_%s.%s", cfg.Kind, cfg.Profile, format))
	if err := scenario.Save(path, doc); err != nil {
		return "", err
	}
	return path, nil
}
