package engine

import (
	"reflect"
	"testing"

	"fair-mcs/internal/scenario"
)

func TestGenerate_ValidInputs(t *testing.T) {
	for _, profile := range []string{"exposed", "hardened", "mixed"} {
		inputs := Generate(GeneratorConfig{Profile: profile, Count: 200, Seed: 1})
		if len(inputs) != 200 {
			t.Fatalf("%s: expected 200 inputs, got %d", profile, len(inputs))
		}
		for i, in := range inputs {
			if err := in.Validate(); err != nil {
				t.Fatalf("%s: input %d invalid: %v", profile, i, err)
			}
			if in.Data.RecordCount < 1_000 || in.Data.RecordCount > 10_000_000 {
				t.Errorf("%s: record count %d out of range", profile, in.Data.RecordCount)
			}
		}
	}
}

func TestGenerate_ProfilesShiftControls(t *testing.T) {
	count := func(profile string) int {
		n := 0
		for _, in := range Generate(GeneratorConfig{Profile: profile, Count: 300, Seed: 2}) {
			n += 6 - len(in.Controls.Missing())
		}
		return n
	}
	if exposed, hardened := count("exposed"), count("hardened"); exposed >= hardened {
		t.Errorf("hardened profile should enable more controls (exposed=%d, hardened=%d)", exposed, hardened)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := GeneratorConfig{Profile: "mixed", Count: 10, Seed: 42}
	if !reflect.DeepEqual(Generate(cfg), Generate(cfg)) {
		t.Error("same seed should generate identical scenarios")
	}
}

func TestSave_Loadable(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		kind   string
		format string
	}{
		{"single", "json"},
		{"compare", "yaml"},
		{"batch", "toml"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			path, err := Save(dir, tt.format, GeneratorConfig{Profile: "mixed", Kind: tt.kind, Count: 5, Seed: 3})
			if err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			switch tt.kind {
			case "single":
				_, err = scenario.Load(path)
			case "compare":
				_, err = scenario.LoadComparison(path)
			case "batch":
				jobs, e := scenario.LoadBatch(path)
				if e == nil && len(jobs) != 5 {
					t.Errorf("expected 5 jobs, got %d", len(jobs))
				}
				err = e
			}
			if err != nil {
				t.Errorf("generated %s file does not load: %v", tt.kind, err)
			}
		})
	}

	if _, err := Build(GeneratorConfig{Kind: "bogus"}); err == nil {
		t.Error("expected an error for an unknown kind")
	}
}
