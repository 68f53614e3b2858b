package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"fair-mcs/cmd/scenariogen/engine"
)

func main() {
	profile := flag.String("profile", "mixed", "Profile to generate: exposed, hardened, mixed")
	kind := flag.String("kind", "batch", "File kind: single, compare, batch")
	format := flag.String("format", "json", "Encoding: json, toml, yaml")
	outDir := flag.String("out", "./scenarios", "Output directory for generated files")
	count := flag.Int("count", 20, "Number of jobs in a batch file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed for reproducible output")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Profile: *profile,
		Kind:    *kind,
		Count:   *count,
		Seed:    *seed,
	}

	fmt.Printf("Generating %s scenario '%s' (Count: %d, Seed: %d) to %s...\n", cfg.Kind, cfg.Profile, cfg.Count, cfg.Seed, *outDir)

	path, err := engine.Save(*outDir, *format, cfg)
	if err != nil {
		fmt.Printf("Failed to generate scenarios: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. Wrote %s\n", path)
}
