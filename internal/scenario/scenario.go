// Package scenario reads and writes assessment inputs as JSON, TOML, or YAML files.
package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"fair-mcs/internal/model"
	"fair-mcs/internal/simulation"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a scenario file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported scenario format")
	ErrEmptyBatch        = errors.New("batch file contains no jobs")
)

// Comparison is the on-disk shape of a what-if comparison.
type Comparison struct {
	Base     model.AssessmentInputs `json:"base"`
	Modified model.AssessmentInputs `json:"modified"`
}

// Batch is the on-disk shape of a batch run.
type Batch struct {
	Jobs []simulation.BatchJob `json:"jobs"`
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", goerr.Wrap(ErrUnsupportedFormat, "unknown file extension", goerr.V("path", path))
}

// Decode parses data in the given format into v. TOML and YAML documents are
// normalized through JSON so every encoding shares the json struct tags.
// Unknown keys are rejected.
func Decode(data []byte, format Format, v any) error {
	var raw []byte
	switch format {
	case FormatJSON:
		raw = data
	case FormatTOML:
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return goerr.Wrap(err, "failed to parse TOML")
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return goerr.Wrap(err, "failed to normalize TOML")
		}
		raw = b
	case FormatYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return goerr.Wrap(err, "failed to parse YAML")
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return goerr.Wrap(err, "failed to normalize YAML")
		}
		raw = b
	default:
		return goerr.Wrap(ErrUnsupportedFormat, "cannot decode", goerr.V("format", format))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode scenario", goerr.V("format", format))
	}
	return nil
}

// Encode renders v in the given format.
func Encode(v any, format Format) ([]byte, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal scenario")
	}
	if format == FormatJSON {
		return append(raw, '\n'), nil
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, goerr.Wrap(err, "scenario must encode as an object")
	}

	switch format {
	case FormatTOML:
		out, err := toml.Marshal(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode TOML")
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode YAML")
		}
		return out, nil
	}
	return nil, goerr.Wrap(ErrUnsupportedFormat, "cannot encode", goerr.V("format", format))
}

func decodeFile(path string, v any) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read scenario file", goerr.V("path", path))
	}
	if err := Decode(data, format, v); err != nil {
		return goerr.Wrap(err, "invalid scenario file", goerr.V("path", path))
	}
	return nil
}

// Load reads and validates a single assessment.
func Load(path string) (model.AssessmentInputs, error) {
	var in model.AssessmentInputs
	if err := decodeFile(path, &in); err != nil {
		return model.AssessmentInputs{}, err
	}
	if err := in.Validate(); err != nil {
		return model.AssessmentInputs{}, goerr.Wrap(err, "scenario failed validation", goerr.V("path", path))
	}
	return in, nil
}

// LoadComparison reads and validates a base/modified pair.
func LoadComparison(path string) (Comparison, error) {
	var c Comparison
	if err := decodeFile(path, &c); err != nil {
		return Comparison{}, err
	}
	if err := c.Base.Validate(); err != nil {
		return Comparison{}, goerr.Wrap(err, "base scenario failed validation", goerr.V("path", path))
	}
	if err := c.Modified.Validate(); err != nil {
		return Comparison{}, goerr.Wrap(err, "modified scenario failed validation", goerr.V("path", path))
	}
	return c, nil
}

// LoadBatch reads and validates a list of jobs.
func LoadBatch(path string) ([]simulation.BatchJob, error) {
	var b Batch
	if err := decodeFile(path, &b); err != nil {
		return nil, err
	}
	if len(b.Jobs) == 0 {
		return nil, goerr.Wrap(ErrEmptyBatch, "nothing to simulate", goerr.V("path", path))
	}
	for i, job := range b.Jobs {
		if err := job.Inputs.Validate(); err != nil {
			return nil, goerr.Wrap(err, "batch job failed validation", goerr.V("index", i), goerr.V("id", job.ID))
		}
	}
	return b.Jobs, nil
}

// LoadJobs reads batch jobs from several files. A file holding a "jobs" list
// contributes all of them; any other file is a single assessment whose job ID
// is the file name without its extension.
func LoadJobs(paths ...string) ([]simulation.BatchJob, error) {
	var jobs []simulation.BatchJob
	for _, path := range paths {
		var doc map[string]any
		if err := decodeFile(path, &doc); err != nil {
			return nil, err
		}
		if _, ok := doc["jobs"]; ok {
			batch, err := LoadBatch(path)
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, batch...)
			continue
		}
		in, err := Load(path)
		if err != nil {
			return nil, err
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		jobs = append(jobs, simulation.BatchJob{ID: id, Inputs: in})
	}
	if len(jobs) == 0 {
		return nil, goerr.Wrap(ErrEmptyBatch, "no scenario files given")
	}
	return jobs, nil
}

// Save writes v to path in the format implied by its extension.
func Save(path string, v any) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(v, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write scenario file", goerr.V("path", path))
	}
	return nil
}
