// Package config loads scenario files and server settings. A scenario file
// is a YAML list of calculator runs; the parser validates slugs and required
// fields against the registry before anything executes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mortcalc/mortcalc/internal/calculators"
)

// Scenario is one calculator run in a scenario file.
type Scenario struct {
	Name       string            `yaml:"name"`
	Calculator string            `yaml:"calculator"`
	Params     map[string]string `yaml:"params"`
}

// ScenarioFile is the top-level document.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// ScenarioParser loads and validates scenario files.
type ScenarioParser struct {
	registry *calculators.Registry
}

// NewScenarioParser creates a parser bound to a calculator registry.
func NewScenarioParser(registry *calculators.Registry) *ScenarioParser {
	return &ScenarioParser{registry: registry}
}

// LoadFromFile loads and validates a YAML scenario file.
func (sp *ScenarioParser) LoadFromFile(filename string) (*ScenarioFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return sp.Load(data)
}

// Load parses and validates scenario YAML.
func (sp *ScenarioParser) Load(data []byte) (*ScenarioFile, error) {
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := sp.Validate(&file); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &file, nil
}

// Validate checks every scenario against the registry: the calculator must
// exist and every required field must be present. Defaults fill in the rest
// at run time.
func (sp *ScenarioParser) Validate(file *ScenarioFile) error {
	if len(file.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}
	for i, sc := range file.Scenarios {
		label := sc.Name
		if label == "" {
			label = fmt.Sprintf("scenario %d", i+1)
		}
		desc, ok := sp.registry.Lookup(sc.Calculator)
		if !ok {
			return fmt.Errorf("%s: unknown calculator %q", label, sc.Calculator)
		}
		if missing := desc.MissingRequired(calculators.Params(sc.Params)); len(missing) > 0 {
			return fmt.Errorf("%s: missing required params %v for %s", label, missing, sc.Calculator)
		}
	}
	return nil
}
