package checks

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spboyer/colcheck/dataset"
	"github.com/spboyer/colcheck/internal/validation"
	"gopkg.in/yaml.v3"
)

// checksFile is the YAML layout of a declarative check definition file.
type checksFile struct {
	Version string      `yaml:"version"`
	Checks  []checkSpec `yaml:"checks"`
}

type checkSpec struct {
	Name      string   `yaml:"name"`
	Columns   []string `yaml:"columns"`
	FailsWhen struct {
		Op    string  `yaml:"op"`
		Value float64 `yaml:"value"`
	} `yaml:"fails_when"`
	Description string         `yaml:"description"`
	Options     map[string]any `yaml:"options,omitempty"`
}

// comparisonOptions are the option keys recognized by declarative checks.
type comparisonOptions struct {
	Value *float64 `mapstructure:"value"`
}

// Parse reads check definitions from a YAML document. The document is
// validated against the checks schema before any definition is built.
func Parse(data []byte) ([]*Definition, error) {
	if errs := validation.ValidateChecksBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDefinition, strings.Join(errs, "; "))
	}

	var file checksFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing checks: %w", err)
	}

	defs := make([]*Definition, 0, len(file.Checks))
	for _, spec := range file.Checks {
		d, err := spec.definition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// LoadFile reads and parses a check definition file.
func LoadFile(path string) ([]*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("checks: reading %s: %w", path, err)
	}

	defs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("checks: %s: %w", path, err)
	}
	slog.Debug("Loaded check definitions", "path", path, "count", len(defs))
	return defs, nil
}

// Load registers every definition in the file at path. Nothing is
// registered when the file is invalid.
func (r *Registry) Load(path string) error {
	defs, err := LoadFile(path)
	if err != nil {
		return err
	}
	for _, d := range defs {
		if err := r.Add(d); err != nil {
			return err
		}
	}
	return nil
}

func (s checkSpec) definition() (*Definition, error) {
	op, err := dataset.ParseOp(s.FailsWhen.Op)
	if err != nil {
		return nil, fmt.Errorf("%w: check %q: %w", ErrInvalidDefinition, s.Name, err)
	}

	describe, err := descriptionTemplate(s.Name, s.Description)
	if err != nil {
		return nil, err
	}

	return NewDefinition(s.Name, s.Columns, comparison(op, s.FailsWhen.Value), describe, WithDefaults(s.Options))
}

func comparison(op dataset.Op, value float64) ConditionFunc {
	return func(ds dataset.Dataset, column string, opts Options) (dataset.Mask, error) {
		var o comparisonOptions
		if err := opts.Decode(&o); err != nil {
			return nil, err
		}
		v := value
		if o.Value != nil {
			v = *o.Value
		}
		return Compare(op, v)(ds, column, opts)
	}
}
