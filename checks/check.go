// Package checks provides the Check capability, a registry of named column
// checks, and paired evaluation of a check's condition and description.
package checks

import (
	"errors"
	"fmt"

	"github.com/spboyer/colcheck/dataset"
)

// ErrInvalidDefinition is returned when a check definition is incomplete.
var ErrInvalidDefinition = errors.New("invalid check definition")

// ConditionFunc returns a mask aligned with ds in which true marks a row that
// FAILS the check for the given column.
type ConditionFunc func(ds dataset.Dataset, column string, opts Options) (dataset.Mask, error)

// DescribeFunc explains the failures recorded in condition.
type DescribeFunc func(ds dataset.Dataset, column string, condition dataset.Mask, opts Options) (string, error)

// Check is a named rule over one or more columns.
type Check interface {
	// Name is the unique registry key.
	Name() string

	// Columns lists the columns the check applies to, in declaration order.
	Columns() []string

	// Evaluate returns the failing-row mask for column.
	Evaluate(ds dataset.Dataset, column string, opts Options) (dataset.Mask, error)

	// Describe explains a mask produced by Evaluate with the same arguments.
	Describe(ds dataset.Dataset, column string, condition dataset.Mask, opts Options) (string, error)
}

// Definition is an immutable Check built from a condition and a description
// function.
type Definition struct {
	name     string
	columns  []string
	calc     ConditionFunc
	describe DescribeFunc
	defaults Options
}

var _ Check = (*Definition)(nil)

// DefinitionOption customizes a Definition at construction.
type DefinitionOption func(*Definition)

// WithDefaults sets options that call-time options are merged over.
func WithDefaults(opts Options) DefinitionOption {
	return func(d *Definition) {
		d.defaults = Options{}.Merge(opts)
	}
}

// NewDefinition validates and builds a check definition. Column existence is
// not checked here; that happens when the check is evaluated.
func NewDefinition(name string, columns []string, calc ConditionFunc, describe DescribeFunc, opts ...DefinitionOption) (*Definition, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrInvalidDefinition)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: check %q has no columns", ErrInvalidDefinition, name)
	}
	for i, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("%w: check %q column %d is empty", ErrInvalidDefinition, name, i)
		}
	}
	if calc == nil {
		return nil, fmt.Errorf("%w: check %q has no condition", ErrInvalidDefinition, name)
	}
	if describe == nil {
		return nil, fmt.Errorf("%w: check %q has no description", ErrInvalidDefinition, name)
	}

	d := &Definition{
		name:     name,
		columns:  append([]string(nil), columns...),
		calc:     calc,
		describe: describe,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *Definition) Name() string { return d.name }

func (d *Definition) Columns() []string { return append([]string(nil), d.columns...) }

// Defaults returns a copy of the definition's default options.
func (d *Definition) Defaults() Options { return Options{}.Merge(d.defaults) }

func (d *Definition) Evaluate(ds dataset.Dataset, column string, opts Options) (dataset.Mask, error) {
	mask, err := d.calc(ds, column, d.defaults.Merge(opts))
	if err != nil {
		return nil, err
	}
	if mask.Len() != ds.Len() {
		return nil, fmt.Errorf("condition returned %d rows for a dataset of %d: %w", mask.Len(), ds.Len(), dataset.ErrLengthMismatch)
	}
	return mask, nil
}

func (d *Definition) Describe(ds dataset.Dataset, column string, condition dataset.Mask, opts Options) (string, error) {
	return d.describe(ds, column, condition, d.defaults.Merge(opts))
}

// Compare returns a ConditionFunc flagging rows where "cell op value" holds.
func Compare(op dataset.Op, value float64) ConditionFunc {
	return func(ds dataset.Dataset, column string, _ Options) (dataset.Mask, error) {
		s, err := ds.Column(column)
		if err != nil {
			return nil, err
		}
		return s.Compare(op, value)
	}
}

// Text returns a DescribeFunc that always yields msg.
func Text(msg string) DescribeFunc {
	return func(dataset.Dataset, string, dataset.Mask, Options) (string, error) {
		return msg, nil
	}
}
