package checks

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spboyer/colcheck/dataset"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownColumn is returned by Apply for a column the check does not declare.
var ErrUnknownColumn = errors.New("column is not declared by the check")

// Evaluation stages reported by EvaluationError.
const (
	StageCondition   = "condition"
	StageDescription = "description"
)

// EvaluationError reports a failure while evaluating one check on one column.
type EvaluationError struct {
	Check  string
	Column string
	Stage  string
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("check %q on column %q: %s: %v", e.Check, e.Column, e.Stage, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// Finding is the outcome of applying one check to one column.
type Finding struct {
	Check       string
	Column      string
	Description string // empty when no row failed
	Failing     int
	Rows        []int
	Total       int
}

// Passed reports whether no row failed.
func (f *Finding) Passed() bool { return f.Failing == 0 }

var findingPrinter = message.NewPrinter(language.English)

// String renders a one-line summary of the finding.
func (f *Finding) String() string {
	if f.Passed() {
		return findingPrinter.Sprintf("%s [%s]: passed (%d rows)", f.Check, f.Column, f.Total)
	}
	return findingPrinter.Sprintf("%s [%s]: %d of %d rows failed: %s", f.Check, f.Column, f.Failing, f.Total, f.Description)
}

// Apply evaluates c on column and, when any row fails, asks c to describe
// the failing mask with the same dataset, column and options.
func Apply(c Check, ds dataset.Dataset, column string, opts Options) (*Finding, error) {
	if !slices.Contains(c.Columns(), column) {
		return nil, &EvaluationError{Check: c.Name(), Column: column, Stage: StageCondition, Err: ErrUnknownColumn}
	}

	mask, err := c.Evaluate(ds, column, opts)
	if err != nil {
		return nil, &EvaluationError{Check: c.Name(), Column: column, Stage: StageCondition, Err: err}
	}

	finding := &Finding{
		Check:   c.Name(),
		Column:  column,
		Failing: mask.Count(),
		Rows:    mask.Rows(),
		Total:   mask.Len(),
	}

	if finding.Failing > 0 {
		finding.Description, err = c.Describe(ds, column, mask, opts)
		if err != nil {
			return nil, &EvaluationError{Check: c.Name(), Column: column, Stage: StageDescription, Err: err}
		}
	}

	slog.Debug("Check evaluated", "check", finding.Check, "column", column, "failing", finding.Failing, "total", finding.Total)
	return finding, nil
}
