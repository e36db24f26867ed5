package checks

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/spboyer/colcheck/dataset"
)

func frameOf(values []float64) *dataset.Frame {
	reversed := slices.Clone(values)
	slices.Reverse(reversed)
	return dataset.MustFrame(
		dataset.Numbers("a_number", values...),
		dataset.Numbers("number_2", reversed...),
	)
}

// TestProperty_NumbersGreaterThanSix checks the mask, determinism and
// description guarantees of the built-in check over random columns.
func TestProperty_NumbersGreaterThanSix(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	c := NumbersGreaterThanSixCheck()
	values := gen.SliceOf(gen.Float64Range(-50, 50))

	properties.Property("mask length equals row count for every declared column", prop.ForAll(
		func(vs []float64) bool {
			ds := frameOf(vs)
			for _, column := range c.Columns() {
				mask, err := c.Evaluate(ds, column, nil)
				if err != nil || mask.Len() != ds.Len() {
					return false
				}
			}
			return true
		},
		values,
	))

	properties.Property("a row fails exactly when its value is at most 6", prop.ForAll(
		func(vs []float64) bool {
			mask, err := c.Evaluate(frameOf(vs), "a_number", nil)
			if err != nil {
				return false
			}
			for i, v := range vs {
				if mask[i] != (v <= 6) {
					return false
				}
			}
			return true
		},
		values,
	))

	properties.Property("evaluation is deterministic", prop.ForAll(
		func(vs []float64) bool {
			ds := frameOf(vs)
			first, err1 := c.Evaluate(ds, "number_2", nil)
			second, err2 := c.Evaluate(ds, "number_2", nil)
			return err1 == nil && err2 == nil && first.Equal(second)
		},
		values,
	))

	properties.Property("describing a produced mask never fails", prop.ForAll(
		func(vs []float64) bool {
			ds := frameOf(vs)
			for _, column := range c.Columns() {
				mask, err := c.Evaluate(ds, column, nil)
				if err != nil {
					continue
				}
				msg, err := c.Describe(ds, column, mask, nil)
				if err != nil || msg == "" {
					return false
				}
			}
			return true
		},
		values,
	))

	properties.TestingRun(t)
}

// TestProperty_RegistryLastWriteWins registers random names drawn from a
// small alphabet and checks that only the last definition per name survives.
func TestProperty_RegistryLastWriteWins(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("key count equals distinct names and last write wins", prop.ForAll(
		func(names []string) bool {
			r := NewRegistry()
			last := make(map[string]int)
			for i, name := range names {
				column := string(rune('a' + i%26))
				if err := r.Register(name, []string{column}, Compare(dataset.OpLess, 0), Text(name)); err != nil {
					return false
				}
				last[name] = i
			}
			if r.Len() != len(last) || len(r.Names()) != len(last) {
				return false
			}
			for name, i := range last {
				c, ok := r.Get(name)
				if !ok || c.Columns()[0] != string(rune('a'+i%26)) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.OneConstOf("alpha", "beta", "gamma", "delta")),
	))

	properties.TestingRun(t)
}
