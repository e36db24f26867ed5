package checks

import "github.com/spboyer/colcheck/dataset"

// NumbersGreaterThanSix is the name of the built-in numeric threshold check.
const NumbersGreaterThanSix = "This check is for numbers being greater than 6"

// numbersGreaterThanSixDescription is kept as configured. It does not match
// the threshold of 6.
const numbersGreaterThanSixDescription = "There are numbers less than or equal to 0"

// NumbersGreaterThanSixCheck flags values <= 6 in a_number and number_2.
// Options are ignored.
func NumbersGreaterThanSixCheck() *Definition {
	d, err := NewDefinition(
		NumbersGreaterThanSix,
		[]string{"a_number", "number_2"},
		Compare(dataset.OpLessEqual, 6),
		Text(numbersGreaterThanSixDescription),
	)
	if err != nil {
		panic(err)
	}
	return d
}

// Default returns a new registry holding the built-in checks.
func Default() *Registry {
	r := NewRegistry()
	r.MustAdd(NumbersGreaterThanSixCheck())
	return r
}
