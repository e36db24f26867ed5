package dataset

import (
	"fmt"
	"math"
)

// Kind is the storage type of a column.
type Kind string

const (
	// KindNumber columns hold float64 cells; null cells are NaN.
	KindNumber Kind = "number"
	// KindText columns hold string cells.
	KindText Kind = "text"
)

// Op is an elementwise comparison operator.
type Op string

const (
	OpLess         Op = "lt"
	OpLessEqual    Op = "le"
	OpGreater      Op = "gt"
	OpGreaterEqual Op = "ge"
	OpEqual        Op = "eq"
	OpNotEqual     Op = "ne"
)

// Ops lists every supported operator.
var Ops = []Op{OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpEqual, OpNotEqual}

// ParseOp converts an operator name such as "le" into an Op. Names are
// matched exactly.
func ParseOp(s string) (Op, error) {
	op := Op(s)
	for _, known := range Ops {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

func (op Op) apply(a, b float64) bool {
	switch op {
	case OpLess:
		return a < b
	case OpLessEqual:
		return a <= b
	case OpGreater:
		return a > b
	case OpGreaterEqual:
		return a >= b
	case OpEqual:
		return a == b
	case OpNotEqual:
		// null cells are never flagged, not even by "ne"
		return !math.IsNaN(a) && a != b
	}
	return false
}

// Series is a named, immutable column.
type Series struct {
	name    string
	kind    Kind
	numbers []float64
	texts   []string
}

// Numbers creates a number column. Use math.NaN() for null cells.
func Numbers(name string, values ...float64) *Series {
	return &Series{name: name, kind: KindNumber, numbers: append([]float64(nil), values...)}
}

// Texts creates a text column.
func Texts(name string, values ...string) *Series {
	return &Series{name: name, kind: KindText, texts: append([]string(nil), values...)}
}

func (s *Series) Name() string { return s.name }

func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of cells.
func (s *Series) Len() int {
	if s.kind == KindNumber {
		return len(s.numbers)
	}
	return len(s.texts)
}

// Number returns cell i of a number column, or NaN for text columns.
func (s *Series) Number(i int) float64 {
	if s.kind != KindNumber {
		return math.NaN()
	}
	return s.numbers[i]
}

// Text returns cell i rendered as a string. Null number cells render empty.
func (s *Series) Text(i int) string {
	if s.kind == KindText {
		return s.texts[i]
	}
	if math.IsNaN(s.numbers[i]) {
		return ""
	}
	return formatNumber(s.numbers[i])
}

// Compare flags every cell for which "cell op value" holds. Null cells are
// never flagged.
func (s *Series) Compare(op Op, value float64) (Mask, error) {
	if s.kind != KindNumber {
		return nil, fmt.Errorf("compare column %q: %w", s.name, ErrNotNumeric)
	}
	mask := make(Mask, len(s.numbers))
	for i, v := range s.numbers {
		mask[i] = op.apply(v, value)
	}
	return mask, nil
}

// Stats summarizes the non-null cells of a number column.
type Stats struct {
	Count int
	Nulls int
	Min   float64
	Max   float64
	Sum   float64
	Mean  float64
}

// Stats computes aggregate statistics. Text columns report only their length
// as Count.
func (s *Series) Stats() Stats {
	if s.kind != KindNumber {
		return Stats{Count: len(s.texts)}
	}

	var st Stats
	for _, v := range s.numbers {
		if math.IsNaN(v) {
			st.Nulls++
			continue
		}
		if st.Count == 0 || v < st.Min {
			st.Min = v
		}
		if st.Count == 0 || v > st.Max {
			st.Max = v
		}
		st.Sum += v
		st.Count++
	}
	if st.Count > 0 {
		st.Mean = st.Sum / float64(st.Count)
	}
	return st
}

func (s *Series) take(rows []int) *Series {
	out := &Series{name: s.name, kind: s.kind}
	if s.kind == KindNumber {
		out.numbers = make([]float64, len(rows))
		for i, r := range rows {
			out.numbers[i] = s.numbers[r]
		}
		return out
	}
	out.texts = make([]string, len(rows))
	for i, r := range rows {
		out.texts[i] = s.texts[r]
	}
	return out
}
