package dataset

import "fmt"

// Frame is an in-memory Dataset made of equally sized series.
type Frame struct {
	series []*Series
	index  map[string]int
	rows   int
}

var _ Dataset = (*Frame)(nil)

// NewFrame builds a frame from the given columns, in order. All columns must
// have the same length and distinct names.
func NewFrame(columns ...*Series) (*Frame, error) {
	f := &Frame{
		series: make([]*Series, 0, len(columns)),
		index:  make(map[string]int, len(columns)),
	}
	for i, s := range columns {
		if s == nil {
			return nil, fmt.Errorf("frame: column %d is nil", i)
		}
		if _, exists := f.index[s.Name()]; exists {
			return nil, fmt.Errorf("frame: %w: %q", ErrDuplicateColumn, s.Name())
		}
		if i == 0 {
			f.rows = s.Len()
		} else if s.Len() != f.rows {
			return nil, fmt.Errorf("frame: column %q has %d rows, expected %d: %w", s.Name(), s.Len(), f.rows, ErrLengthMismatch)
		}
		f.index[s.Name()] = len(f.series)
		f.series = append(f.series, s)
	}
	return f, nil
}

// MustFrame is like NewFrame but panics on error. Intended for fixtures.
func MustFrame(columns ...*Series) *Frame {
	f, err := NewFrame(columns...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Frame) Len() int { return f.rows }

func (f *Frame) Column(name string) (*Series, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return f.series[i], nil
}

// Columns returns the column names in declaration order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.series))
	for i, s := range f.series {
		names[i] = s.Name()
	}
	return names
}

// Filter returns a new frame holding only the rows flagged by mask.
func (f *Frame) Filter(mask Mask) (*Frame, error) {
	if mask.Len() != f.rows {
		return nil, fmt.Errorf("filter: mask has %d rows, frame has %d: %w", mask.Len(), f.rows, ErrLengthMismatch)
	}
	rows := mask.Rows()
	out := &Frame{
		series: make([]*Series, len(f.series)),
		index:  make(map[string]int, len(f.index)),
		rows:   len(rows),
	}
	for i, s := range f.series {
		out.series[i] = s.take(rows)
		out.index[s.Name()] = i
	}
	return out, nil
}
