package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		_, err := NewFrame(Numbers("a", 1, 2), Numbers("b", 1))
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := NewFrame(Numbers("a", 1), Texts("a", "x"))
		require.ErrorIs(t, err, ErrDuplicateColumn)
	})

	t.Run("nil column", func(t *testing.T) {
		_, err := NewFrame(Numbers("a", 1), nil)
		require.Error(t, err)
	})

	t.Run("empty frame", func(t *testing.T) {
		f, err := NewFrame()
		require.NoError(t, err)
		assert.Equal(t, 0, f.Len())
		assert.Empty(t, f.Columns())
	})
}

func TestFrameColumn(t *testing.T) {
	f := MustFrame(Numbers("a_number", 3, 7), Texts("label", "x", "y"))

	s, err := f.Column("label")
	require.NoError(t, err)
	assert.Equal(t, "label", s.Name())

	_, err = f.Column("missing")
	require.ErrorIs(t, err, ErrColumnNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestFrameFilter(t *testing.T) {
	f := MustFrame(Numbers("a_number", 3, 7, 6, 10), Texts("label", "a", "b", "c", "d"))

	out, err := f.Filter(Mask{true, false, true, false})
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())

	nums, err := out.Column("a_number")
	require.NoError(t, err)
	assert.Equal(t, 3.0, nums.Number(0))
	assert.Equal(t, 6.0, nums.Number(1))

	labels, err := out.Column("label")
	require.NoError(t, err)
	assert.Equal(t, "a", labels.Text(0))
	assert.Equal(t, "c", labels.Text(1))

	// the source frame is untouched
	assert.Equal(t, 4, f.Len())

	_, err = f.Filter(Mask{true})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestSeriesCompare(t *testing.T) {
	s := Numbers("a_number", 3, 7, 6, 10, math.NaN())

	tests := []struct {
		op   Op
		want Mask
	}{
		{OpLess, Mask{true, false, false, false, false}},
		{OpLessEqual, Mask{true, false, true, false, false}},
		{OpGreater, Mask{false, true, false, true, false}},
		{OpGreaterEqual, Mask{false, true, true, true, false}},
		{OpEqual, Mask{false, false, true, false, false}},
		{OpNotEqual, Mask{true, true, false, true, false}},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := s.Compare(tt.op, 6)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Texts("label", "x").Compare(OpLessEqual, 6)
	require.ErrorIs(t, err, ErrNotNumeric)
}

func TestParseOp(t *testing.T) {
	for _, want := range Ops {
		op, err := ParseOp(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, op)
	}

	for _, name := range []string{"between", "LE", " le", ""} {
		_, err := ParseOp(name)
		require.ErrorIs(t, err, ErrUnknownOp, name)
	}
}

func TestSeriesStats(t *testing.T) {
	st := Numbers("a_number", 3, 7, math.NaN(), 10).Stats()
	assert.Equal(t, 3, st.Count)
	assert.Equal(t, 1, st.Nulls)
	assert.Equal(t, 3.0, st.Min)
	assert.Equal(t, 10.0, st.Max)
	assert.Equal(t, 20.0, st.Sum)
	assert.InDelta(t, 6.6667, st.Mean, 0.001)

	empty := Numbers("a_number").Stats()
	assert.Equal(t, Stats{}, empty)

	assert.Equal(t, Stats{Count: 2}, Texts("label", "x", "y").Stats())
}

func TestMask(t *testing.T) {
	m := Mask{true, false, true, false}
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 2, m.Count())
	assert.True(t, m.Any())
	assert.Equal(t, []int{0, 2}, m.Rows())
	assert.True(t, m.Equal(Mask{true, false, true, false}))
	assert.False(t, m.Equal(Mask{true, false, true}))
	assert.False(t, m.Equal(Mask{true, false, false, false}))

	var none Mask
	assert.False(t, none.Any())
	assert.Empty(t, none.Rows())
}
