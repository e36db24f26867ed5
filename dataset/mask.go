package dataset

// Mask is a per-row indicator aligned with a dataset. A true entry marks a
// flagged (failing) row.
type Mask []bool

// Len returns the number of rows the mask covers.
func (m Mask) Len() int { return len(m) }

// Count returns the number of flagged rows.
func (m Mask) Count() int {
	n := 0
	for _, v := range m {
		if v {
			n++
		}
	}
	return n
}

// Any reports whether at least one row is flagged.
func (m Mask) Any() bool {
	for _, v := range m {
		if v {
			return true
		}
	}
	return false
}

// Rows returns the ascending indexes of flagged rows.
func (m Mask) Rows() []int {
	rows := make([]int, 0, m.Count())
	for i, v := range m {
		if v {
			rows = append(rows, i)
		}
	}
	return rows
}

// Equal reports whether both masks have the same length and flags.
func (m Mask) Equal(other Mask) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}
