package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Row represents a single record with column name to raw value mapping.
type Row map[string]string

// FromRecords builds a frame from already-read string records. The header
// names the columns. A column becomes a number column when every non-empty
// cell parses as a float; empty cells are null.
func FromRecords(header []string, records [][]string) (*Frame, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("records: header is empty")
	}

	for i, record := range records {
		if len(record) != len(header) {
			return nil, fmt.Errorf("records: row %d has %d columns, expected %d", i+1, len(record), len(header))
		}
	}

	columns := make([]*Series, len(header))
	for j, name := range header {
		cells := make([]string, len(records))
		for i, record := range records {
			cells[i] = record[j]
		}
		columns[j] = inferSeries(name, cells)
	}

	return NewFrame(columns...)
}

// FromRows builds a frame from row maps, taking columns in the given order.
// A key missing from a row is treated as an empty (null) cell.
func FromRows(columns []string, rows []Row) (*Frame, error) {
	records := make([][]string, len(rows))
	for i, row := range rows {
		record := make([]string, len(columns))
		for j, c := range columns {
			record[j] = row[c]
		}
		records[i] = record
	}
	return FromRecords(columns, records)
}

func inferSeries(name string, cells []string) *Series {
	numbers := make([]float64, len(cells))
	for i, raw := range cells {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			numbers[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Texts(name, cells...)
		}
		numbers[i] = v
	}
	return Numbers(name, numbers...)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
