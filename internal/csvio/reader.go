// Package csvio parses roster CSV exports into import rows. It is
// header-driven: the identity columns are located by alias, and every other
// column rides along as an opaque stat payload. Both import flows (actuals and
// ownership projections) share this one code path.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"roster-data-service/internal/domain/imports"
)

// ErrMissingNameColumn signals a CSV without any recognizable player column.
var ErrMissingNameColumn = errors.New("csvio: no player name column in header")

var (
	nameAliases     = []string{"name", "player", "player name", "player_name"}
	teamAliases     = []string{"team", "tm", "teamabbrev", "team abbrev"}
	positionAliases = []string{"position", "pos", "roster position"}
)

// ParseRows reads an entire CSV document into import rows. Line numbers are
// 1-based with the header on line 1. Identity fields are always non-nil
// strings; cells missing from short records come back empty.
func ParseRows(r io.Reader) ([]imports.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csvio: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("csvio: reading header: %w", err)
	}

	nameCol := findColumn(header, nameAliases)
	if nameCol < 0 {
		return nil, ErrMissingNameColumn
	}
	teamCol := findColumn(header, teamAliases)
	positionCol := findColumn(header, positionAliases)

	rows := make([]imports.Row, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("csvio: line %d: %w", line, err)
		}
		rows = append(rows, buildRow(line, header, record, nameCol, teamCol, positionCol))
	}

	return rows, nil
}

func buildRow(line int, header, record []string, nameCol, teamCol, positionCol int) imports.Row {
	row := imports.Row{
		Line:     line,
		Name:     cell(record, nameCol),
		Team:     cell(record, teamCol),
		Position: cell(record, positionCol),
	}

	for i, col := range header {
		if i == nameCol || i == teamCol || i == positionCol {
			continue
		}
		value := strings.TrimSpace(cell(record, i))
		if value == "" {
			continue
		}
		if row.Stats == nil {
			row.Stats = make(map[string]string)
		}
		key := strings.TrimSpace(col)
		if key == "" {
			key = fmt.Sprintf("column_%d", i+1)
		}
		row.Stats[key] = value
	}

	return row
}

func findColumn(header []string, aliases []string) int {
	for i, col := range header {
		normalized := strings.ToLower(strings.TrimSpace(col))
		for _, alias := range aliases {
			if normalized == alias {
				return i
			}
		}
	}
	return -1
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
