package nba

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

var requiredHeaders = []string{ColumnYear, ColumnHeight, ColumnWeight, ColumnPER, ColumnPTS, ColumnPosition}

// ParseCSV reads players from a CSV with a header row. Columns are matched by
// header name; the first column is the row index and "Player" is optional.
// Empty numeric cells become NaN; Year and pos_simple are required per row.
func ParseCSV(r io.Reader) ([]Player, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, invalidCSV("csv is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredHeaders {
		if _, ok := index[name]; !ok {
			return nil, invalidCSV("csv is missing column " + strconv.Quote(name))
		}
	}
	nameCol, hasName := index["Player"]

	var players []Player
	seen := make(map[int]bool)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		p := Player{Index: len(players)}
		if raw := strings.TrimSpace(record[0]); raw != "" {
			idx, err := strconv.Atoi(raw)
			if err != nil {
				return nil, invalidCSV(fmt.Sprintf("line %d: index %q is not an integer", line, raw))
			}
			p.Index = idx
		}
		if seen[p.Index] {
			return nil, invalidCSV(fmt.Sprintf("line %d: duplicate index %d", line, p.Index))
		}
		seen[p.Index] = true
		if hasName && nameCol < len(record) {
			p.Name = strings.TrimSpace(record[nameCol])
		}
		year, err := parseYear(cell(ColumnYear))
		if err != nil {
			return nil, invalidCSV(fmt.Sprintf("line %d: Year: %v", line, err))
		}
		p.Year = year
		for _, field := range []struct {
			name string
			dst  *float64
		}{
			{ColumnHeight, &p.Height},
			{ColumnWeight, &p.Weight},
			{ColumnPER, &p.PER},
			{ColumnPTS, &p.PTS},
		} {
			v, err := parseFloat(cell(field.name))
			if err != nil {
				return nil, invalidCSV(fmt.Sprintf("line %d: %s: %v", line, field.name, err))
			}
			*field.dst = v
		}
		pos, ok := ParsePosition(cell(ColumnPosition))
		if !ok {
			return nil, invalidCSV(fmt.Sprintf("line %d: unknown position %q", line, cell(ColumnPosition)))
		}
		p.Position = pos
		players = append(players, p)
	}
	return players, nil
}

// WriteCSV writes players in the layout ParseCSV reads.
func WriteCSV(w io.Writer, players []Player) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"", "Player", ColumnYear, ColumnHeight, ColumnWeight, ColumnPER, ColumnPTS, ColumnPosition}); err != nil {
		return err
	}
	for _, p := range players {
		if err := writer.Write([]string{
			strconv.Itoa(p.Index),
			p.Name,
			strconv.Itoa(p.Year),
			formatFloat(p.Height),
			formatFloat(p.Weight),
			formatFloat(p.PER),
			formatFloat(p.PTS),
			string(p.Position),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseYear(raw string) (int, error) {
	if raw == "" {
		return 0, errors.New("missing value")
	}
	if year, err := strconv.Atoi(raw); err == nil {
		return year, nil
	}
	// Accept "1990.0" as written by float-typed exports.
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", raw)
	}
	return int(f), nil
}

func parseFloat(raw string) (float64, error) {
	if raw == "" || strings.EqualFold(raw, "nan") {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	return v, nil
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func invalidCSV(message string) error {
	return apperrors.WithMetadata(apperrors.CodeInvalidArgument, message, map[string]string{"Field": "csv"})
}
