package formative

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

const (
	// ExportFilename is the name the download collaborator saves under.
	ExportFilename = "responses.csv"
	ExportMIME     = "text/csv;charset=utf-8;"
	ExportHeader   = "item_id,try,correct,value,misconception"
)

var (
	ErrBadHeader = errors.New("unexpected responses header")
	ErrBadRow    = errors.New("malformed responses row")
)

// ExportCSV serializes the session's records.
func (s *Session) ExportCSV() string { return ExportCSV(s.records) }

// ExportCSV renders records as a header line plus one row per record,
// ordered by item id then round. The value column is always quoted.
// The input slice is not modified.
func ExportCSV(records []Record) string {
	sorted := SortForExport(records)

	var b strings.Builder
	b.WriteString(ExportHeader)
	b.WriteByte('\n')
	for i, r := range sorted {
		if i > 0 {
			b.WriteByte('\n')
		}
		correct := "0"
		if r.Correct {
			correct = "1"
		}
		fmt.Fprintf(&b, "%s,%d,%s,\"%s\",%s",
			r.ItemID, r.Round, correct,
			strings.ReplaceAll(r.Value, `"`, `""`),
			r.Misconception)
	}
	return b.String()
}

// SortForExport returns a copy of records ordered by item id, then round.
func SortForExport(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		if c := cmp.Compare(a.ItemID, b.ItemID); c != 0 {
			return c
		}
		return cmp.Compare(a.Round, b.Round)
	})
	return out
}

// ParseCSV reads records back from an exported responses file.
func ParseCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, csv.ErrFieldCount) {
			return nil, ErrBadHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if strings.Join(header, ",") != ExportHeader {
		return nil, fmt.Errorf("%w: %q", ErrBadHeader, strings.Join(header, ","))
	}

	var out []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRow, err)
		}
		round, err := strconv.Atoi(row[1])
		if err != nil || (Round(round) != RoundFirst && Round(round) != RoundRetry) {
			return nil, fmt.Errorf("%w: line %d: try %q", ErrBadRow, line, row[1])
		}
		var correct bool
		switch row[2] {
		case "1":
			correct = true
		case "0":
		default:
			return nil, fmt.Errorf("%w: line %d: correct %q", ErrBadRow, line, row[2])
		}
		out = append(out, Record{
			ItemID:        row[0],
			Round:         Round(round),
			Correct:       correct,
			Value:         row[3],
			Misconception: row[4],
		})
	}
	return out, nil
}
