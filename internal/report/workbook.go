package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/woophysics/lessons/internal/storage"
)

const (
	SheetSummary        = "Summary"
	SheetMisconceptions = "Misconceptions"

	MIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	summaryHeaders       = []string{"Source", "Ingested", "Records", "정답률(1차)", "정답률(재응답)", "향상도"}
	misconceptionHeaders = []string{"Item", "Round", "Tag", "Count"}
)

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func headerRow(hs []string) []any {
	out := make([]any, len(hs))
	for i, h := range hs {
		out[i] = h
	}
	return out
}

// Workbook renders rep as an xlsx file.
func Workbook(rep Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	if err := setRow(f, SheetSummary, 1, headerRow(summaryHeaders)); err != nil {
		return nil, err
	}
	row := 2
	for _, r := range rep.Rows {
		vals := []any{
			r.Source.Name,
			r.Source.IngestedAt.Format(time.RFC3339),
			r.Source.RecordCount,
			r.First.Percent(), r.Retry.Percent(), r.Improvement.Points(),
		}
		if err := setRow(f, SheetSummary, row, vals); err != nil {
			return nil, err
		}
		row++
	}
	overall := []any{"Overall", "", len(rep.Rows),
		rep.Overall.First.Percent(), rep.Overall.Retry.Percent(), rep.Overall.Improvement.Points()}
	if err := setRow(f, SheetSummary, row, overall); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetMisconceptions); err != nil {
		return nil, fmt.Errorf("report: create sheet: %w", err)
	}
	if err := setRow(f, SheetMisconceptions, 1, headerRow(misconceptionHeaders)); err != nil {
		return nil, err
	}
	for i, m := range rep.Misconceptions {
		if err := setRow(f, SheetMisconceptions, i+2, []any{m.ItemID, int(m.Round), m.Tag, m.Count}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("report: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Save renders rep and stores it as Filename.
func Save(s storage.Saver, rep Report) (string, error) {
	data, err := Workbook(rep)
	if err != nil {
		return "", err
	}
	return s.Save(Filename, MIME, data)
}
