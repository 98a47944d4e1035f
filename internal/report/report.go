// Package report aggregates archived quiz responses into a class report.
package report

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/woophysics/lessons/internal/archive"
	"github.com/woophysics/lessons/internal/formative"
)

const Filename = "class-report.xlsx"

// Stat is one accuracy-like figure; OK is false when it is undefined.
type Stat struct {
	Value float64
	OK    bool
}

func (s Stat) Percent() string { return formative.FormatPercent(s.Value, s.OK) }
func (s Stat) Points() string  { return formative.FormatPoints(s.Value, s.OK) }

type Summary struct {
	First       Stat
	Retry       Stat
	Improvement Stat
}

// Row is the summary of one ingested export.
type Row struct {
	Source archive.Source
	Summary
}

// MisconceptionCount counts one diagnostic tag of one item in one round.
type MisconceptionCount struct {
	ItemID string
	Round  formative.Round
	Tag    string
	Count  int
}

type Report struct {
	Rows           []Row
	Overall        Summary
	Misconceptions []MisconceptionCount
}

// Summarize computes the stats of one export over itemCount items.
func Summarize(records []formative.Record, itemCount int) Summary {
	var s Summary
	s.First.Value, s.First.OK = formative.Accuracy(records, formative.RoundFirst, itemCount)
	s.Retry.Value, s.Retry.OK = formative.Accuracy(records, formative.RoundRetry, itemCount)
	s.Improvement.Value, s.Improvement.OK = formative.Improvement(records, itemCount)
	return s
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(s Stat) {
	if s.OK {
		m.sum += s.Value
		m.n++
	}
}

func (m mean) stat() Stat {
	if m.n == 0 {
		return Stat{}
	}
	return Stat{Value: m.sum / float64(m.n), OK: true}
}

// Build reads every source in the archive. Overall figures are the mean
// of the per-source figures that are defined.
func Build(ctx context.Context, a *archive.Archive, itemCount int) (Report, error) {
	sources, err := a.Sources(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("report: list sources: %w", err)
	}

	var (
		rep                 Report
		first, retry, delta mean
		counts              = map[MisconceptionCount]int{}
	)
	for _, src := range sources {
		recs, err := a.Records(ctx, src.ID)
		if err != nil {
			return Report{}, fmt.Errorf("report: source %s: %w", src.ID, err)
		}
		sum := Summarize(recs, itemCount)
		rep.Rows = append(rep.Rows, Row{Source: src, Summary: sum})
		first.add(sum.First)
		retry.add(sum.Retry)
		delta.add(sum.Improvement)

		for _, r := range recs {
			if r.Correct || r.Misconception == "" {
				continue
			}
			counts[MisconceptionCount{ItemID: r.ItemID, Round: r.Round, Tag: r.Misconception}]++
		}
	}
	rep.Overall = Summary{First: first.stat(), Retry: retry.stat(), Improvement: delta.stat()}

	for k, n := range counts {
		k.Count = n
		rep.Misconceptions = append(rep.Misconceptions, k)
	}
	slices.SortFunc(rep.Misconceptions, func(a, b MisconceptionCount) int {
		if c := strings.Compare(a.ItemID, b.ItemID); c != 0 {
			return c
		}
		if a.Round != b.Round {
			return int(a.Round - b.Round)
		}
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return rep, nil
}
