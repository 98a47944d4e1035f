package formative

import (
	"fmt"
	"math"
)

// Undefined is shown in place of a statistic that has no attempts yet.
const Undefined = "—"

// Accuracy returns the fraction of correct records in round r. ok is false
// when the round has not been graded yet.
func (s *Session) Accuracy(r Round) (acc float64, ok bool) {
	return Accuracy(s.records, r, len(s.items))
}

// Improvement returns the retry accuracy minus the first-attempt accuracy
// in percentage points. ok is false until both rounds are graded.
func (s *Session) Improvement() (pp float64, ok bool) {
	return Improvement(s.records, len(s.items))
}

// Accuracy computes the correct fraction of round r over itemCount items.
func Accuracy(records []Record, r Round, itemCount int) (float64, bool) {
	seen, correct := 0, 0
	for _, rec := range records {
		if rec.Round != r {
			continue
		}
		seen++
		if rec.Correct {
			correct++
		}
	}
	if seen == 0 || itemCount <= 0 {
		return 0, false
	}
	return float64(correct) / float64(itemCount), true
}

func Improvement(records []Record, itemCount int) (float64, bool) {
	pre, ok1 := Accuracy(records, RoundFirst, itemCount)
	post, ok2 := Accuracy(records, RoundRetry, itemCount)
	if !ok1 || !ok2 {
		return 0, false
	}
	return (post - pre) * 100, true
}

// FormatPercent renders an accuracy as a rounded percentage, or Undefined.
func FormatPercent(acc float64, ok bool) string {
	if !ok {
		return Undefined
	}
	return fmt.Sprintf("%d%%", roundHalfUp(acc*100))
}

// FormatPoints renders an improvement as rounded percentage points, or
// Undefined.
func FormatPoints(pp float64, ok bool) string {
	if !ok {
		return Undefined
	}
	return fmt.Sprintf("%d pp", roundHalfUp(pp))
}

// roundHalfUp rounds ties toward positive infinity, so -33.5 becomes -33.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
