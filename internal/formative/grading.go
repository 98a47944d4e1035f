package formative

import "strings"

// Outcome is the result of grading one item against its working values.
type Outcome struct {
	Correct       bool
	Value         string // raw submitted value(s) as display text
	Misconception string // empty when correct or unclassified
}

// Strategy grades a single item. Implementations are total: missing or
// malformed input grades as incorrect, never as an error.
type Strategy interface {
	Grade(it Item, values map[string]string) Outcome
}

// Grader routes by item kind to the matching Strategy.
type Grader struct {
	strategies map[Kind]Strategy
}

// NewGrader installs the built-in strategies.
func NewGrader() *Grader {
	return &Grader{
		strategies: map[Kind]Strategy{
			KindNumeric: numericStrategy{},
			KindChoice:  choiceStrategy{},
		},
	}
}

func (g *Grader) Grade(it Item, values map[string]string) Outcome {
	s, ok := g.strategies[it.Kind]
	if !ok {
		return Outcome{Misconception: it.DefaultMisconception}
	}
	return s.Grade(it, values)
}

// numericStrategy checks every field independently; the item is correct
// only when all fields pass.
type numericStrategy struct{}

func (numericStrategy) Grade(it Item, values map[string]string) Outcome {
	raw := make([]string, 0, len(it.Fields))
	failed := make([]string, 0, len(it.Fields))
	for _, f := range it.Fields {
		v := values[f.ID]
		raw = append(raw, v)
		if !NumericMatch(v, f.Target, f.Tolerance) {
			failed = append(failed, f.ID)
		}
	}
	out := Outcome{
		Correct: len(failed) == 0,
		Value:   strings.Join(raw, ", "),
	}
	if !out.Correct {
		out.Misconception = it.tag(strings.Join(failed, "+"))
	}
	return out
}

type choiceStrategy struct{}

func (choiceStrategy) Grade(it Item, values map[string]string) Outcome {
	sel := values[choiceSlot]
	out := Outcome{
		Correct: sel != "" && sel == it.Correct,
		Value:   sel,
	}
	if !out.Correct {
		key := sel
		if !it.hasChoice(sel) {
			key = ""
		}
		out.Misconception = it.tag(key)
	}
	return out
}

// choiceSlot is the working-value key holding a choice item's selection.
const choiceSlot = "choice"

func (it Item) tag(pattern string) string {
	if t, ok := it.Misconceptions[pattern]; ok {
		return t
	}
	return it.DefaultMisconception
}
