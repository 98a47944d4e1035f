package formative

import (
	"github.com/google/uuid"
)

// Round numbers a pass through the quiz: the first attempt and the retry.
type Round int

const (
	RoundFirst Round = 1
	RoundRetry Round = 2
)

func (r Round) clamp() Round {
	if r < RoundFirst {
		return RoundFirst
	}
	if r > RoundRetry {
		return RoundRetry
	}
	return r
}

// Record is one graded submission of one item in one round.
type Record struct {
	ItemID        string `json:"item_id"`
	Round         Round  `json:"try"`
	Correct       bool   `json:"correct"`
	Value         string `json:"value"`
	Misconception string `json:"misconception,omitempty"`
}

// Session is the state owned by one quiz view: the graded records, the
// selected round and the un-submitted field values. It is not safe for
// concurrent use; a view owns exactly one Session for its lifetime.
type Session struct {
	ID string

	items   []Item
	grader  *Grader
	round   Round
	working map[string]map[string]string
	records []Record
}

type Option func(*Session)

// WithItems replaces the default quiz definition.
func WithItems(items []Item) Option {
	return func(s *Session) { s.items = items }
}

// WithGrader swaps the grading strategies.
func WithGrader(g *Grader) Option {
	return func(s *Session) { s.grader = g }
}

// NewSession returns an empty session on round 1.
func NewSession(opts ...Option) *Session {
	s := &Session{
		ID:     uuid.NewString(),
		items:  DefaultItems(),
		grader: NewGrader(),
		round:  RoundFirst,
	}
	for _, o := range opts {
		o(s)
	}
	s.working = emptyWorking(s.items)
	return s
}

func emptyWorking(items []Item) map[string]map[string]string {
	w := make(map[string]map[string]string, len(items))
	for _, it := range items {
		w[it.ID] = map[string]string{}
	}
	return w
}

func (s *Session) Items() []Item { return s.items }

func (s *Session) Round() Round { return s.round }

// SelectRound switches the active round. Out-of-range values are clamped.
func (s *Session) SelectRound(r Round) { s.round = r.clamp() }

// SetField stores text verbatim in the working slot of an item. fieldID may
// be empty for single-field items and is ignored for choice items. Unknown
// items or fields are ignored. No record is created.
func (s *Session) SetField(itemID, fieldID, value string) {
	it, ok := s.item(itemID)
	if !ok {
		return
	}
	if it.Kind == KindChoice {
		s.working[itemID][choiceSlot] = value
		return
	}
	f, ok := it.Field(fieldID)
	if !ok {
		return
	}
	s.working[itemID][f.ID] = value
}

// FieldValue returns the working text of a slot.
func (s *Session) FieldValue(itemID, fieldID string) string {
	it, ok := s.item(itemID)
	if !ok {
		return ""
	}
	if it.Kind == KindChoice {
		return s.working[itemID][choiceSlot]
	}
	f, ok := it.Field(fieldID)
	if !ok {
		return ""
	}
	return s.working[itemID][f.ID]
}

// Grade scores every item against the working values for the selected
// round. The new records replace any earlier records of that round and are
// appended after the records of other rounds. The new records are returned.
func (s *Session) Grade() []Record {
	graded := make([]Record, 0, len(s.items))
	for _, it := range s.items {
		o := s.grader.Grade(it, s.working[it.ID])
		graded = append(graded, Record{
			ItemID:        it.ID,
			Round:         s.round,
			Correct:       o.Correct,
			Value:         o.Value,
			Misconception: o.Misconception,
		})
	}

	kept := make([]Record, 0, len(s.records)+len(graded))
	for _, r := range s.records {
		if r.Round != s.round {
			kept = append(kept, r)
		}
	}
	s.records = append(kept, graded...)

	out := make([]Record, len(graded))
	copy(out, graded)
	return out
}

// Records returns a copy of every record in grading order.
func (s *Session) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Reset clears records and working values and selects round 1.
func (s *Session) Reset() {
	s.records = nil
	s.working = emptyWorking(s.items)
	s.round = RoundFirst
}

func (s *Session) item(id string) (Item, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
