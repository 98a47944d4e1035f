package formative

import (
	"github.com/go-playground/validator/v10"

	"github.com/woophysics/lessons/internal/validate"
)

// Kind selects the grading strategy for an item.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindChoice  Kind = "choice"
)

// Field is one numeric answer slot with its target and absolute tolerance.
type Field struct {
	ID          string  `json:"id" validate:"required"`
	Label       string  `json:"label,omitempty"`
	Placeholder string  `json:"placeholder,omitempty"`
	Target      float64 `json:"target"`
	Tolerance   float64 `json:"tolerance" validate:"gte=0"`
}

type Choice struct {
	ID    string `json:"id" validate:"required"`
	Label string `json:"label,omitempty"`
}

// Item is a fixed question definition.
//
// Misconceptions maps a wrong-answer pattern to its tag. For numeric items
// the key is the ids of the failed fields joined with "+", in field order.
// For choice items the key is the selected choice id. Wrong answers with
// no entry get DefaultMisconception.
type Item struct {
	ID     string `json:"id" validate:"required"`
	Kind   Kind   `json:"kind" validate:"oneof=numeric choice"`
	Title  string `json:"title,omitempty"`
	Prompt string `json:"prompt,omitempty"`
	Note   string `json:"note,omitempty"`

	Fields  []Field  `json:"fields,omitempty" validate:"unique=ID,dive"`
	Choices []Choice `json:"choices,omitempty" validate:"unique=ID,dive"`
	Correct string   `json:"correct,omitempty"`

	Misconceptions       map[string]string `json:"misconceptions,omitempty"`
	DefaultMisconception string            `json:"default_misconception,omitempty"`
}

// Field returns the field with the given id. An empty id resolves to the
// only field of a single-field item.
func (it Item) Field(id string) (Field, bool) {
	if id == "" && len(it.Fields) == 1 {
		return it.Fields[0], true
	}
	for _, f := range it.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

func (it Item) hasChoice(id string) bool {
	for _, c := range it.Choices {
		if c.ID == id {
			return true
		}
	}
	return false
}

type itemSet struct {
	Items []Item `json:"items" validate:"min=1,unique=ID,dive"`
}

func init() {
	validate.Shared().RegisterStructValidation(itemStructLevel, Item{})
}

func itemStructLevel(sl validator.StructLevel) {
	it := sl.Current().Interface().(Item)
	switch it.Kind {
	case KindNumeric:
		if len(it.Fields) == 0 {
			sl.ReportError(it.Fields, "fields", "Fields", "fields", "")
		}
	case KindChoice:
		if len(it.Choices) == 0 {
			sl.ReportError(it.Choices, "choices", "Choices", "choices", "")
			return
		}
		if !it.hasChoice(it.Correct) {
			sl.ReportError(it.Correct, "correct", "Correct", "correct", "")
		}
	}
}

// Validate checks a quiz definition: unique item ids, a known kind, and the
// kind-specific shape (fields for numeric items, a valid answer for choice
// items).
func Validate(items []Item) error {
	return validate.Struct(itemSet{Items: items})
}

// Item and field identifiers of the atom-spectrum quiz.
const (
	ItemLineWavelength = "F1"
	ItemTransition     = "F2"
	ItemTrend          = "F3"

	FieldValue      = "value"
	FieldEnergy     = "energy"
	FieldWavelength = "wavelength"

	ChoiceShorter = "shorter"
	ChoiceSame    = "same"
	ChoiceLonger  = "longer"
)

// DefaultItems is the three-item formative check shared by every lesson.
func DefaultItems() []Item {
	return []Item{
		{
			ID:     ItemLineWavelength,
			Kind:   KindNumeric,
			Title:  "F1 · 단답",
			Prompt: "수소 n₂=3→n₁=2 전이의 λ (nm):",
			Note:   "허용 오차 ±0.5",
			Fields: []Field{
				{ID: FieldValue, Placeholder: "예: 656.5", Target: 656.5, Tolerance: 0.5},
			},
			Misconceptions: map[string]string{
				FieldValue: "unit_or_value",
			},
		},
		{
			ID:    ItemTransition,
			Kind:  KindNumeric,
			Title: "F2 · 계산(2칸)",
			Note:  "허용 오차: ΔE±0.05, λ±1.0",
			Fields: []Field{
				{ID: FieldEnergy, Label: "ΔE (eV):", Placeholder: "예: 2.856", Target: 2.856, Tolerance: 0.05},
				{ID: FieldWavelength, Label: "λ (nm):", Placeholder: "예: 434.0", Target: 434.0, Tolerance: 1.0},
			},
			Misconceptions: map[string]string{
				"wavelength":        "lambda",
				"energy":            "energy",
				"energy+wavelength": "both",
			},
		},
		{
			ID:    ItemTrend,
			Kind:  KindChoice,
			Title: "F3 · 개념",
			Choices: []Choice{
				{ID: ChoiceShorter, Label: "짧아진다(ΔE↑ → λ↓)"},
				{ID: ChoiceSame, Label: "변하지 않는다"},
				{ID: ChoiceLonger, Label: "길어진다"},
			},
			Correct: ChoiceShorter,
			Misconceptions: map[string]string{
				ChoiceLonger: "inverse_relation",
			},
			DefaultMisconception: "undecided",
		},
	}
}
