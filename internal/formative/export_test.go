package formative_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woophysics/lessons/internal/formative"
)

func TestExportCSV_BothRounds(t *testing.T) {
	s := formative.NewSession()
	answerAllCorrect(s)
	s.Grade()
	s.SelectRound(formative.RoundRetry)
	s.SetField(formative.ItemLineWavelength, "", "700")
	s.SetField(formative.ItemTrend, "", formative.ChoiceLonger)
	s.Grade()

	out := s.ExportCSV()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, []string{
		"item_id,try,correct,value,misconception",
		`F1,1,1,"656.5",`,
		`F1,2,0,"700",unit_or_value`,
		`F2,1,1,"2.856, 434.0",`,
		`F2,2,1,"2.856, 434.0",`,
		`F3,1,1,"shorter",`,
		`F3,2,0,"longer",inverse_relation`,
	}, lines)
}

func TestExportCSV_HeaderOnly(t *testing.T) {
	assert.Equal(t, formative.ExportHeader+"\n", formative.NewSession().ExportCSV())
}

func TestExportCSV_QuotesValue(t *testing.T) {
	recs := []formative.Record{
		{ItemID: "F1", Round: 1, Value: `say "hi", ok`, Misconception: "unit_or_value"},
	}
	out := formative.ExportCSV(recs)
	assert.Equal(t, formative.ExportHeader+"\n"+`F1,1,0,"say ""hi"", ok",unit_or_value`, out)
}

func TestExportCSV_DoesNotReorderInput(t *testing.T) {
	recs := []formative.Record{
		{ItemID: "F3", Round: 2},
		{ItemID: "F1", Round: 2},
		{ItemID: "F1", Round: 1},
	}
	formative.ExportCSV(recs)
	assert.Equal(t, "F3", recs[0].ItemID)

	sorted := formative.SortForExport(recs)
	assert.Equal(t, []string{"F1", "F1", "F3"}, []string{sorted[0].ItemID, sorted[1].ItemID, sorted[2].ItemID})
	assert.Equal(t, formative.RoundFirst, sorted[0].Round)
}

func TestParseCSV_ReadsExport(t *testing.T) {
	s := formative.NewSession()
	s.SetField(formative.ItemLineWavelength, "", `65"6`)
	s.SetField(formative.ItemTransition, formative.FieldEnergy, "2,856")
	s.Grade()
	s.SelectRound(formative.RoundRetry)
	answerAllCorrect(s)
	s.Grade()

	got, err := formative.ParseCSV(strings.NewReader(s.ExportCSV()))
	require.NoError(t, err)
	assert.Equal(t, formative.SortForExport(s.Records()), got)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: formative.ErrBadHeader},
		{name: "wrong header", input: "a,b,c,d,e\n", want: formative.ErrBadHeader},
		{name: "bad round", input: formative.ExportHeader + "\nF1,3,1,\"x\",\n", want: formative.ErrBadRow},
		{name: "bad correct", input: formative.ExportHeader + "\nF1,1,yes,\"x\",\n", want: formative.ErrBadRow},
		{name: "short row", input: formative.ExportHeader + "\nF1,1,1\n", want: formative.ErrBadRow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := formative.ParseCSV(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
