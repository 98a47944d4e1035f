package report

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/woophysics/lessons/internal/archive"
	"github.com/woophysics/lessons/internal/db"
	"github.com/woophysics/lessons/internal/formative"
	"github.com/woophysics/lessons/internal/storage"
)

func rec(item string, r formative.Round, ok bool, tag string) formative.Record {
	return formative.Record{ItemID: item, Round: r, Correct: ok, Value: "x", Misconception: tag}
}

func seeded(t *testing.T) *archive.Archive {
	t.Helper()
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	a := archive.New(conn)

	// 1/3 then 2/3
	_, err = a.Ingest(ctx, "a.csv", []formative.Record{
		rec("F1", 1, true, ""), rec("F2", 1, false, "lambda"), rec("F3", 1, false, "inverse_relation"),
		rec("F1", 2, true, ""), rec("F2", 2, true, ""), rec("F3", 2, false, "inverse_relation"),
	})
	require.NoError(t, err)
	// first round only, 0/3
	_, err = a.Ingest(ctx, "b.csv", []formative.Record{
		rec("F1", 1, false, "unit_or_value"), rec("F2", 1, false, "lambda"), rec("F3", 1, false, "undecided"),
	})
	require.NoError(t, err)
	return a
}

func TestBuild(t *testing.T) {
	rep, err := Build(context.Background(), seeded(t), 3)
	require.NoError(t, err)
	require.Len(t, rep.Rows, 2)

	rows := map[string]Row{}
	for _, r := range rep.Rows {
		rows[r.Source.Name] = r
	}
	assert.Equal(t, "33%", rows["a.csv"].First.Percent())
	assert.Equal(t, "67%", rows["a.csv"].Retry.Percent())
	assert.Equal(t, "33 pp", rows["a.csv"].Improvement.Points())
	assert.Equal(t, "0%", rows["b.csv"].First.Percent())
	assert.Equal(t, formative.Undefined, rows["b.csv"].Retry.Percent())
	assert.Equal(t, formative.Undefined, rows["b.csv"].Improvement.Points())

	assert.Equal(t, "17%", rep.Overall.First.Percent())
	assert.Equal(t, "67%", rep.Overall.Retry.Percent())
	assert.Equal(t, "33 pp", rep.Overall.Improvement.Points())

	assert.Equal(t, []MisconceptionCount{
		{ItemID: "F1", Round: 1, Tag: "unit_or_value", Count: 1},
		{ItemID: "F2", Round: 1, Tag: "lambda", Count: 2},
		{ItemID: "F3", Round: 1, Tag: "inverse_relation", Count: 1},
		{ItemID: "F3", Round: 1, Tag: "undecided", Count: 1},
		{ItemID: "F3", Round: 2, Tag: "inverse_relation", Count: 1},
	}, rep.Misconceptions)
}

func TestBuildEmptyArchive(t *testing.T) {
	conn, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	rep, err := Build(context.Background(), archive.New(conn), 3)
	require.NoError(t, err)
	assert.Empty(t, rep.Rows)
	assert.False(t, rep.Overall.First.OK)
}

func TestSaveWorkbook(t *testing.T) {
	rep, err := Build(context.Background(), seeded(t), 3)
	require.NoError(t, err)

	store, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)
	where, err := Save(store, rep)
	require.NoError(t, err)

	data, err := os.ReadFile(where)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetMisconceptions}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, summary, 4)
	assert.Equal(t, summaryHeaders, summary[0])
	assert.Equal(t, []string{"Overall", "", "2", "17%", "67%", "33 pp"}, summary[3])

	mis, err := f.GetRows(SheetMisconceptions)
	require.NoError(t, err)
	require.Len(t, mis, 6)
	assert.Equal(t, []string{"F2", "1", "lambda", "2"}, mis[2])
}
