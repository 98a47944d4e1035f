package archive

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woophysics/lessons/internal/db"
	"github.com/woophysics/lessons/internal/formative"
)

func newArchive(t *testing.T) *Archive {
	t.Helper()
	conn, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return New(conn)
}

func TestIngestAndRead(t *testing.T) {
	ctx := context.Background()
	a := newArchive(t)
	a.events.now = func() time.Time { return time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC) }

	recs := []formative.Record{
		{ItemID: "F1", Round: formative.RoundFirst, Correct: false, Value: "600", Misconception: "unit_or_value"},
		{ItemID: "F3", Round: formative.RoundFirst, Correct: true, Value: "shorter"},
		{ItemID: "F1", Round: formative.RoundRetry, Correct: true, Value: "656,5"},
	}
	src, err := a.Ingest(ctx, "class-a.csv", recs)
	require.NoError(t, err)
	assert.NotEmpty(t, src.ID)
	assert.Equal(t, 3, src.RecordCount)

	got, err := a.Records(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, recs, got)

	sources, err := a.Sources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, src, sources[0])

	events, err := a.Events().Since(ctx, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventResponsesIngested, events[0].Type)
	assert.Equal(t, src.ID, events[0].Key)
	var data ingestedData
	require.NoError(t, json.Unmarshal([]byte(events[0].DataJSON), &data))
	assert.Equal(t, ingestedData{Name: "class-a.csv", Records: 3}, data)
}

func TestIngestEmptyFile(t *testing.T) {
	ctx := context.Background()
	a := newArchive(t)

	src, err := a.Ingest(ctx, "empty.csv", nil)
	require.NoError(t, err)

	got, err := a.Records(ctx, src.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecordsUnknownSource(t *testing.T) {
	_, err := newArchive(t).Records(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestEventsSince(t *testing.T) {
	ctx := context.Background()
	a := newArchive(t)
	for _, name := range []string{"a.csv", "b.csv"} {
		_, err := a.Ingest(ctx, name, nil)
		require.NoError(t, err)
	}
	all, err := a.Events().Since(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	rest, err := a.Events().Since(ctx, all[0].Seq)
	require.NoError(t, err)
	assert.Equal(t, all[1:], rest)
}
