package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteMemory(t *testing.T) {
	ctx := context.Background()
	conn, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"sources", "responses", "event_log"} {
		var n int
		err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n)
		require.NoError(t, err, table)
		assert.Zero(t, n)
	}

	require.NoError(t, ensureSchema(ctx, conn, DriverSQLite), "schema is idempotent")
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Driver("mysql"), "")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
