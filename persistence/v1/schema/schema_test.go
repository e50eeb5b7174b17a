package schema

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestCreateAndDrop(t *testing.T) {
	db, err := sql.Open("sqlite", "file:schematest?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	log := zap.NewNop().Sugar()
	ctx := context.Background()

	require.NoError(t, Create(ctx, log, db, "sqlite"))
	require.True(t, tableExists(t, db, "users"))
	require.True(t, tableExists(t, db, "notes"))

	// applying twice is a no-op
	require.NoError(t, Create(ctx, log, db, "sqlite"))

	require.NoError(t, Drop(ctx, log, db, "sqlite"))
	require.False(t, tableExists(t, db, "users"))
	require.False(t, tableExists(t, db, "notes"))
}

func TestDialect(t *testing.T) {
	d, err := Dialect("mysql")
	require.NoError(t, err)
	require.Equal(t, "mysql", d)

	d, err = Dialect("sqlite")
	require.NoError(t, err)
	require.Equal(t, "sqlite3", d)

	_, err = Dialect("oracle")
	require.Error(t, err)
}
