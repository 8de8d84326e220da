package migration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallbiznis/reparo/pkg/db"
)

func TestRunMigrations_CreatesSchema(t *testing.T) {
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "reparo.db")})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, RunMigrations(sqlDB))

	var tables []string
	require.NoError(t, conn.Raw(
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name",
	).Scan(&tables).Error)

	for _, want := range []string{"customers", "inventory", "ledger", "message_log", "repairs"} {
		assert.Contains(t, tables, want)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "reparo.db")})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, RunMigrations(sqlDB))
	require.NoError(t, RunMigrations(sqlDB))
}

func TestRunMigrations_NilHandle(t *testing.T) {
	assert.Error(t, RunMigrations(nil))
}

func TestRunMigrations_RecordsVersion(t *testing.T) {
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "reparo.db")})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, RunMigrations(sqlDB))

	var (
		version int
		dirty   bool
	)
	require.NoError(t, conn.Raw(
		"SELECT version, dirty FROM schema_migrations LIMIT 1",
	).Row().Scan(&version, &dirty))
	assert.Equal(t, 1, version)
	assert.False(t, dirty)
}

// The migrations run through the same connection the rest of the process
// uses, so writes are visible on the shared handle immediately after.
func TestRunMigrations_SharedHandleUsableAfter(t *testing.T) {
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "reparo.db")})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	require.NoError(t, RunMigrations(sqlDB))

	id, err := db.Insert(context.Background(), conn, "customers", db.Row{
		"name":    "Ana",
		"phone":   "0812",
		"address": "",
		"note":    "",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestHandleDriver_VersionLifecycle(t *testing.T) {
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "reparo.db")})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	driver, err := newHandleDriver(sqlDB)
	require.NoError(t, err)

	version, dirty, err := driver.Version()
	require.NoError(t, err)
	assert.Equal(t, -1, version)
	assert.False(t, dirty)

	require.NoError(t, driver.SetVersion(1, true))
	version, dirty, err = driver.Version()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.True(t, dirty)

	require.NoError(t, driver.SetVersion(1, false))
	version, dirty, err = driver.Version()
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.False(t, dirty)
}
