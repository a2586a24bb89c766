package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Running migrations a second time must succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"tasks", "schedule_windows", "schedule_settings",
		"day_overrides", "calendar_blocks", "category_preferences", "day_orderings",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_tasks_parent",
		"idx_tasks_completed",
		"idx_tasks_due",
		"idx_calendar_blocks_date",
		"idx_day_orderings_date",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_WALModeRequested(t *testing.T) {
	// In-memory SQLite uses "memory" journal mode; WAL only applies to file DBs.
	// This test verifies OpenDB issues the PRAGMA (a no-op for :memory:).
	db := openTestDB(t)

	var mode string
	err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode)
	require.NoError(t, err)
	// In-memory DB reports "memory", which is expected.
	assert.Equal(t, "memory", mode)
}

func TestMigrate_SeedsDefaultSettings(t *testing.T) {
	db := openTestDB(t)

	var id string
	var bufferPct float64
	err := db.QueryRow(`SELECT id, buffer_pct FROM schedule_settings WHERE id = 'default'`).Scan(&id, &bufferPct)
	require.NoError(t, err)
	assert.Equal(t, "default", id)
	assert.Equal(t, 0.25, bufferPct)
}

func TestMigrate_SeedsDefaultWindows(t *testing.T) {
	db := openTestDB(t)

	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM schedule_windows`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 14, count, "one row per weekday per kind")

	// Monday work hours.
	var startMin, endMin, enabled int
	err = db.QueryRow(`SELECT start_min, end_min, enabled FROM schedule_windows WHERE weekday = 1 AND kind = 'work'`).
		Scan(&startMin, &endMin, &enabled)
	require.NoError(t, err)
	assert.Equal(t, 510, startMin)
	assert.Equal(t, 975, endMin)
	assert.Equal(t, 1, enabled)

	// Saturday work hours are off; the weekend home window is flexible.
	err = db.QueryRow(`SELECT enabled FROM schedule_windows WHERE weekday = 6 AND kind = 'work'`).Scan(&enabled)
	require.NoError(t, err)
	assert.Equal(t, 0, enabled)

	var flexible int
	err = db.QueryRow(`SELECT flexible FROM schedule_windows WHERE weekday = 6 AND kind = 'home'`).Scan(&flexible)
	require.NoError(t, err)
	assert.Equal(t, 1, flexible)
}

func TestMigrate_TasksCheckConstraints(t *testing.T) {
	db := openTestDB(t)

	// Invalid priority should fail.
	_, err := db.Exec(`INSERT INTO tasks (id, title, priority, created_at, updated_at)
		VALUES ('t1', 'Task', 'INVALID', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "invalid priority should be rejected by CHECK constraint")

	// Invalid kind should fail.
	_, err = db.Exec(`INSERT INTO tasks (id, title, kind, created_at, updated_at)
		VALUES ('t1', 'Task', 'INVALID', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "invalid kind should be rejected by CHECK constraint")

	// Valid row should succeed.
	_, err = db.Exec(`INSERT INTO tasks (id, title, priority, created_at, updated_at)
		VALUES ('t1', 'Task', 'normal', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_TasksParentCascade(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO tasks (id, title, kind, created_at, updated_at)
		VALUES ('p1', 'Project', 'container', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO tasks (id, title, parent_id, created_at, updated_at)
		VALUES ('c1', 'Sub', 'p1', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM tasks WHERE id = 'p1'`)
	require.NoError(t, err)

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE id = 'c1'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "deleting a container should cascade to its sub-units")
}

func TestMigrate_DayOrderingsPrimaryKey_UniquePair(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO tasks (id, title, created_at, updated_at)
		VALUES ('t1', 'Task', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO day_orderings (date, task_id, position) VALUES ('2026-03-09', 't1', 0)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO day_orderings (date, task_id, position) VALUES ('2026-03-09', 't1', 1)`)
	assert.Error(t, err, "duplicate (date, task) pair should violate composite primary key")
}

func TestMigrate_ScheduleWindowsWeekdayBounds(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO schedule_windows (weekday, kind, start_min, end_min, enabled, flexible)
		VALUES (7, 'work', 0, 0, 0, 0)`)
	assert.Error(t, err, "weekday outside 0-6 should be rejected by CHECK constraint")
}
