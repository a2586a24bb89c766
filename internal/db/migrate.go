package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		category         TEXT NOT NULL DEFAULT ''
		                 CHECK(category IN ('','client_work','creative','admin','communication','learning','errand')),
		kind             TEXT NOT NULL DEFAULT 'leaf'
		                 CHECK(kind IN ('leaf','container')),
		parent_id        TEXT REFERENCES tasks(id) ON DELETE CASCADE,
		priority         TEXT NOT NULL DEFAULT 'normal'
		                 CHECK(priority IN ('urgent','high','normal')),
		estimated_min    INTEGER NOT NULL DEFAULT 0,
		worked_min       INTEGER NOT NULL DEFAULT 0,
		fixed_start_min  INTEGER,
		due_date         TEXT,
		not_before       TEXT,
		completed        INTEGER NOT NULL DEFAULT 0,
		timer_running    INTEGER NOT NULL DEFAULT 0,
		timer_started_at TEXT,
		rolled_over      INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,

	// One row per weekday per schedule kind; minute-of-day bounds.
	`CREATE TABLE IF NOT EXISTS schedule_windows (
		weekday   INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		kind      TEXT NOT NULL CHECK(kind IN ('work','home')),
		start_min INTEGER NOT NULL DEFAULT 0,
		end_min   INTEGER NOT NULL DEFAULT 0,
		enabled   INTEGER NOT NULL DEFAULT 0,
		flexible  INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (weekday, kind)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_settings (
		id         TEXT PRIMARY KEY DEFAULT 'default',
		buffer_pct REAL NOT NULL DEFAULT 0.25
	)`,

	// Seed default settings
	`INSERT OR IGNORE INTO schedule_settings (id) VALUES ('default')`,

	// Seed the default weekly hours: 08:30-16:15 work and 18:00-21:00 home
	// on weekdays, a flexible 09:00-20:00 home window on weekends.
	`INSERT OR IGNORE INTO schedule_windows (weekday, kind, start_min, end_min, enabled, flexible) VALUES
		(1, 'work', 510, 975, 1, 0),
		(2, 'work', 510, 975, 1, 0),
		(3, 'work', 510, 975, 1, 0),
		(4, 'work', 510, 975, 1, 0),
		(5, 'work', 510, 975, 1, 0),
		(0, 'work', 0, 0, 0, 0),
		(6, 'work', 0, 0, 0, 0),
		(1, 'home', 1080, 1260, 1, 0),
		(2, 'home', 1080, 1260, 1, 0),
		(3, 'home', 1080, 1260, 1, 0),
		(4, 'home', 1080, 1260, 1, 0),
		(5, 'home', 1080, 1260, 1, 0),
		(0, 'home', 540, 1200, 1, 1),
		(6, 'home', 540, 1200, 1, 1)`,

	// Per-date window override; end_min <= start_min disables the day.
	`CREATE TABLE IF NOT EXISTS day_overrides (
		date      TEXT PRIMARY KEY,
		start_min INTEGER NOT NULL DEFAULT 0,
		end_min   INTEGER NOT NULL DEFAULT 0,
		reason    TEXT NOT NULL DEFAULT ''
	)`,

	// External calendar events occupying a day.
	`CREATE TABLE IF NOT EXISTS calendar_blocks (
		id        TEXT PRIMARY KEY,
		date      TEXT NOT NULL,
		title     TEXT NOT NULL,
		start_min INTEGER NOT NULL,
		end_min   INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_calendar_blocks_date ON calendar_blocks(date)`,

	// Energy preferences per task category; window ids reference the
	// built-in energy window labels.
	`CREATE TABLE IF NOT EXISTS category_preferences (
		category          TEXT PRIMARY KEY
		                  CHECK(category IN ('client_work','creative','admin','communication','learning','errand')),
		preferred_windows TEXT NOT NULL DEFAULT '',
		avoided_windows   TEXT NOT NULL DEFAULT '',
		requires_focus    INTEGER NOT NULL DEFAULT 0,
		rank              INTEGER NOT NULL DEFAULT 0
	)`,

	// Explicit user ordering of a day's tasks; position 0 is first.
	`CREATE TABLE IF NOT EXISTS day_orderings (
		date     TEXT NOT NULL,
		task_id  TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		PRIMARY KEY (date, task_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_day_orderings_date ON day_orderings(date)`,
}
