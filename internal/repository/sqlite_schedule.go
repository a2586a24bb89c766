package repository

import (
	"context"
	"fmt"
	"time"

	tdb "github.com/lenacroft/tempo/internal/db"
	"github.com/lenacroft/tempo/internal/domain"
)

// SQLiteScheduleRepo implements ScheduleRepo over the schedule_windows,
// schedule_settings and day_overrides tables.
type SQLiteScheduleRepo struct {
	db tdb.DBTX
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(conn tdb.DBTX) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: conn}
}

func (r *SQLiteScheduleRepo) GetConfig(ctx context.Context) (*domain.ScheduleConfig, error) {
	cfg := domain.ScheduleConfig{}

	query := `SELECT weekday, kind, start_min, end_min, enabled, flexible FROM schedule_windows`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading schedule windows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday, startMin, endMin, enabledInt, flexibleInt int
		var kindStr string
		if err := rows.Scan(&weekday, &kindStr, &startMin, &endMin, &enabledInt, &flexibleInt); err != nil {
			return nil, fmt.Errorf("scanning schedule window: %w", err)
		}
		if weekday < 0 || weekday > 6 {
			continue
		}
		cfg.SetWindow(time.Weekday(weekday), domain.ScheduleKind(kindStr), domain.DayWindow{
			StartMin: startMin,
			EndMin:   endMin,
			Enabled:  intToBool(enabledInt),
			Flexible: intToBool(flexibleInt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule windows: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `SELECT buffer_pct FROM schedule_settings WHERE id = 'default'`)
	if err := row.Scan(&cfg.BufferPct); err != nil {
		return nil, fmt.Errorf("loading schedule settings: %w", err)
	}

	return &cfg, nil
}

func (r *SQLiteScheduleRepo) SetWindow(ctx context.Context, weekday time.Weekday, kind domain.ScheduleKind, w domain.DayWindow) error {
	query := `INSERT INTO schedule_windows (weekday, kind, start_min, end_min, enabled, flexible)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(weekday, kind) DO UPDATE
		SET start_min = excluded.start_min, end_min = excluded.end_min,
		    enabled = excluded.enabled, flexible = excluded.flexible`
	_, err := r.db.ExecContext(ctx, query,
		int(weekday), string(kind), w.StartMin, w.EndMin, boolToInt(w.Enabled), boolToInt(w.Flexible))
	if err != nil {
		return fmt.Errorf("upserting schedule window: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) SetBufferPct(ctx context.Context, pct float64) error {
	query := `UPDATE schedule_settings SET buffer_pct = ? WHERE id = 'default'`
	_, err := r.db.ExecContext(ctx, query, pct)
	if err != nil {
		return fmt.Errorf("updating buffer setting: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) ListOverrides(ctx context.Context) (map[string]domain.DayOverride, error) {
	query := `SELECT date, start_min, end_min, reason FROM day_overrides`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing day overrides: %w", err)
	}
	defer rows.Close()

	overrides := map[string]domain.DayOverride{}
	for rows.Next() {
		var dateStr, reason string
		var startMin, endMin int
		if err := rows.Scan(&dateStr, &startMin, &endMin, &reason); err != nil {
			return nil, fmt.Errorf("scanning day override: %w", err)
		}
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing override date %q: %w", dateStr, err)
		}
		overrides[dateStr] = domain.DayOverride{
			Date:     date,
			StartMin: startMin,
			EndMin:   endMin,
			Reason:   reason,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day overrides: %w", err)
	}
	return overrides, nil
}

func (r *SQLiteScheduleRepo) UpsertOverride(ctx context.Context, ov *domain.DayOverride) error {
	query := `INSERT INTO day_overrides (date, start_min, end_min, reason)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE
		SET start_min = excluded.start_min, end_min = excluded.end_min, reason = excluded.reason`
	_, err := r.db.ExecContext(ctx, query,
		domain.OverrideKey(ov.Date), ov.StartMin, ov.EndMin, ov.Reason)
	if err != nil {
		return fmt.Errorf("upserting day override: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) DeleteOverride(ctx context.Context, date time.Time) error {
	query := `DELETE FROM day_overrides WHERE date = ?`
	_, err := r.db.ExecContext(ctx, query, domain.OverrideKey(date))
	if err != nil {
		return fmt.Errorf("deleting day override: %w", err)
	}
	return nil
}
