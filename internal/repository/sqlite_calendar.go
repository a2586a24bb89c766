package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	tdb "github.com/lenacroft/tempo/internal/db"
	"github.com/lenacroft/tempo/internal/domain"
)

// SQLiteCalendarRepo implements CalendarRepo using a SQLite database.
type SQLiteCalendarRepo struct {
	db tdb.DBTX
}

// NewSQLiteCalendarRepo creates a new SQLiteCalendarRepo.
func NewSQLiteCalendarRepo(conn tdb.DBTX) *SQLiteCalendarRepo {
	return &SQLiteCalendarRepo{db: conn}
}

func (r *SQLiteCalendarRepo) Create(ctx context.Context, e *domain.CalendarEvent) error {
	query := `INSERT INTO calendar_blocks (id, date, title, start_min, end_min, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		domain.OverrideKey(e.Date),
		e.Title,
		e.StartMin,
		e.EndMin,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting calendar event: %w", err)
	}
	return nil
}

func (r *SQLiteCalendarRepo) ListByDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error) {
	query := `SELECT id, date, title, start_min, end_min, created_at
		FROM calendar_blocks WHERE date = ? ORDER BY start_min, id`
	rows, err := r.db.QueryContext(ctx, query, domain.OverrideKey(date))
	if err != nil {
		return nil, fmt.Errorf("listing calendar events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteCalendarRepo) ListRange(ctx context.Context, from, to time.Time) ([]*domain.CalendarEvent, error) {
	query := `SELECT id, date, title, start_min, end_min, created_at
		FROM calendar_blocks WHERE date >= ? AND date <= ? ORDER BY date, start_min, id`
	rows, err := r.db.QueryContext(ctx, query, domain.OverrideKey(from), domain.OverrideKey(to))
	if err != nil {
		return nil, fmt.Errorf("listing calendar events in range: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteCalendarRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM calendar_blocks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting calendar event: %w", err)
	}
	return nil
}

func (r *SQLiteCalendarRepo) scanEvents(rows *sql.Rows) ([]*domain.CalendarEvent, error) {
	var events []*domain.CalendarEvent
	for rows.Next() {
		var e domain.CalendarEvent
		var dateStr, createdAtStr string
		if err := rows.Scan(&e.ID, &dateStr, &e.Title, &e.StartMin, &e.EndMin, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning calendar event: %w", err)
		}

		var parseErr error
		e.Date, parseErr = time.Parse(dateLayout, dateStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing event date: %w", parseErr)
		}
		e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calendar events: %w", err)
	}
	return events, nil
}
