package repository

import (
	"context"
	"fmt"
	"time"

	tdb "github.com/lenacroft/tempo/internal/db"
	"github.com/lenacroft/tempo/internal/domain"
)

// SQLiteOrderingRepo implements OrderingRepo using a SQLite database. An
// ordering is replaced wholesale; call it inside a unit of work when the
// caller needs atomicity with task updates.
type SQLiteOrderingRepo struct {
	db tdb.DBTX
}

// NewSQLiteOrderingRepo creates a new SQLiteOrderingRepo.
func NewSQLiteOrderingRepo(conn tdb.DBTX) *SQLiteOrderingRepo {
	return &SQLiteOrderingRepo{db: conn}
}

func (r *SQLiteOrderingRepo) Get(ctx context.Context, date time.Time) (map[string]int, error) {
	query := `SELECT task_id, position FROM day_orderings WHERE date = ?`
	rows, err := r.db.QueryContext(ctx, query, domain.OverrideKey(date))
	if err != nil {
		return nil, fmt.Errorf("loading day ordering: %w", err)
	}
	defer rows.Close()

	order := map[string]int{}
	for rows.Next() {
		var taskID string
		var position int
		if err := rows.Scan(&taskID, &position); err != nil {
			return nil, fmt.Errorf("scanning day ordering row: %w", err)
		}
		order[taskID] = position
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating day ordering: %w", err)
	}
	return order, nil
}

func (r *SQLiteOrderingRepo) Set(ctx context.Context, date time.Time, taskIDs []string) error {
	key := domain.OverrideKey(date)
	if _, err := r.db.ExecContext(ctx, `DELETE FROM day_orderings WHERE date = ?`, key); err != nil {
		return fmt.Errorf("clearing day ordering: %w", err)
	}
	for i, id := range taskIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO day_orderings (date, task_id, position) VALUES (?, ?, ?)`, key, id, i); err != nil {
			return fmt.Errorf("inserting day ordering position %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteOrderingRepo) Clear(ctx context.Context, date time.Time) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM day_orderings WHERE date = ?`, domain.OverrideKey(date)); err != nil {
		return fmt.Errorf("clearing day ordering: %w", err)
	}
	return nil
}
