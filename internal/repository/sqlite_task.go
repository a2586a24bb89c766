package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lenacroft/tempo/internal/domain"
	tdb "github.com/lenacroft/tempo/internal/db"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, title, category, kind, parent_id, priority,
		estimated_min, worked_min, fixed_start_min, due_date, not_before,
		completed, timer_running, timer_started_at, rolled_over, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db tdb.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn tdb.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, title, category, kind, parent_id, priority,
		estimated_min, worked_min, fixed_start_min, due_date, not_before,
		completed, timer_running, timer_started_at, rolled_over, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		string(t.Category),
		string(t.Kind),
		nullableString(t.ParentID),
		string(t.Priority),
		t.EstimatedMin,
		t.WorkedMin,
		nullableIntToValue(t.FixedStartMin),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.NotBefore, dateLayout),
		boolToInt(t.Completed),
		boolToInt(t.TimerRunning),
		nullableTimeToString(t.TimerStartedAt, time.RFC3339),
		boolToInt(t.RolledOver),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`
	if !includeCompleted {
		query = `SELECT ` + taskColumns + ` FROM tasks WHERE completed = 0 ORDER BY created_at, id`
	}
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListChildren(ctx context.Context, parentID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE parent_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing sub-units: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListSchedulable(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE kind = 'leaf' AND completed = 0 AND estimated_min > worked_min
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing schedulable tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, category = ?, kind = ?, parent_id = ?, priority = ?,
		estimated_min = ?, worked_min = ?, fixed_start_min = ?, due_date = ?, not_before = ?,
		completed = ?, timer_running = ?, timer_started_at = ?, rolled_over = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title,
		string(t.Category),
		string(t.Kind),
		nullableString(t.ParentID),
		string(t.Priority),
		t.EstimatedMin,
		t.WorkedMin,
		nullableIntToValue(t.FixedStartMin),
		nullableTimeToString(t.DueDate, dateLayout),
		nullableTimeToString(t.NotBefore, dateLayout),
		boolToInt(t.Completed),
		boolToInt(t.TimerRunning),
		nullableTimeToString(t.TimerStartedAt, time.RFC3339),
		boolToInt(t.RolledOver),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// nullableString stores empty strings as SQL NULL so the parent foreign key
// is only enforced when a parent is actually set.
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// scanTask scans a single task from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var categoryStr, kindStr, priorityStr string
	var parentID sql.NullString
	var fixedStart sql.NullInt64
	var dueDateStr, notBeforeStr, timerStartedStr sql.NullString
	var completedInt, timerRunningInt, rolledOverInt int
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.Title, &categoryStr, &kindStr, &parentID, &priorityStr,
		&t.EstimatedMin, &t.WorkedMin, &fixedStart, &dueDateStr, &notBeforeStr,
		&completedInt, &timerRunningInt, &timerStartedStr, &rolledOverInt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, categoryStr, kindStr, priorityStr, parentID, fixedStart,
		dueDateStr, notBeforeStr, timerStartedStr, completedInt, timerRunningInt, rolledOverInt,
		createdAtStr, updatedAtStr)
}

// scanTasks scans multiple tasks from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var categoryStr, kindStr, priorityStr string
		var parentID sql.NullString
		var fixedStart sql.NullInt64
		var dueDateStr, notBeforeStr, timerStartedStr sql.NullString
		var completedInt, timerRunningInt, rolledOverInt int
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.Title, &categoryStr, &kindStr, &parentID, &priorityStr,
			&t.EstimatedMin, &t.WorkedMin, &fixedStart, &dueDateStr, &notBeforeStr,
			&completedInt, &timerRunningInt, &timerStartedStr, &rolledOverInt,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := r.populateTask(&t, categoryStr, kindStr, priorityStr, parentID, fixedStart,
			dueDateStr, notBeforeStr, timerStartedStr, completedInt, timerRunningInt, rolledOverInt,
			createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw values.
func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	categoryStr, kindStr, priorityStr string,
	parentID sql.NullString,
	fixedStart sql.NullInt64,
	dueDateStr, notBeforeStr, timerStartedStr sql.NullString,
	completedInt, timerRunningInt, rolledOverInt int,
	createdAtStr, updatedAtStr string,
) (*domain.Task, error) {
	t.Category = domain.TaskCategory(categoryStr)
	t.Kind = domain.TaskKind(kindStr)
	t.Priority = domain.Priority(priorityStr)
	if parentID.Valid {
		t.ParentID = parentID.String
	}
	if fixedStart.Valid {
		v := int(fixedStart.Int64)
		t.FixedStartMin = &v
	}
	t.DueDate = parseNullableTime(dueDateStr, dateLayout)
	t.NotBefore = parseNullableTime(notBeforeStr, dateLayout)
	t.TimerStartedAt = parseNullableTime(timerStartedStr, time.RFC3339)
	t.Completed = intToBool(completedInt)
	t.TimerRunning = intToBool(timerRunningInt)
	t.RolledOver = intToBool(rolledOverInt)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return t, nil
}
