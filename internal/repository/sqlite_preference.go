package repository

import (
	"context"
	"fmt"
	"strings"

	tdb "github.com/lenacroft/tempo/internal/db"
	"github.com/lenacroft/tempo/internal/domain"
)

// SQLitePreferenceRepo implements PreferenceRepo using a SQLite database.
// Window ID lists are stored comma-joined; IDs never contain commas.
type SQLitePreferenceRepo struct {
	db tdb.DBTX
}

// NewSQLitePreferenceRepo creates a new SQLitePreferenceRepo.
func NewSQLitePreferenceRepo(conn tdb.DBTX) *SQLitePreferenceRepo {
	return &SQLitePreferenceRepo{db: conn}
}

func (r *SQLitePreferenceRepo) List(ctx context.Context) ([]domain.CategoryPreference, error) {
	query := `SELECT category, preferred_windows, avoided_windows, requires_focus, rank
		FROM category_preferences ORDER BY rank, category`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing category preferences: %w", err)
	}
	defer rows.Close()

	var prefs []domain.CategoryPreference
	for rows.Next() {
		var categoryStr, preferredStr, avoidedStr string
		var focusInt, rank int
		if err := rows.Scan(&categoryStr, &preferredStr, &avoidedStr, &focusInt, &rank); err != nil {
			return nil, fmt.Errorf("scanning category preference: %w", err)
		}
		prefs = append(prefs, domain.CategoryPreference{
			Category:      domain.TaskCategory(categoryStr),
			Preferred:     splitWindowIDs(preferredStr),
			Avoided:       splitWindowIDs(avoidedStr),
			RequiresFocus: intToBool(focusInt),
			Rank:          rank,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category preferences: %w", err)
	}
	return prefs, nil
}

func (r *SQLitePreferenceRepo) Upsert(ctx context.Context, p *domain.CategoryPreference) error {
	query := `INSERT INTO category_preferences (category, preferred_windows, avoided_windows, requires_focus, rank)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(category) DO UPDATE
		SET preferred_windows = excluded.preferred_windows,
		    avoided_windows = excluded.avoided_windows,
		    requires_focus = excluded.requires_focus,
		    rank = excluded.rank`
	_, err := r.db.ExecContext(ctx, query,
		string(p.Category),
		strings.Join(p.Preferred, ","),
		strings.Join(p.Avoided, ","),
		boolToInt(p.RequiresFocus),
		p.Rank,
	)
	if err != nil {
		return fmt.Errorf("upserting category preference: %w", err)
	}
	return nil
}

func (r *SQLitePreferenceRepo) Delete(ctx context.Context, category domain.TaskCategory) error {
	query := `DELETE FROM category_preferences WHERE category = ?`
	_, err := r.db.ExecContext(ctx, query, string(category))
	if err != nil {
		return fmt.Errorf("deleting category preference: %w", err)
	}
	return nil
}

func splitWindowIDs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
