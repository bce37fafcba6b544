package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

type EntryWriteRepository struct {
	db *sqlx.DB
}

func NewEntryWriteRepository(db *sqlx.DB) *EntryWriteRepository {
	return &EntryWriteRepository{db: db}
}

// Save upserts the daily entry for (user_id, date). An existing entry for
// the same day is replaced entirely: last write wins, no history kept.
func (r *EntryWriteRepository) Save(ctx context.Context, userID string, date time.Time, habits models.HabitValues, notes string) error {
	const query = `
		INSERT INTO daily_entries (user_id, entry_date, habits, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, entry_date) DO UPDATE
		SET habits = EXCLUDED.habits,
		    notes = EXCLUDED.notes,
		    updated_at = NOW()
	`
	args := []any{userID, date, habits, notes}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

type EntryReadRepository struct {
	db *sqlx.DB
}

func NewEntryReadRepository(db *sqlx.DB) *EntryReadRepository {
	return &EntryReadRepository{db: db}
}

// ListRange returns entries ordered by date ascending. Bounds are inclusive;
// a nil bound is unbounded.
func (r *EntryReadRepository) ListRange(ctx context.Context, userID string, from, to *time.Time) ([]models.DailyEntryDB, error) {
	const query = `
		SELECT user_id, entry_date, habits, notes, created_at, updated_at
		FROM daily_entries
		WHERE user_id = $1
		  AND ($2::DATE IS NULL OR entry_date >= $2)
		  AND ($3::DATE IS NULL OR entry_date <= $3)
		ORDER BY entry_date ASC
	`

	entries := []models.DailyEntryDB{}
	err := r.db.SelectContext(ctx, &entries, query, userID, from, to)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return entries, nil
}
