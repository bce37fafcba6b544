package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

type AssessmentWriteRepository struct {
	db *sqlx.DB
}

func NewAssessmentWriteRepository(db *sqlx.DB) *AssessmentWriteRepository {
	return &AssessmentWriteRepository{db: db}
}

// Save inserts a new assessment. Assessments are immutable point-in-time
// facts, so there is no upsert path.
func (r *AssessmentWriteRepository) Save(ctx context.Context, a models.AssessmentDB) error {
	const query = `
		INSERT INTO photo_assessments (assessment_id, user_id, taken_at, photo_key, severity, confidence, lesion_count, conditions, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{a.AssessmentID, a.UserID, a.TakenAt, a.PhotoKey, a.Severity, a.Confidence, a.LesionCount, a.Conditions, a.Summary}

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

type AssessmentReadRepository struct {
	db *sqlx.DB
}

func NewAssessmentReadRepository(db *sqlx.DB) *AssessmentReadRepository {
	return &AssessmentReadRepository{db: db}
}

// ListRange returns assessments ordered by taken_at ascending. Bounds are
// inclusive; a nil bound is unbounded.
func (r *AssessmentReadRepository) ListRange(ctx context.Context, userID string, from, to *time.Time) ([]models.AssessmentDB, error) {
	const query = `
		SELECT assessment_id, user_id, taken_at, photo_key, severity, confidence, lesion_count, conditions, summary
		FROM photo_assessments
		WHERE user_id = $1
		  AND ($2::TIMESTAMPTZ IS NULL OR taken_at >= $2)
		  AND ($3::TIMESTAMPTZ IS NULL OR taken_at <= $3)
		ORDER BY taken_at ASC
	`

	assessments := []models.AssessmentDB{}
	err := r.db.SelectContext(ctx, &assessments, query, userID, from, to)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to},
		"result", len(assessments),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return assessments, nil
}
