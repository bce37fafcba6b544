package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

type PlanWriteRepository struct {
	db *sqlx.DB
}

func NewPlanWriteRepository(db *sqlx.DB) *PlanWriteRepository {
	return &PlanWriteRepository{db: db}
}

// Save inserts a new plan. Prior plans are retained as history, never
// overwritten.
func (r *PlanWriteRepository) Save(ctx context.Context, p models.SkinPlanDB) error {
	const query = `
		INSERT INTO skin_plans (plan_id, user_id, generated_at, advice, products)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{p.PlanID, p.UserID, p.GeneratedAt, p.Advice, p.Products}

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

type PlanReadRepository struct {
	db *sqlx.DB
}

func NewPlanReadRepository(db *sqlx.DB) *PlanReadRepository {
	return &PlanReadRepository{db: db}
}

// ListByUser returns the user's plan history, newest first.
func (r *PlanReadRepository) ListByUser(ctx context.Context, userID string) ([]models.SkinPlanDB, error) {
	const query = `
		SELECT plan_id, user_id, generated_at, advice, products
		FROM skin_plans
		WHERE user_id = $1
		ORDER BY generated_at DESC
	`

	plans := []models.SkinPlanDB{}
	err := r.db.SelectContext(ctx, &plans, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(plans),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return plans, nil
}
