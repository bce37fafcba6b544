package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given identifier, or (nil, nil) when
// no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, email, password_hash, skin_type, goals, dob, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save upserts the user profile. Profile saves are last-write-wins: the
// row is replaced wholesale on conflict.
func (r *UserWriteRepository) Save(ctx context.Context, user models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, name, email, password_hash, skin_type, goals, dob, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    password_hash = EXCLUDED.password_hash,
		    skin_type = EXCLUDED.skin_type,
		    goals = EXCLUDED.goals,
		    dob = EXCLUDED.dob,
		    updated_at = NOW()
	`
	var dob *time.Time
	if user.DOB != nil {
		dob = user.DOB
	}
	args := []any{user.UserID, user.Name, user.Email, user.PasswordHash, user.SkinType, user.Goals, dob}

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
