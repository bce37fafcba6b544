package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

func TestUserWriteRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	dob := time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC)
	err := writeRepo.Save(ctx, models.UserDB{
		UserID:   "alice",
		Name:     "Alice",
		Email:    "alice@example.com",
		SkinType: "oily",
		Goals:    models.Goals{"reduce flare-ups", "even tone"},
		DOB:      &dob,
	})
	assert.NoError(t, err)

	user, err := readRepo.GetByID(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "oily", user.SkinType)
	assert.Equal(t, models.Goals{"reduce flare-ups", "even tone"}, user.Goals)
}

func TestUserWriteRepository_UpsertReplacesProfile(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, models.UserDB{
		UserID: "bob", Name: "Bob", Email: "bob@example.com", SkinType: "dry",
	}))
	assert.NoError(t, writeRepo.Save(ctx, models.UserDB{
		UserID: "bob", Name: "Robert", Email: "bob@example.com", SkinType: "combination",
	}))

	user, err := readRepo.GetByID(ctx, "bob")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "Robert", user.Name)
	assert.Equal(t, "combination", user.SkinType)
}

func TestUserReadRepository_GetByID_NotFound(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	readRepo := NewUserReadRepository(db)

	user, err := readRepo.GetByID(context.Background(), "nonexistent")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
