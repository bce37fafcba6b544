package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

func TestAssessmentRepository_SaveAndListRange(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	seedUser(t, db, "alice")

	writeRepo := NewAssessmentWriteRepository(db)
	readRepo := NewAssessmentReadRepository(db)
	ctx := context.Background()

	first := models.AssessmentDB{
		AssessmentID: uuid.New(),
		UserID:       "alice",
		TakenAt:      time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		PhotoKey:     "photos/alice/one.jpg",
		Severity:     4,
		Confidence:   0.82,
		LesionCount:  1,
		Conditions:   models.ConditionList{{Label: "papule", Confidence: 0.82}},
		Summary:      "papule detected",
	}
	second := models.AssessmentDB{
		AssessmentID: uuid.New(),
		UserID:       "alice",
		TakenAt:      time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
		PhotoKey:     "photos/alice/two.jpg",
		Severity:     2,
		Confidence:   0.64,
		LesionCount:  1,
		Conditions:   models.ConditionList{{Label: "comedone", Confidence: 0.64}},
		Summary:      "comedone detected",
	}

	assert.NoError(t, writeRepo.Save(ctx, second))
	assert.NoError(t, writeRepo.Save(ctx, first))

	got, err := readRepo.ListRange(ctx, "alice", nil, nil)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, first.AssessmentID, got[0].AssessmentID, "assessments must be ordered by taken_at ascending")
	assert.Equal(t, models.ConditionList{{Label: "papule", Confidence: 0.82}}, got[0].Conditions)
	assert.Equal(t, 1, got[0].LesionCount)

	t.Run("WindowExcludes", func(t *testing.T) {
		from := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
		got, err := readRepo.ListRange(ctx, "alice", &from, nil)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, second.AssessmentID, got[0].AssessmentID)
	})

	t.Run("OtherUserEmpty", func(t *testing.T) {
		seedUser(t, db, "bob")
		got, err := readRepo.ListRange(ctx, "bob", nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPlanRepository_SaveAndHistory(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	seedUser(t, db, "alice")

	writeRepo := NewPlanWriteRepository(db)
	readRepo := NewPlanReadRepository(db)
	ctx := context.Background()

	older := models.SkinPlanDB{
		PlanID:      uuid.New(),
		UserID:      "alice",
		GeneratedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Advice:      "gentle cleanser twice a day",
		Products: models.ProductList{
			{Name: "Foam Cleanser", Price: 11.99, URL: "https://shop.example/1", Category: "cleanser"},
		},
	}
	newer := models.SkinPlanDB{
		PlanID:      uuid.New(),
		UserID:      "alice",
		GeneratedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
		Advice:      "add a salicylic acid treatment",
		Products: models.ProductList{
			{Name: "SA Serum", Price: 18.50, URL: "https://shop.example/2", Category: "treatment"},
			{Name: "Oil-free Moisturizer", Price: 9.00, URL: "https://shop.example/3", Category: "moisturizer"},
		},
	}

	assert.NoError(t, writeRepo.Save(ctx, older))
	assert.NoError(t, writeRepo.Save(ctx, newer))

	plans, err := readRepo.ListByUser(ctx, "alice")
	assert.NoError(t, err)
	assert.Len(t, plans, 2, "prior plans are history, not overwritten")
	assert.Equal(t, newer.PlanID, plans[0].PlanID, "newest plan first")
	assert.Len(t, plans[0].Products, 2)
	assert.Equal(t, "SA Serum", plans[0].Products[0].Name, "product order must survive the round trip")
}
