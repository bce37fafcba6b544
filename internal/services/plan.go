package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// planWindowDays is the trailing window correlations and severity are
// drawn from when generating a plan.
const planWindowDays = 30

// habitAdvice maps a habit category to the tip included in the plan when
// the category's correlation suggests it drives flare severity.
var habitAdvice = map[string]string{
	"sleep_hours":    "Aim for 7-9 hours of sleep; short nights track with your flare-ups.",
	"stress":         "Stress tracks with your flare-ups; build in wind-down time on high-stress days.",
	"diet":           "Diet quality tracks with your flare-ups; favor low-glycemic meals.",
	"water_liters":   "Hydration tracks with your flare-ups; keep water intake steady.",
	"dairy_servings": "Dairy intake tracks with your flare-ups; consider cutting back to test the link.",
}

// ProductSearcher is the narrow capability of the product-search upstream.
type ProductSearcher interface {
	Search(ctx context.Context, category, terms string) ([]models.Product, error)
}

// PlanWriter defines write operations for skin plans.
type PlanWriter interface {
	Save(ctx context.Context, p models.SkinPlanDB) error
}

// PlanReader defines read operations for skin plans.
type PlanReader interface {
	ListByUser(ctx context.Context, userID string) ([]models.SkinPlanDB, error)
}

// Insighter computes the insight report the plan is derived from.
type Insighter interface {
	Compute(ctx context.Context, userID string, windowDays int) (*models.InsightReport, error)
}

// PlanService generates skincare plans: correlations and the latest
// severity drive the recommended product categories, the product-search
// upstream supplies the listings. Generation is all or nothing; if any
// search fails, no plan is persisted.
type PlanService struct {
	users       UserReader
	insights    Insighter
	assessments AssessmentReader
	products    ProductSearcher
	writer      PlanWriter
	reader      PlanReader
	events      EventWriter
}

// NewPlanService creates a new PlanService instance.
func NewPlanService(
	users UserReader,
	insights Insighter,
	assessments AssessmentReader,
	products ProductSearcher,
	writer PlanWriter,
	reader PlanReader,
	events EventWriter,
) *PlanService {
	return &PlanService{
		users:       users,
		insights:    insights,
		assessments: assessments,
		products:    products,
		writer:      writer,
		reader:      reader,
		events:      events,
	}
}

// categoriesForSeverity picks product categories by severity tier.
func categoriesForSeverity(severity float64) []string {
	switch {
	case severity >= 6:
		return []string{"salicylic acid cleanser", "benzoyl peroxide treatment", "oil-free moisturizer", "mineral sunscreen"}
	case severity >= 3:
		return []string{"gentle foaming cleanser", "niacinamide serum", "oil-free moisturizer"}
	default:
		return []string{"gentle cleanser", "daily moisturizer", "mineral sunscreen"}
	}
}

// Generate builds and persists a new plan for the user.
func (svc *PlanService) Generate(ctx context.Context, userID string) (*models.SkinPlanDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	report, err := svc.insights.Compute(ctx, userID, planWindowDays)
	if err != nil {
		logger.Log.Errorw("failed to compute insights", "user_id", userID, "err", err)
		return nil, err
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -planWindowDays)
	assessments, err := svc.assessments.ListRange(ctx, userID, &from, &now)
	if err != nil {
		logger.Log.Errorw("failed to list assessments", "user_id", userID, "err", err)
		return nil, err
	}

	var severity float64
	if len(assessments) > 0 {
		severity = assessments[len(assessments)-1].Severity
	}

	var products models.ProductList
	for _, category := range categoriesForSeverity(severity) {
		terms := category
		if user.SkinType != "" {
			terms = fmt.Sprintf("%s for %s skin", category, user.SkinType)
		}
		found, err := svc.products.Search(ctx, category, terms)
		if err != nil {
			// All or nothing: a failed search fails the whole generation
			// and nothing is persisted.
			logger.Log.Errorw("product search failed", "user_id", userID, "category", category, "err", err)
			return nil, mapUpstreamErr(err)
		}
		products = append(products, found...)
	}

	plan := models.SkinPlanDB{
		PlanID:      uuid.New(),
		UserID:      userID,
		GeneratedAt: now,
		Advice:      buildAdvice(report, severity),
		Products:    products,
	}

	if err := svc.writer.Save(ctx, plan); err != nil {
		logger.Log.Errorw("failed to save plan", "user_id", userID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.events, userID, "plan.generated", plan.PlanID.String())

	return &plan, nil
}

// History returns the user's prior plans, newest first.
func (svc *PlanService) History(ctx context.Context, userID string) ([]models.SkinPlanDB, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return svc.reader.ListByUser(ctx, userID)
}

// buildAdvice assembles the recommendation text from the latest severity
// and the habits whose correlations cross the advice threshold.
func buildAdvice(report *models.InsightReport, severity float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current severity is %.1f/10. %s", severity, report.Summary)

	habits := make([]string, 0, len(report.Correlations))
	for habit, r := range report.Correlations {
		// A strong positive correlation (or strong negative for sleep and
		// water, where more is better) marks the habit as a focus area.
		threshold := 0.3
		if habit == "sleep_hours" || habit == "water_liters" {
			if r <= -threshold {
				habits = append(habits, habit)
			}
			continue
		}
		if r >= threshold {
			habits = append(habits, habit)
		}
	}
	sort.Strings(habits)

	for _, habit := range habits {
		if tip, ok := habitAdvice[habit]; ok {
			b.WriteString(" ")
			b.WriteString(tip)
		}
	}

	return b.String()
}
