package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// MinPairedSamples is the minimum number of paired observations a habit
// category needs before a correlation is reported for it. Categories below
// the cutoff are excluded rather than reported with a degenerate statistic.
const MinPairedSamples = 3

// AssessmentReader defines read operations for photo assessments.
type AssessmentReader interface {
	ListRange(ctx context.Context, userID string, from, to *time.Time) ([]models.AssessmentDB, error)
}

// InsightCache caches computed insight reports.
type InsightCache interface {
	Get(ctx context.Context, userID string, windowDays int) (*models.InsightReport, error)
	Set(ctx context.Context, userID string, windowDays int, report *models.InsightReport) error
	Invalidate(ctx context.Context, userID string) error
}

// InsightService computes habit/severity associations over a user's time
// series. The computation itself is pure; fetched rows in, statistics out.
// Reports are served read-through from the cache.
type InsightService struct {
	users       UserReader
	entries     EntryReader
	assessments AssessmentReader
	cache       InsightCache
}

// NewInsightService creates a new InsightService instance.
func NewInsightService(users UserReader, entries EntryReader, assessments AssessmentReader, cache InsightCache) *InsightService {
	return &InsightService{
		users:       users,
		entries:     entries,
		assessments: assessments,
		cache:       cache,
	}
}

// Compute returns the insight report for the user over the trailing window.
func (svc *InsightService) Compute(ctx context.Context, userID string, windowDays int) (*models.InsightReport, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if report, err := svc.cache.Get(ctx, userID, windowDays); err == nil {
		return report, nil
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -windowDays)

	entries, err := svc.entries.ListRange(ctx, userID, &from, &now)
	if err != nil {
		logger.Log.Errorw("failed to list entries", "user_id", userID, "err", err)
		return nil, err
	}
	assessments, err := svc.assessments.ListRange(ctx, userID, &from, &now)
	if err != nil {
		logger.Log.Errorw("failed to list assessments", "user_id", userID, "err", err)
		return nil, err
	}

	report := buildReport(entries, assessments, windowDays)

	if err := svc.cache.Set(ctx, userID, windowDays, report); err != nil {
		logger.Log.Warnw("failed to cache insight report", "user_id", userID, "err", err)
	}

	return report, nil
}

// buildReport aligns entries with the nearest-following assessment severity
// and computes a Pearson coefficient per habit category.
func buildReport(entries []models.DailyEntryDB, assessments []models.AssessmentDB, windowDays int) *models.InsightReport {
	type pair struct {
		value    float64
		severity float64
	}
	pairsByHabit := make(map[string][]pair)
	paired := 0

	for _, entry := range entries {
		severity, ok := nearestFollowingSeverity(entry.EntryDate, assessments)
		if !ok {
			continue
		}
		paired++
		for habit, value := range entry.Habits {
			pairsByHabit[habit] = append(pairsByHabit[habit], pair{value: value, severity: severity})
		}
	}

	correlations := make(map[string]float64)
	for habit, pairs := range pairsByHabit {
		if len(pairs) < MinPairedSamples {
			continue
		}
		xs := make([]float64, len(pairs))
		ys := make([]float64, len(pairs))
		for i, p := range pairs {
			xs[i] = p.value
			ys[i] = p.severity
		}
		r, ok := pearson(xs, ys)
		if !ok {
			continue
		}
		correlations[habit] = r
	}

	return &models.InsightReport{
		Correlations: correlations,
		Summary:      summarizeCorrelations(correlations, paired),
		WindowDays:   windowDays,
		SampleDays:   paired,
	}
}

// nearestFollowingSeverity returns the severity of the earliest assessment
// taken on or after the given date. Assessments must be sorted by taken_at
// ascending, which is how the repository returns them.
func nearestFollowingSeverity(date time.Time, assessments []models.AssessmentDB) (float64, bool) {
	day := date.Truncate(24 * time.Hour)
	idx := sort.Search(len(assessments), func(i int) bool {
		return !assessments[i].TakenAt.Truncate(24 * time.Hour).Before(day)
	})
	if idx == len(assessments) {
		return 0, false
	}
	return assessments[idx].Severity, true
}

// pearson computes the Pearson correlation coefficient. It reports ok=false
// when either series has zero variance, where the statistic is undefined.
func pearson(xs, ys []float64) (float64, bool) {
	n := float64(len(xs))
	if n == 0 {
		return 0, false
	}

	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}

	return cov / math.Sqrt(varX*varY), true
}

func summarizeCorrelations(correlations map[string]float64, paired int) string {
	if len(correlations) == 0 {
		return "Not enough paired data to compute habit associations yet."
	}

	strongest := ""
	strongestAbs := 0.0
	for habit, r := range correlations {
		if abs := math.Abs(r); abs > strongestAbs || (abs == strongestAbs && habit < strongest) {
			strongest = habit
			strongestAbs = abs
		}
	}

	direction := "higher"
	if correlations[strongest] < 0 {
		direction = "lower"
	}
	return fmt.Sprintf(
		"Across %d paired days, %s shows the strongest association with flare severity (r=%.2f): %s values track with more severe outbreaks.",
		paired, strongest, correlations[strongest], direction,
	)
}
