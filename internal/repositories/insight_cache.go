package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// InsightCacheRepository provides a read-through cache of computed insight
// reports using Redis. Entries expire after the configured TTL and are
// invalidated whenever new data arrives for the user.
type InsightCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewInsightCacheRepository creates a new repository instance with the given TTL.
func NewInsightCacheRepository(client *redis.Client, expiration time.Duration) *InsightCacheRepository {
	return &InsightCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func insightKey(userID string, windowDays int) string {
	return fmt.Sprintf("insights:%s:%d", userID, windowDays)
}

// Get fetches a cached insight report for the user and window.
func (r *InsightCacheRepository) Get(ctx context.Context, userID string, windowDays int) (*models.InsightReport, error) {
	key := insightKey(userID, windowDays)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"cache get",
		"key", key,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("insight report not found in cache for %s", key)
		}
		return nil, err
	}

	var report models.InsightReport
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// Set caches an insight report with the repository's expiration.
func (r *InsightCacheRepository) Set(ctx context.Context, userID string, windowDays int, report *models.InsightReport) error {
	key := insightKey(userID, windowDays)

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"cache set",
		"key", key,
		"error", err,
	)

	return err
}

// Invalidate drops every cached window for the user. Called after entry or
// assessment writes so stale correlations are never served.
func (r *InsightCacheRepository) Invalidate(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("insights:%s:*", userID)

	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		logger.Log.Errorw("failed to list insight cache keys", "pattern", pattern, "error", err)
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	err = r.client.Del(ctx, keys...).Err()

	logger.Log.Infow(
		"cache invalidate",
		"pattern", pattern,
		"dropped", len(keys),
		"error", err,
	)

	return err
}
