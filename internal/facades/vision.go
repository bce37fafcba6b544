package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// severityWeights ranks condition labels by clinical severity. Labels the
// model emits that are not listed here contribute the lowest weight.
var severityWeights = map[string]float64{
	"comedone": 1,
	"papule":   2,
	"pustule":  3,
	"nodule":   4,
	"cyst":     5,
}

// minConfidence is the cutoff below which a predicted label is ignored.
const minConfidence = 0.15

// VisionHTTPFacade calls an externally hosted vision-language model over its
// inference HTTP API and maps the raw classification output into an
// assessment. It performs no caching, batching, or retries.
type VisionHTTPFacade struct {
	client   *http.Client
	endpoint string
	token    string
	model    string
}

// NewVisionHTTPFacade creates a facade for the hosted model. The timeout
// bounds the whole call; there is no retry.
func NewVisionHTTPFacade(endpoint, token, model string, timeout time.Duration) *VisionHTTPFacade {
	return &VisionHTTPFacade{
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		model:    model,
	}
}

// prediction is one entry of the model's raw classification output.
type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analyze sends the image bytes to the hosted model and returns the
// structured assessment: condition labels, a severity score in [0,10],
// the top confidence, and a one-line summary.
func (f *VisionHTTPFacade) Analyze(ctx context.Context, image []byte, contentType string) (*models.AssessmentDB, error) {
	url := fmt.Sprintf("%s/models/%s", f.endpoint, f.model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(image))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", contentType)

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("vision model unreachable", "url", url, "error", err)
		return nil, fmt.Errorf("calling vision model: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		logger.Log.Errorw("vision model returned server error", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("vision model status %d: %w", resp.StatusCode, ErrUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision model rejected request with status %d", resp.StatusCode)
	}

	var preds []prediction
	if err := json.NewDecoder(resp.Body).Decode(&preds); err != nil {
		logger.Log.Errorw("failed to decode vision model output", "error", err)
		return nil, fmt.Errorf("decoding vision model output: %w", ErrUnavailable)
	}

	return assessmentFromPredictions(preds), nil
}

// assessmentFromPredictions maps raw label scores into the assessment shape.
// Severity is a confidence-weighted mean of per-label weights scaled to
// [0,10]; a clean photo scores 0.
func assessmentFromPredictions(preds []prediction) *models.AssessmentDB {
	sort.SliceStable(preds, func(i, j int) bool { return preds[i].Score > preds[j].Score })

	var (
		conditions models.ConditionList
		weighted   float64
		total      float64
		top        float64
	)
	for _, p := range preds {
		if p.Score < minConfidence {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(p.Label))
		if label == "" || label == "clear" || label == "healthy" {
			continue
		}
		conditions = append(conditions, models.Condition{Label: label, Confidence: p.Score})
		w, ok := severityWeights[label]
		if !ok {
			w = 1
		}
		weighted += w * p.Score
		total += p.Score
		if p.Score > top {
			top = p.Score
		}
	}

	a := &models.AssessmentDB{
		Conditions:  conditions,
		Confidence:  top,
		LesionCount: len(conditions),
	}
	if total > 0 {
		a.Severity = 2 * weighted / total
		if a.Severity > 10 {
			a.Severity = 10
		}
	}
	a.Summary = summarize(conditions, a.Severity)
	return a
}

func summarize(conditions models.ConditionList, severity float64) string {
	if len(conditions) == 0 {
		return "No skin conditions detected."
	}
	parts := make([]string, 0, len(conditions))
	for _, c := range conditions {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", c.Label, c.Confidence))
	}
	return fmt.Sprintf("Detected %s; severity %.1f/10.", strings.Join(parts, ", "), severity)
}
