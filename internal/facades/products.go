package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/logger"
	"github.com/amine-maazizi/AI-powered-skin-outbreak-tracker/internal/models"
)

// ProductSearchHTTPFacade wraps a hosted shopping-search API. Results come
// back in the upstream's relevance order and are passed through unchanged.
type ProductSearchHTTPFacade struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewProductSearchHTTPFacade creates a facade for the product-search
// upstream. The timeout bounds the whole call; there is no retry.
func NewProductSearchHTTPFacade(endpoint, apiKey string, timeout time.Duration) *ProductSearchHTTPFacade {
	return &ProductSearchHTTPFacade{
		client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
	}
}

type searchResponse struct {
	ShoppingResults []struct {
		Title          string  `json:"title"`
		ExtractedPrice float64 `json:"extracted_price"`
		Link           string  `json:"link"`
		Source         string  `json:"source"`
	} `json:"shopping_results"`
}

// Search queries the upstream for products in the given category and returns
// the listings in upstream relevance order.
func (f *ProductSearchHTTPFacade) Search(ctx context.Context, category, terms string) ([]models.Product, error) {
	q := url.Values{}
	q.Set("engine", "google_shopping")
	q.Set("q", strings.TrimSpace(terms))
	q.Set("api_key", f.apiKey)

	searchURL := fmt.Sprintf("%s/search.json?%s", f.endpoint, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("product search unreachable", "category", category, "error", err)
		return nil, fmt.Errorf("calling product search: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		logger.Log.Errorw("product search returned server error", "category", category, "status", resp.StatusCode)
		return nil, fmt.Errorf("product search status %d: %w", resp.StatusCode, ErrUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product search rejected request with status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Log.Errorw("failed to decode product search output", "error", err)
		return nil, fmt.Errorf("decoding product search output: %w", ErrUnavailable)
	}

	products := make([]models.Product, 0, len(out.ShoppingResults))
	for _, r := range out.ShoppingResults {
		if r.Title == "" {
			continue
		}
		products = append(products, models.Product{
			Name:     r.Title,
			Price:    r.ExtractedPrice,
			URL:      r.Link,
			Category: category,
		})
	}

	return products, nil
}
