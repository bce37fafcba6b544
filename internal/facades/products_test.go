package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductSearchHTTPFacade_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "google_shopping", r.URL.Query().Get("engine"))
		assert.Equal(t, "salicylic acid cleanser", r.URL.Query().Get("q"))
		assert.Equal(t, "test_key", r.URL.Query().Get("api_key"))

		json.NewEncoder(w).Encode(map[string]any{
			"shopping_results": []map[string]any{
				{"title": "SA Cleanser 2%", "extracted_price": 12.99, "link": "https://shop.example/1", "source": "shop"},
				{"title": "Daily Foam Wash", "extracted_price": 8.50, "link": "https://shop.example/2", "source": "shop"},
			},
		})
	}))
	defer srv.Close()

	facade := NewProductSearchHTTPFacade(srv.URL, "test_key", 5*time.Second)

	products, err := facade.Search(context.Background(), "cleanser", "salicylic acid cleanser")
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "SA Cleanser 2%", products[0].Name, "upstream relevance order must be preserved")
	assert.Equal(t, 12.99, products[0].Price)
	assert.Equal(t, "cleanser", products[0].Category)
}

func TestProductSearchHTTPFacade_Search_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"shopping_results": []any{}})
	}))
	defer srv.Close()

	facade := NewProductSearchHTTPFacade(srv.URL, "test_key", 5*time.Second)

	products, err := facade.Search(context.Background(), "cleanser", "anything")
	assert.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductSearchHTTPFacade_Search_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	facade := NewProductSearchHTTPFacade(srv.URL, "test_key", 5*time.Second)

	_, err := facade.Search(context.Background(), "cleanser", "anything")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestProductSearchHTTPFacade_Search_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	facade := NewProductSearchHTTPFacade(srv.URL, "test_key", time.Second)

	_, err := facade.Search(context.Background(), "cleanser", "anything")
	assert.ErrorIs(t, err, ErrUnavailable)
}
