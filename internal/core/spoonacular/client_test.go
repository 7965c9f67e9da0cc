package spoonacular

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Spoonacular: config.SpoonacularConfig{
			APIKey:        "test-key",
			BaseURL:       baseURL,
			Timeout:       5 * time.Second,
			DefaultNumber: 20,
		},
	}
}

func TestFindByIngredients(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recipes/findByIngredients", r.URL.Path)
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{
				"id": 101,
				"title": "Fried Rice",
				"image": "https://img.example/101.jpg",
				"usedIngredients": [{"name": "rice"}],
				"missedIngredients": [{"name": "egg", "amount": 2, "unit": "pcs"}]
			}
		]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	candidates, err := client.FindByIngredients(context.Background(), "rice, tomatoes", 10)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, int64(101), candidates[0].ID)
	assert.Equal(t, "Fried Rice", candidates[0].Title)
	assert.Equal(t, "2 pcs", candidates[0].MissedIngredients[0].Quantity())

	assert.Equal(t, "test-key", gotQuery["apiKey"])
	assert.Equal(t, "rice, tomatoes", gotQuery["ingredients"])
	assert.Equal(t, "10", gotQuery["number"])
	assert.Equal(t, "1", gotQuery["ranking"])
	assert.Equal(t, "true", gotQuery["ignorePantry"])
}

func TestFindByIngredientsDefaultsNumber(t *testing.T) {
	var gotNumber string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotNumber = r.URL.Query().Get("number")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.FindByIngredients(context.Background(), "rice", 0)

	require.NoError(t, err)
	assert.Equal(t, "20", gotNumber)
}

func TestFindByIngredientsToleratesAbsentIngredientArrays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 7, "title": "Plain Toast"}]`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	candidates, err := client.FindByIngredients(context.Background(), "bread", 5)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].UsedIngredients)
	assert.Empty(t, candidates[0].MissedIngredients)
}

func TestFindByIngredientsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message": "daily quota exceeded"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	candidates, err := client.FindByIngredients(context.Background(), "rice", 5)

	assert.Nil(t, candidates)
	require.Error(t, err)

	var custom *common.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, common.ErrCodeUpstreamError, custom.Code)
	assert.Equal(t, http.StatusBadGateway, custom.Status)
	assert.Contains(t, custom.Message, "402")
	assert.Contains(t, custom.Err.Error(), "daily quota exceeded")
}

func TestFindByIngredientsConnectionError(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Spoonacular.Timeout = 500 * time.Millisecond
	client := NewClient(cfg)

	_, err := client.FindByIngredients(context.Background(), "rice", 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}

func TestComplexSearch(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recipes/complexSearch", r.URL.Path)
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Write([]byte(`{"results": [
			{
				"id": 55,
				"title": "Vegan Chili",
				"readyInMinutes": 35,
				"servings": 4,
				"sourceUrl": "https://example.com/vegan-chili"
			}
		]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	results, err := client.ComplexSearch(context.Background(), SearchRequest{
		Diet:               "vegan",
		IncludeIngredients: "beans, tomatoes",
		MaxReadyTime:       45,
		Number:             5,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Vegan Chili", results[0].Title)
	assert.Equal(t, 35, results[0].ReadyInMinutes)

	assert.Equal(t, "vegan", gotQuery["diet"])
	assert.Equal(t, "beans, tomatoes", gotQuery["includeIngredients"])
	assert.Equal(t, "45", gotQuery["maxReadyTime"])
	assert.Equal(t, "true", gotQuery["addRecipeInformation"])
}

func TestComplexSearchOmitsNoneDietAndZeroReadyTime(t *testing.T) {
	var query map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.ComplexSearch(context.Background(), SearchRequest{Diet: "none"})

	require.NoError(t, err)
	_, hasDiet := query["diet"]
	assert.False(t, hasDiet)
	_, hasReadyTime := query["maxReadyTime"]
	assert.False(t, hasReadyTime)
}
