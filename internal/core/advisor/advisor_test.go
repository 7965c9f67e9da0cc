package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"meal-planner/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeGenerator) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func cacheConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestNoopReturnsEmpty(t *testing.T) {
	assert.Equal(t, "", Noop{}.SubstitutionTip(context.Background(), "egg"))
	assert.Equal(t, "", Noop{}.PantryTip(context.Background(), "rice, egg"))
}

func TestSubstitutionTip(t *testing.T) {
	gen := &fakeGenerator{response: "  Use applesauce instead of egg.  "}
	svc := NewTipService(&config.Config{}, gen, nil)

	tip := svc.SubstitutionTip(context.Background(), "egg")

	assert.Equal(t, "Use applesauce instead of egg.", tip)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], `"egg"`)
}

func TestSubstitutionTipEmptyIngredient(t *testing.T) {
	gen := &fakeGenerator{response: "unused"}
	svc := NewTipService(&config.Config{}, gen, nil)

	assert.Equal(t, "", svc.SubstitutionTip(context.Background(), "   "))
	assert.Zero(t, gen.calls)
}

func TestSubstitutionTipFailureNeverEscapes(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rate limited")}
	svc := NewTipService(&config.Config{}, gen, nil)

	tip := svc.SubstitutionTip(context.Background(), "egg")

	assert.True(t, strings.HasPrefix(tip, ErrorMarker))
	assert.Contains(t, tip, "tip unavailable")
	assert.Contains(t, tip, "rate limited")
}

func TestSubstitutionTipEmptyResponse(t *testing.T) {
	gen := &fakeGenerator{response: "   "}
	svc := NewTipService(&config.Config{}, gen, nil)

	tip := svc.SubstitutionTip(context.Background(), "egg")

	assert.Equal(t, ErrorMarker+" tip unavailable: empty response", tip)
}

func TestPantryTip(t *testing.T) {
	gen := &fakeGenerator{response: "Cook the rice first."}
	svc := NewTipService(&config.Config{}, gen, nil)

	tip := svc.PantryTip(context.Background(), "rice, tomatoes")

	assert.Equal(t, "Cook the rice first.", tip)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "rice, tomatoes")
}

func TestTipServiceCachesResponses(t *testing.T) {
	cfg := cacheConfig(10, time.Minute)
	cache := NewCacheManager(cfg)
	require.NotNil(t, cache)
	defer cache.Close()

	gen := &fakeGenerator{response: "Use applesauce."}
	svc := NewTipService(cfg, gen, cache)

	first := svc.SubstitutionTip(context.Background(), "egg")
	second := svc.SubstitutionTip(context.Background(), "egg")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls)
}

func TestTipServiceDoesNotCacheFailures(t *testing.T) {
	cfg := cacheConfig(10, time.Minute)
	cache := NewCacheManager(cfg)
	require.NotNil(t, cache)
	defer cache.Close()

	gen := &fakeGenerator{err: errors.New("boom")}
	svc := NewTipService(cfg, gen, cache)

	svc.SubstitutionTip(context.Background(), "egg")
	gen.err = nil
	gen.response = "Use applesauce."

	tip := svc.SubstitutionTip(context.Background(), "egg")

	assert.Equal(t, "Use applesauce.", tip)
	assert.Equal(t, 2, gen.calls)
}
