package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// TipCache stores generated tips keyed by prompt. Recipe-search responses are
// never cached; only advisory text goes through here.
type TipCache interface {
	Get(ctx context.Context, prompt string) (string, error)
	Set(ctx context.Context, prompt, value string) error
	Stats() map[string]interface{}
	Close() error
}

// CacheManager is the in-memory TipCache backend with TTL expiry and LRU
// eviction.
type CacheManager struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
	done   chan struct{}
}

type cacheEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewCacheManager creates the in-memory tip cache. Returns nil when the cache
// is disabled.
func NewCacheManager(cfg *config.Config) *CacheManager {
	if !cfg.Cache.Enabled {
		common.LogInfo("tip cache disabled")
		return nil
	}

	m := &CacheManager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		done:   make(chan struct{}),
	}

	go m.startCleanup()

	common.LogInfo("tip cache initialized",
		zap.Int("max_size", cfg.Cache.MaxSize),
		zap.Duration("ttl", cfg.Cache.TTL),
		zap.Duration("cleanup_interval", cfg.Cache.CleanupInterval),
	)

	return m
}

// Get returns the cached tip for prompt, or ErrCacheMiss.
func (m *CacheManager) Get(ctx context.Context, prompt string) (string, error) {
	key := hashPrompt(prompt)

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return "", common.ErrCacheMiss
	}

	if time.Now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		return "", common.ErrCacheMiss
	}

	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++
	common.LogCacheHit("memory", key)

	return entry.value, nil
}

// Set stores a tip for prompt, evicting expired and least-used entries when
// the cache is full.
func (m *CacheManager) Set(ctx context.Context, prompt, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.config.Cache.MaxSize {
		evicted := m.cleanupLocked()
		common.LogDebug("tip cache cleanup", zap.Int("evicted", evicted))

		if len(m.store) >= m.config.Cache.MaxSize {
			m.evictLRULocked()
		}

		if len(m.store) >= m.config.Cache.MaxSize {
			m.stats.errors++
			common.LogWarn("tip cache full", zap.Int("size", len(m.store)))
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	m.store[hashPrompt(prompt)] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(m.config.Cache.TTL),
		createdAt:  now,
		lastAccess: now,
	}

	return nil
}

func hashPrompt(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(hash[:])
}

func (m *CacheManager) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.mu.Lock()
			m.cleanupLocked()
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

func (m *CacheManager) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}
	return count
}

func (m *CacheManager) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
	}
}

// Stats returns hit/miss/eviction counters for the health endpoint.
func (m *CacheManager) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lookups := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if lookups > 0 {
		hitRatio = float64(m.stats.hits) / float64(lookups)
	}

	return map[string]interface{}{
		"backend":   "memory",
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"errors":    m.stats.errors,
		"hit_ratio": hitRatio,
	}
}

// Close stops the cleanup goroutine and empties the store.
func (m *CacheManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
	default:
		close(m.done)
	}

	m.store = make(map[string]cacheEntry)
	common.LogInfo("tip cache closed",
		zap.Int64("hits", m.stats.hits),
		zap.Int64("misses", m.stats.misses),
		zap.Int64("evictions", m.stats.evictions),
	)
	return nil
}
