package infra

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
)

// Cache size limits to prevent unbounded memory growth when a long-lived
// server keeps fetching distinct API URLs
const (
	DefaultMaxCacheEntries = 1000            // Maximum number of cached responses
	DefaultCacheCleanup    = 5 * time.Minute // How often to sweep expired entries
)

// responseEntry holds one cached API response body with expiration and
// LRU tracking
type responseEntry struct {
	body       string
	expiresAt  time.Time
	accessedAt time.Time
	mu         sync.Mutex
}

// ResponseCache caches raw API response bodies keyed by the full request URL.
// Entries expire after their TTL; when the cache grows past its limit the
// least recently read entries are evicted.
type ResponseCache struct {
	entries    sync.Map // full request URL -> *responseEntry
	count      int64    // atomic entry counter
	maxEntries int64
	mu         sync.Mutex // serializes eviction passes

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewResponseCache creates a response cache holding at most maxEntries bodies
func NewResponseCache(maxEntries int) *ResponseCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxCacheEntries
	}
	c := &ResponseCache{
		maxEntries: int64(maxEntries),
		stopCh:     make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

// Get returns the cached body for url if present and not expired
func (c *ResponseCache) Get(url string) (string, bool) {
	v, ok := c.entries.Load(url)
	if !ok {
		return "", false
	}
	entry := v.(*responseEntry)
	now := time.Now()
	if now.After(entry.expiresAt) {
		c.entries.Delete(url)
		atomic.AddInt64(&c.count, -1)
		return "", false
	}
	entry.mu.Lock()
	entry.accessedAt = now
	entry.mu.Unlock()
	return entry.body, true
}

// Set stores a response body for url with the given TTL
func (c *ResponseCache) Set(url, body string, ttl time.Duration) {
	now := time.Now()

	_, existed := c.entries.Load(url)
	c.entries.Store(url, &responseEntry{
		body:       body,
		expiresAt:  now.Add(ttl),
		accessedAt: now,
	})

	if !existed {
		newCount := atomic.AddInt64(&c.count, 1)
		// Evict asynchronously so the fetching goroutine is not blocked
		if newCount > c.maxEntries {
			go c.evictOldest(int(newCount - c.maxEntries + c.maxEntries/10))
		}
	}
}

// Delete removes a single cached URL
func (c *ResponseCache) Delete(url string) {
	if _, existed := c.entries.LoadAndDelete(url); existed {
		atomic.AddInt64(&c.count, -1)
	}
}

// DeletePrefix removes all entries whose URL starts with prefix. Useful for
// invalidating every request against one endpoint after a language switch.
func (c *ResponseCache) DeletePrefix(prefix string) {
	var deleted int64
	c.entries.Range(func(key, _ interface{}) bool {
		if k := key.(string); len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			c.entries.Delete(key)
			deleted++
		}
		return true
	})
	if deleted > 0 {
		atomic.AddInt64(&c.count, -deleted)
	}
}

// Size returns the current number of cached responses
func (c *ResponseCache) Size() int64 {
	return atomic.LoadInt64(&c.count)
}

// Close stops the background cleanup goroutine
func (c *ResponseCache) Close() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

func (c *ResponseCache) cleanupLoop() {
	ticker := time.NewTicker(DefaultCacheCleanup)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

// cleanup drops expired bodies, then evicts by recency if still over limit
func (c *ResponseCache) cleanup() {
	now := time.Now()
	var expired int64

	c.entries.Range(func(key, value interface{}) bool {
		if now.After(value.(*responseEntry).expiresAt) {
			c.entries.Delete(key)
			expired++
		}
		return true
	})
	if expired > 0 {
		atomic.AddInt64(&c.count, -expired)
	}

	current := atomic.LoadInt64(&c.count)
	if current > c.maxEntries {
		c.evictOldest(int(current - c.maxEntries + c.maxEntries/10))
	}
}

// evictOldest removes the n least recently read entries
func (c *ResponseCache) evictOldest(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	type candidate struct {
		url        string
		accessedAt time.Time
	}
	var candidates []candidate

	c.entries.Range(func(key, value interface{}) bool {
		entry := value.(*responseEntry)
		entry.mu.Lock()
		at := entry.accessedAt
		entry.mu.Unlock()
		candidates = append(candidates, candidate{url: key.(string), accessedAt: at})
		return true
	})

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].accessedAt.Before(candidates[j].accessedAt)
	})

	evicted := 0
	for _, cand := range candidates {
		if evicted >= n {
			break
		}
		c.entries.Delete(cand.url)
		evicted++
	}
	if evicted > 0 {
		atomic.AddInt64(&c.count, -int64(evicted))
		metrics.RecordCacheEviction(evicted)
	}
}
