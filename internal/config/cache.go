package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a loaded preset is reused before its file is
// parsed again.
const DefaultCacheTTL = time.Minute

type cacheEntry struct {
	config    *Config
	expiresAt time.Time
}

// Cache keeps loaded configs in memory. Entries are keyed by path, size and
// modification time, so an edited file is reloaded on its next use.
type Cache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewCache returns a cache whose entries live for ttl. A ttl <= 0 means
// DefaultCacheTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// CacheTTLFromEnv reads SCENARIO_CACHE_TTL (a Go duration such as "30s").
func CacheTTLFromEnv() time.Duration {
	if s := os.Getenv("SCENARIO_CACHE_TTL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			return d
		}
	}
	return DefaultCacheTTL
}

// Load is config.Load through the cache. A nil cache always loads.
func (c *Cache) Load(path string) (*Config, error) {
	if c == nil {
		return Load(path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := cacheKey(path, info)

	if cfg, ok := c.get(key); ok {
		return cfg, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.set(key, cfg)
	return cfg, nil
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*cacheEntry)
}

func (c *Cache) get(key string) (*Config, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.config, true
}

func (c *Cache) set(key string, cfg *Config) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	// Expired entries are dropped on write; there is no background sweeper.
	for k, e := range c.store {
		if now.After(e.expiresAt) {
			delete(c.store, k)
		}
	}
	c.store[key] = &cacheEntry{config: cfg, expiresAt: now.Add(c.ttl)}
}

func cacheKey(path string, info os.FileInfo) string {
	keyStr := fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano())
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
