package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
)

const DefaultCacheTTL = 15 * time.Minute

// tombstone marks a deleted entity so a slow reader cannot re-add it.
var tombstone = []byte("deleted")

type cacheResult int

const (
	cacheMiss cacheResult = iota
	cacheHit
	cacheGone
)

func cacheKey(entity string, id string) string {
	return fmt.Sprintf("%s:%s", entity, id)
}

// readCached fills dst from the cache. Undecodable entries count as misses.
// Cache failures other than a miss are logged and also count as misses.
func readCached(cache ports.CachePort, logger ports.LoggerPort, key string, dst interface{}) cacheResult {
	data, err := cache.Get(key)
	if err != nil {
		if !errors.Is(err, ports.ErrCacheMiss) {
			logger.Warn("Failed to read cache", map[string]interface{}{
				"error": err.Error(),
				"key":   key,
			})
		}
		return cacheMiss
	}
	if bytes.Equal(data, tombstone) {
		return cacheGone
	}
	if json.Unmarshal(data, dst) != nil {
		return cacheMiss
	}
	return cacheHit
}

// populateCached stores a value read from the store. It never overwrites an
// entry, so a row written by a concurrent update or delete wins.
func populateCached(cache ports.CachePort, logger ports.LoggerPort, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to marshal value for cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
		return
	}
	if _, err := cache.Add(key, data, ttl); err != nil {
		logger.Warn("Failed to write cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
	}
}

// storeCached overwrites the entry with the row returned by a write.
func storeCached(cache ports.CachePort, logger ports.LoggerPort, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to marshal value for cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
		return
	}
	setCached(cache, logger, key, data, ttl)
}

func forgetCached(cache ports.CachePort, logger ports.LoggerPort, key string, ttl time.Duration) {
	setCached(cache, logger, key, tombstone, ttl)
}

func setCached(cache ports.CachePort, logger ports.LoggerPort, key string, data []byte, ttl time.Duration) {
	if err := cache.Set(key, data, ttl); err != nil {
		logger.Warn("Failed to write cache", map[string]interface{}{
			"error": err.Error(),
			"key":   key,
		})
	}
}
