package ports

import (
	"errors"
	"time"
)

// ErrCacheMiss is returned by CachePort.Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

type CachePort interface {
	Get(key string) ([]byte, error)
	// Set overwrites the key.
	Set(key string, value []byte, ttl time.Duration) error
	// Add stores the value only if the key is absent and reports whether it
	// was stored.
	Add(key string, value []byte, ttl time.Duration) (bool, error)
}
