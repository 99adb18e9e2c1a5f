// Package cache is a small in-memory TTL cache used to throttle auxiliary
// backend calls (health probes, news-refresh triggers). Verification
// results are never cached: every claim submission reaches the backend.
package cache

import "time"

// Cache is a byte-value TTL cache
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}
