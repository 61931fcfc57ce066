package frappe

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps catalog pages in redis for a short TTL so repeated imports
// of the same search don't hammer the upstream. Purely best-effort: any
// redis failure falls through to a live fetch.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

func pageKey(key string) string { return "frappe:page:" + key }

func (c *Cache) GetPage(ctx context.Context, key string) ([]BookRecord, bool) {
	b, err := c.rdb.Get(ctx, pageKey(key)).Bytes()
	if err != nil {
		return nil, false
	}
	var recs []BookRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, false
	}
	return recs, true
}

func (c *Cache) SetPage(ctx context.Context, key string, recs []BookRecord) {
	b, err := json.Marshal(recs)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, pageKey(key), b, c.ttl).Err()
}
