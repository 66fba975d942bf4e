package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	_ KeyValue     = (*CachedKV)(nil)
	_ SourceReader = (*CachedKV)(nil)
)

const DefaultCacheTTL = 30 * time.Minute

var errStaleFill = errors.New("cache: key written during fill")

// CachedKV puts a redis read-through cache in front of another backend.
// Every write goes to the backend first, then bumps the key's version and
// drops the cached copy. A fill only lands when the version it started from
// is still current.
type CachedKV struct {
	next  KeyValue
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedKV(next KeyValue, cache *redis.Client, ttl time.Duration) *CachedKV {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedKV{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (r *CachedKV) cacheKey(key string) string {
	return "kv:" + key
}

func (r *CachedKV) versionKey(key string) string {
	return "kv:ver:" + key
}

// version returns the current write version of key, "" when never written.
func (r *CachedKV) version(ctx context.Context, key string) (string, error) {
	v, err := r.cache.Get(ctx, r.versionKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

// fill caches val unless key was written after ver was read.
func (r *CachedKV) fill(ctx context.Context, key, ver, val string) error {
	vk := r.versionKey(key)

	return r.cache.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, vk).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != ver {
			return errStaleFill
		}

		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, r.cacheKey(key), val, r.ttl)
			return nil
		})
		return err
	}, vk)
}

func (r *CachedKV) invalidate(ctx context.Context, key string) {
	_, err := r.cache.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, r.versionKey(key))
		p.Del(ctx, r.cacheKey(key))
		return nil
	})
	if err != nil {
		log.Printf("[CACHE] Failed to invalidate %s: %v", key, err)
	}
}

func (r *CachedKV) Get(ctx context.Context, key string) (string, bool, error) {
	ck := r.cacheKey(key)

	val, err := r.cache.Get(ctx, ck).Result()
	if err == nil {
		return val, true, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	ver, verErr := r.version(ctx, key)

	val, found, err := r.next.Get(ctx, key)
	if err != nil || !found {
		return val, found, err
	}

	if verErr != nil {
		log.Printf("[CACHE] Redis version read error, not caching %s: %v", key, verErr)
		return val, true, nil
	}

	switch fillErr := r.fill(ctx, key, ver, val); {
	case fillErr == nil:
	case errors.Is(fillErr, errStaleFill), errors.Is(fillErr, redis.TxFailedErr):
		log.Printf("[CACHE] %s changed while reading, skipping fill", key)
	default:
		log.Printf("[CACHE] Redis set error: %v", fillErr)
	}

	return val, true, nil
}

// GetSource reads straight from the backend.
func (r *CachedKV) GetSource(ctx context.Context, key string) (string, bool, error) {
	return r.next.Get(ctx, key)
}

func (r *CachedKV) Set(ctx context.Context, key, value string) error {
	if err := r.next.Set(ctx, key, value); err != nil {
		return err
	}
	r.invalidate(ctx, key)
	return nil
}
