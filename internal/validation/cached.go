package validation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedValidator wraps another FormatValidator and caches verdicts in
// Redis. A cache failure is never surfaced: the request falls through to
// the inner validator and the stale/missing entry is left alone.
type CachedValidator struct {
	inner       FormatValidator
	redisClient *redis.Client
	ttl         time.Duration
}

// NewCachedValidator creates a caching wrapper around inner.
func NewCachedValidator(inner FormatValidator, redisClient *redis.Client, ttl time.Duration) *CachedValidator {
	return &CachedValidator{
		inner:       inner,
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// cacheKey hashes the email so raw addresses never appear in Redis keys.
func cacheKey(email string) string {
	sum := sha256.Sum256([]byte(email))
	return "validation:email:" + hex.EncodeToString(sum[:])
}

// CheckFormat returns the cached verdict for email if present, otherwise
// asks the inner validator and caches the result.
func (v *CachedValidator) CheckFormat(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	key := cacheKey(email)

	if cached, err := v.redisClient.Get(ctx, key).Result(); err == nil {
		return cached == "1", nil
	}

	valid, err := v.inner.CheckFormat(email)
	if err != nil {
		return false, err
	}

	verdict := "0"
	if valid {
		verdict = "1"
	}
	// Best-effort write; a failed SET only costs a future cache miss.
	v.redisClient.Set(ctx, key, verdict, v.ttl)

	return valid, nil
}
