package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"

	keyIdempotencyCache = "idempotency_cache_key"
	keyIdempotencyLock  = "idempotency_lock_key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// Idempotency replays a cached success for a repeated Idempotency-Key and
// rejects a duplicate while the first request is still running.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString(KeyUserID), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replay", "true")
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Named("middleware.idempotency").Warn("acquire idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			abortWith(c, apperror.ErrRequestInFlight)
			return
		}

		c.Set(keyIdempotencyCache, cacheKey)
		c.Set(keyIdempotencyLock, lockKey)

		c.Next()

		// a failed request may be retried with the same key
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			zap.L().Named("middleware.idempotency").Warn("release idempotency lock failed", zap.Error(err))
		}
	}
}

// StoreIdempotentResult caches a handler's success payload under the
// request's idempotency key, if the request carried one.
func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, data any) {
	cacheKey := c.GetString(keyIdempotencyCache)
	if rdb == nil || cacheKey == "" {
		return
	}
	body, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := rdb.Set(c.Request.Context(), cacheKey, body, idempotencyResultTTL).Err(); err != nil {
		zap.L().Named("middleware.idempotency").Warn("cache idempotent result failed", zap.Error(err))
	}
}
