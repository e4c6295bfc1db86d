package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yigit/sectiontrack/internal/app/models/dto"
	"github.com/yigit/sectiontrack/internal/pkg/logger"
)

// Limiter decides whether the caller identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects requests over the limiter's budget with 429. Limiter
// failures let the request through.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = "unknown"
		}

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.FromContext(c.Request.Context()).Warn().Err(err).Msg("Rate limiter unavailable")
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse(dto.ErrorCodeRateLimited, "Rate limit exceeded"))
			return
		}
		c.Next()
	}
}

// TokenBucket is an in-memory per-key limiter, suitable for a single instance.
type TokenBucket struct {
	capacity int
	rate     int
	now      func() time.Time

	// idle is how long an untouched bucket takes to refill completely.
	// Such a bucket is indistinguishable from a missing one and is pruned.
	idle time.Duration

	mu        sync.Mutex
	state     map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	tokens int
	last   time.Time
}

// NewTokenBucket creates a limiter with capacity tokens refilled at perMinute.
func NewTokenBucket(capacity, perMinute int) *TokenBucket {
	if capacity <= 0 {
		capacity = perMinute
	}
	l := &TokenBucket{
		capacity: capacity,
		rate:     perMinute,
		now:      time.Now,
		state:    make(map[string]*bucket),
	}
	if perMinute > 0 {
		l.idle = time.Duration(float64(capacity) / float64(perMinute) * float64(time.Minute))
	}
	return l
}

// Allow takes one token for key
func (l *TokenBucket) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.state[key]
	if !ok {
		l.state[key] = &bucket{tokens: l.capacity - 1, last: now}
		return true, nil
	}

	refill := int(now.Sub(b.last).Minutes() * float64(l.rate))
	if refill > 0 {
		b.tokens += refill
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}
	if b.tokens <= 0 {
		return false, nil
	}
	b.tokens--
	return true, nil
}

// sweep drops buckets that have been idle long enough to be full again. It
// runs at most once per idle period. Without a refill rate nothing is pruned.
func (l *TokenBucket) sweep(now time.Time) {
	if l.idle <= 0 {
		return
	}
	if l.lastSweep.IsZero() {
		l.lastSweep = now
		return
	}
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	for key, b := range l.state {
		if now.Sub(b.last) > l.idle {
			delete(l.state, key)
		}
	}
	l.lastSweep = now
}

// RedisWindow is a fixed-window counter shared by every instance using the
// same redis.
type RedisWindow struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisWindow allows perMinute requests per key per minute
func NewRedisWindow(client *redis.Client, perMinute int) *RedisWindow {
	return &RedisWindow{
		client: client,
		limit:  int64(perMinute),
		window: time.Minute,
		now:    time.Now,
	}
}

func (l *RedisWindow) windowKey(key string) string {
	return fmt.Sprintf("ratelimit:%s:%d", key, l.now().Unix()/int64(l.window.Seconds()))
}

// Allow increments the counter for the current window
func (l *RedisWindow) Allow(ctx context.Context, key string) (bool, error) {
	k := l.windowKey(key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}
	return incr.Val() <= l.limit, nil
}
