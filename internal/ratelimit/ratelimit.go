package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// takeScript refills the bucket for the elapsed time and consumes one token
// when available. Returns {allowed, tokens left}.
var takeScript = redis.NewScript(`
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local refill_rate = tonumber(ARGV[2])
	local window = tonumber(ARGV[3])
	local now = tonumber(ARGV[4])

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local tokens = tonumber(bucket[1]) or capacity
	local last_refill = tonumber(bucket[2]) or now

	local tokens_to_add = math.floor(((now - last_refill) / window) * refill_rate)
	if tokens_to_add > 0 then
		tokens = math.min(capacity, tokens + tokens_to_add)
		last_refill = now
	end

	local allowed = 0
	if tokens > 0 then
		tokens = tokens - 1
		allowed = 1
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_refill', last_refill)
	redis.call('EXPIRE', key, window * 2)
	return {allowed, tokens}
`)

// peekScript reports the tokens available without consuming one.
var peekScript = redis.NewScript(`
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local refill_rate = tonumber(ARGV[2])
	local window = tonumber(ARGV[3])
	local now = tonumber(ARGV[4])

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local tokens = tonumber(bucket[1]) or capacity
	local last_refill = tonumber(bucket[2]) or now

	local tokens_to_add = math.floor(((now - last_refill) / window) * refill_rate)
	if tokens_to_add > 0 then
		tokens = math.min(capacity, tokens + tokens_to_add)
	end
	return tokens
`)

// TokenBucket is a per-user, per-action token bucket stored in redis.
type TokenBucket struct {
	redis    *redis.Client
	capacity int64
	refill   int64 // tokens added per window
	window   time.Duration
	now      func() time.Time
}

func NewTokenBucket(redisClient *redis.Client, capacity, refillPerMinute int64) *TokenBucket {
	return &TokenBucket{
		redis:    redisClient,
		capacity: capacity,
		refill:   refillPerMinute,
		window:   time.Minute,
		now:      time.Now,
	}
}

func (tb *TokenBucket) Capacity() int64 { return tb.capacity }

func (tb *TokenBucket) Window() time.Duration { return tb.window }

func key(userID uint, action string) string {
	return fmt.Sprintf("creator:rate_limit:%d:%s", userID, action)
}

func (tb *TokenBucket) args() []interface{} {
	return []interface{}{tb.capacity, tb.refill, int64(tb.window.Seconds()), tb.now().Unix()}
}

// Take consumes a token for the user's action. It reports whether the call
// is allowed and how many tokens remain afterwards.
func (tb *TokenBucket) Take(ctx context.Context, userID uint, action string) (bool, int64, error) {
	res, err := takeScript.Run(ctx, tb.redis, []string{key(userID, action)}, tb.args()...).Slice()
	if err != nil {
		return false, 0, fmt.Errorf("rate limit check failed: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("unexpected rate limit reply: %v", res)
	}
	allowed, ok1 := res[0].(int64)
	remaining, ok2 := res[1].(int64)
	if !ok1 || !ok2 {
		return false, 0, fmt.Errorf("unexpected rate limit reply: %v", res)
	}
	return allowed == 1, remaining, nil
}

// Allow is Take without the remaining count.
func (tb *TokenBucket) Allow(ctx context.Context, userID uint, action string) (bool, error) {
	allowed, _, err := tb.Take(ctx, userID, action)
	return allowed, err
}

func (tb *TokenBucket) GetRemaining(ctx context.Context, userID uint, action string) (int64, error) {
	remaining, err := peekScript.Run(ctx, tb.redis, []string{key(userID, action)}, tb.args()...).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to get remaining tokens: %w", err)
	}
	return remaining, nil
}

// Reset clears the bucket for a user action.
func (tb *TokenBucket) Reset(ctx context.Context, userID uint, action string) error {
	return tb.redis.Del(ctx, key(userID, action)).Err()
}
