package ratelimit

import (
	"context"
	"strconv"
	"strings"
	"time"

	"barbershop-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// FixedWindow counts requests per key in windows that start at the first hit.
type FixedWindow struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	prefix string
}

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

func NewFixedWindow(rdb redis.Scripter, limit int, window time.Duration, prefix string) *FixedWindow {
	if limit <= 0 {
		limit = 20
	}
	if window <= 0 {
		window = time.Minute
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "rl"
	}
	return &FixedWindow{rdb: rdb, limit: limit, window: window, prefix: prefix}
}

func (l *FixedWindow) Limit() int { return l.limit }

// Allow increments the counter for key and reports whether it is still within the limit.
func (l *FixedWindow) Allow(ctx context.Context, key string) (bool, error) {
	res, err := fixedWindowScript.Run(ctx, l.rdb, []string{l.prefix + ":" + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return false, errs.Wrap(err, "rate limit script")
	}
	count, err := toCount(res)
	if err != nil {
		return false, err
	}
	return count <= int64(l.limit), nil
}

func toCount(res any) (int64, error) {
	switch v := res.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, errs.Wrap(err, "rate limit counter")
		}
		return n, nil
	default:
		return 0, errs.New("unexpected rate limit script result")
	}
}
