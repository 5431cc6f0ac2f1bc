package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Submission throttle for the public forms: at most one submission per
// minute and ten per hour for a given key (client IP + route).

func CanSubmit(rdb *redis.Client, key string) (bool, string) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("submit_minute_%s", key)
	hourKey := fmt.Sprintf("submit_hour_%s", key)
	if rdb.Exists(ctx, minuteKey).Val() > 0 {
		return false, "please wait a minute before submitting again"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 10 {
		return false, "too many submissions, try again later"
	}
	return true, ""
}

func MarkSubmitted(rdb *redis.Client, key string) {
	ctx := context.Background()
	minuteKey := fmt.Sprintf("submit_minute_%s", key)
	hourKey := fmt.Sprintf("submit_hour_%s", key)
	rdb.Set(ctx, minuteKey, 1, 60*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
