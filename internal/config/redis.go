package config

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Redis   *redis.Client
	redisMu sync.Mutex
)

// ConnectRedis initializes the shared Redis client used for seat holds.
// REDIS_ADDR unset means the feature is off; callers must handle a nil client.
func ConnectRedis(env Env) *redis.Client {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		return Redis
	}
	if env.RedisAddr == "" {
		log.Println("REDIS_ADDR not set; seat holds disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         env.RedisAddr,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("warning: redis unreachable (%v); seat holds disabled", err)
		_ = client.Close()
		return nil
	}

	Redis = client
	log.Println("connected to Redis")
	return Redis
}

func CloseRedis() {
	redisMu.Lock()
	defer redisMu.Unlock()

	if Redis != nil {
		_ = Redis.Close()
		Redis = nil
	}
}
