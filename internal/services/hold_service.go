package services

import (
	"context"
	"fmt"
	"time"

	intconfig "github.com/babludoman333/rail-easy-seats/internal/config"

	"github.com/redis/go-redis/v9"
)

// HoldService parks selected seats in Redis between selection and payment so
// the UI can warn a second booker early. Holds are advisory only; the SQL
// compare-and-swap at confirmation time is what actually prevents double
// booking. With no Redis configured every hold trivially succeeds.
type HoldService struct {
	Redis *redis.Client
	TTL   time.Duration
}

const defaultHoldTTL = 5 * time.Minute

func (s HoldService) client() *redis.Client {
	if s.Redis != nil {
		return s.Redis
	}
	return intconfig.Redis
}

func (s HoldService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return defaultHoldTTL
}

func holdKey(trainID int64, coach, seatNumber string) string {
	return fmt.Sprintf("hold:%d:%s:%s", trainID, coach, seatNumber)
}

// TryHold acquires all seats or none. On a partial grab the acquired keys are
// released before returning false.
func (s HoldService) TryHold(ctx context.Context, trainID int64, coach string, seatNumbers []string, token string) (bool, error) {
	rdb := s.client()
	if rdb == nil || len(seatNumbers) == 0 {
		return true, nil
	}

	pipe := rdb.TxPipeline()
	for _, seat := range seatNumbers {
		pipe.SetNX(ctx, holdKey(trainID, coach, seat), token, s.ttl())
	}
	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}

	for _, cmd := range cmds {
		if !cmd.(*redis.BoolCmd).Val() {
			_ = s.Release(ctx, trainID, coach, seatNumbers, token)
			return false, nil
		}
	}
	return true, nil
}

// Release deletes only the holds this token owns; a competing booker's holds
// stay untouched.
func (s HoldService) Release(ctx context.Context, trainID int64, coach string, seatNumbers []string, token string) error {
	rdb := s.client()
	if rdb == nil || len(seatNumbers) == 0 {
		return nil
	}

	for _, seat := range seatNumbers {
		key := holdKey(trainID, coach, seat)
		val, err := rdb.Get(ctx, key).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return err
		}
		if val == token {
			if err := rdb.Del(ctx, key).Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

// HeldByOther reports whether any requested seat is held under a different
// token, so confirmation can fail fast before touching the database.
func (s HoldService) HeldByOther(ctx context.Context, trainID int64, coach string, seatNumbers []string, token string) (bool, error) {
	rdb := s.client()
	if rdb == nil {
		return false, nil
	}

	for _, seat := range seatNumbers {
		val, err := rdb.Get(ctx, holdKey(trainID, coach, seat)).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return false, err
		}
		if val != token {
			return true, nil
		}
	}
	return false, nil
}
