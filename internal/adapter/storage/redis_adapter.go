package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rl1809/shop-sim/internal/core/domain"
	"github.com/rl1809/shop-sim/internal/logger"
)

const recordKeyPrefix = "audit:record:"

// RedisAuditLog keeps the audit trail in a Redis list, one RPUSH per checkout.
// A hash per record carries the structured fields alongside the text line.
type RedisAuditLog struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

func NewRedisAuditLog(client *redis.Client, key string, timeout time.Duration) *RedisAuditLog {
	return &RedisAuditLog{client: client, key: key, timeout: timeout}
}

func (r *RedisAuditLog) RecordCheckout(ctx context.Context, order domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	recordID := newRecordID()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, r.key, order.AuditLine())
		pipe.HSet(ctx, recordKeyPrefix+recordID, map[string]any{
			"session_id":     logger.SessionIDFromContext(ctx),
			"order_id":       order.ID,
			"payment_method": order.PaymentMethod,
			"total":          order.TotalAmount.String(),
			"created_at":     order.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis append audit: %w", err)
	}

	return nil
}

// Lines returns every audit line in append order.
func (r *RedisAuditLog) Lines(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	lines, err := r.client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis read audit: %w", err)
	}
	return lines, nil
}
