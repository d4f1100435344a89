package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/guardwear/inventory/internal/core/domain"
)

const lowStockChannel = "inventory:low-stock"

// RedisAlertPublisher broadcasts low-stock alert events on a Redis
// channel for external dashboards or notifiers to consume.
type RedisAlertPublisher struct {
	client *redis.Client
}

func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{client: client}
}

func (p *RedisAlertPublisher) PublishLowStock(ctx context.Context, alert domain.LowStockAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	return p.client.Publish(ctx, lowStockChannel, payload).Err()
}
