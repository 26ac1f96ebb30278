package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/jhoicas/hareware-api/pkg/config"
)

// NewClient abre la conexión a Redis y verifica con PING, reintentando unas pocas veces.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	const attempts = 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		client := goredis.NewClient(&goredis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			PoolSize:     10,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			lastErr = err
			_ = client.Close()
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}
		return client, nil
	}
	return nil, fmt.Errorf("redis %s: %w", cfg.Addr, lastErr)
}
