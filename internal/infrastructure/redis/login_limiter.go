package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/jhoicas/hareware-api/internal/application/ports"
)

var _ ports.LoginRateLimiter = (*LoginLimiter)(nil)

// counter es la parte de *goredis.Client que usa el limitador.
type counter interface {
	Incr(ctx context.Context, key string) *goredis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
	TTL(ctx context.Context, key string) *goredis.DurationCmd
}

// LoginLimiter ventana fija: INCR por clave y EXPIRE en el primer intento de la ventana.
// Si una clave quedó sin TTL (EXPIRE fallido) se le vuelve a asignar en el siguiente intento.
type LoginLimiter struct {
	client counter
	limit  int
	window time.Duration
}

// NewLoginLimiter construye el limitador. limit <= 0 lo desactiva.
func NewLoginLimiter(client counter, limit int, window time.Duration) *LoginLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow registra un intento. Ante un error de Redis devuelve true junto al error
// y el llamador decide si deja pasar.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}
	redisKey := "login_rate:" + key
	n, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return true, fmt.Errorf("redis incr: %w", err)
	}
	expire := n == 1
	if !expire {
		ttl, err := l.client.TTL(ctx, redisKey).Result()
		if err != nil {
			return true, fmt.Errorf("redis ttl: %w", err)
		}
		// -1: la clave existe pero no expira nunca
		expire = ttl == -1
	}
	if expire {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return true, fmt.Errorf("redis expire: %w", err)
		}
	}
	return n <= int64(l.limit), nil
}
