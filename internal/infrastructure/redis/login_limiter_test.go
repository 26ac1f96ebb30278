package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	counts      map[string]int64
	expires     map[string]time.Duration
	err         error
	expireFails int
	expireCalls int
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *goredis.IntCmd {
	cmd := goredis.NewIntCmd(ctx, "incr", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeCounter) Expire(ctx context.Context, key string, d time.Duration) *goredis.BoolCmd {
	cmd := goredis.NewBoolCmd(ctx, "expire", key, d)
	f.expireCalls++
	if f.expireFails > 0 {
		f.expireFails--
		cmd.SetErr(errors.New("i/o timeout"))
		return cmd
	}
	f.expires[key] = d
	cmd.SetVal(true)
	return cmd
}

func (f *fakeCounter) TTL(ctx context.Context, key string) *goredis.DurationCmd {
	cmd := goredis.NewDurationCmd(ctx, time.Second, "ttl", key)
	switch d, ok := f.expires[key]; {
	case ok:
		cmd.SetVal(d)
	case f.counts[key] > 0:
		cmd.SetVal(-1)
	default:
		cmd.SetVal(-2)
	}
	return cmd
}

func TestLoginLimiter_FixedWindow(t *testing.T) {
	c := newFakeCounter()
	l := NewLoginLimiter(c, 3, 30*time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "admin|10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "intento %d", i+1)
	}
	ok, err := l.Allow(ctx, "admin|10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 30*time.Second, c.expires["login_rate:admin|10.0.0.1"])

	ok, err = l.Allow(ctx, "other|10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginLimiter_Disabled(t *testing.T) {
	c := newFakeCounter()
	l := NewLoginLimiter(c, 0, time.Minute)

	ok, err := l.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, c.counts)
}

func TestLoginLimiter_RedisErrorFailsOpen(t *testing.T) {
	c := newFakeCounter()
	c.err = errors.New("connection refused")
	l := NewLoginLimiter(c, 1, time.Minute)

	ok, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.True(t, ok)
}

func TestLoginLimiter_RestoresTTLAfterFailedExpire(t *testing.T) {
	c := newFakeCounter()
	c.expireFails = 1
	l := NewLoginLimiter(c, 3, time.Minute)
	ctx := context.Background()
	key := "login_rate:admin|10.0.0.1"

	ok, err := l.Allow(ctx, "admin|10.0.0.1")
	assert.Error(t, err)
	assert.True(t, ok)
	_, hasTTL := c.expires[key]
	assert.False(t, hasTTL)

	ok, err = l.Allow(ctx, "admin|10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, c.expires[key])

	for i := 0; i < 3; i++ {
		_, err = l.Allow(ctx, "admin|10.0.0.1")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.expireCalls, "con TTL vigente no se vuelve a llamar EXPIRE")
}
