package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemory() (*Memory, *time.Time) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }
	return m, &now
}

func TestMemory_IncrementAndExpire(t *testing.T) {
	m, now := newTestMemory()
	ctx := context.Background()

	n, err := m.Increment(ctx, "failed_login:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, m.Expire(ctx, "failed_login:1.2.3.4", time.Minute))
	n, err = m.Increment(ctx, "failed_login:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	ttl, err := m.TTL(ctx, "failed_login:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl, "increment keeps the expiry")

	*now = now.Add(61 * time.Second)
	ok, err := m.Exists(ctx, "failed_login:1.2.3.4")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err = m.Increment(ctx, "failed_login:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "counter restarts after expiry")
}

func TestMemory_SetDeleteTTL(t *testing.T) {
	m, _ := newTestMemory()
	ctx := context.Background()

	ttl, err := m.TTL(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-2), ttl)

	require.NoError(t, m.Set(ctx, "forever", "1", 0))
	ttl, err = m.TTL(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)

	require.NoError(t, m.Set(ctx, "locked", "1", 15*time.Minute))
	ok, err := m.Exists(ctx, "locked")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.Delete(ctx, "locked", "forever"))
	ok, _ = m.Exists(ctx, "locked")
	assert.False(t, ok)
	ok, _ = m.Exists(ctx, "forever")
	assert.False(t, ok)
}

func TestMemory_ExpireMissingKeyIsNoop(t *testing.T) {
	m, _ := newTestMemory()
	ctx := context.Background()

	require.NoError(t, m.Expire(ctx, "nothing", time.Minute))
	ok, err := m.Exists(ctx, "nothing")
	require.NoError(t, err)
	assert.False(t, ok)
}
