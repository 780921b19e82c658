package otp

import (
	"os"
	"testing"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, store repository.OTPRepository, number string) {
	t.Helper()
	ctx := t.Context()

	_, err := store.Find(ctx, number)
	require.ErrorIs(t, err, repository.ErrOTPNotFound)

	expires := time.Now().Add(time.Minute).Truncate(time.Second)
	require.NoError(t, store.Save(ctx, number, entity.OTPEntry{Code: "123456", ExpiresAt: expires}))

	got, err := store.Find(ctx, number)
	require.NoError(t, err)
	assert.Equal(t, "123456", got.Code)
	assert.True(t, expires.Equal(got.ExpiresAt))

	require.NoError(t, store.Save(ctx, number, entity.OTPEntry{Code: "654321", ExpiresAt: expires}))
	got, err = store.Find(ctx, number)
	require.NoError(t, err)
	assert.Equal(t, "654321", got.Code, "a new code replaces the previous one")

	require.NoError(t, store.Delete(ctx, number))
	_, err = store.Find(ctx, number)
	assert.ErrorIs(t, err, repository.ErrOTPNotFound)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	exerciseStore(t, NewMemoryStore(), "6281234567890")
}

func TestMemoryStore_KeepsExpiredEntries(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	past := time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(t.Context(), "628", entity.OTPEntry{Code: "1", ExpiresAt: past}))

	got, err := store.Find(t.Context(), "628")
	require.NoError(t, err)
	assert.True(t, got.Expired(time.Now()))
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	rdb := NewRedisClient(config.RedisConfig{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseStore(t, NewRedisStore(rdb, "portal-test:otp", nil), "6281234567890")
}

func TestRedisStore_Key(t *testing.T) {
	t.Parallel()

	store := NewRedisStore(nil, "", nil).(*redisStore)
	assert.Equal(t, "portal:otp:6281234567890", store.key("6281234567890"))
}
