package otp

import (
	"context"
	"encoding/json"
	"time"

	"portal/config"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "portal:otp"
	redisTimeout     = 5 * time.Second
	// minTTL keeps a just-expired entry readable so that verification reports
	// it as expired rather than missing.
	minTTL = time.Second
)

type redisStore struct {
	rdb    *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisClient opens a client for the OTP store.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisTimeout,
		ReadTimeout:  redisTimeout,
		WriteTimeout: redisTimeout,
	})
}

// NewRedisStore returns an OTP store shared between portal instances.
func NewRedisStore(rdb *redis.Client, prefix string, now func() time.Time) repository.OTPRepository {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	if now == nil {
		now = time.Now
	}

	return &redisStore{rdb: rdb, prefix: prefix, now: now}
}

func (s *redisStore) key(customerNumber string) string {
	return s.prefix + ":" + customerNumber
}

func (s *redisStore) Save(ctx context.Context, customerNumber string, entry entity.OTPEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return errors.WithStack(err)
	}

	ttl := max(entry.ExpiresAt.Sub(s.now()), minTTL)
	if err := s.rdb.Set(ctx, s.key(customerNumber), payload, ttl).Err(); err != nil {
		return errors.Wrapf(err, "save otp for %s", customerNumber)
	}

	return nil
}

func (s *redisStore) Find(ctx context.Context, customerNumber string) (*entity.OTPEntry, error) {
	raw, err := s.rdb.Get(ctx, s.key(customerNumber)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.Wrapf(err, "find otp for %s", customerNumber)
	}

	var entry entity.OTPEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, errors.Wrap(err, "decode otp entry")
	}

	return &entry, nil
}

func (s *redisStore) Delete(ctx context.Context, customerNumber string) error {
	if err := s.rdb.Del(ctx, s.key(customerNumber)).Err(); err != nil {
		return errors.Wrapf(err, "delete otp for %s", customerNumber)
	}

	return nil
}
