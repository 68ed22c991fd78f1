package service

import (
	"context"
	"errors"
	"time"

	"carebook/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrTooManyLoginAttempts is returned when a phone number has exceeded
// the failed-login budget for the current window.
var ErrTooManyLoginAttempts = errors.New("too many failed login attempts, try again later")

const (
	loginAttemptKeyPrefix = "login:attempts:"

	// Timeout for individual Redis operations
	redisOpTimeout = 5 * time.Second
)

// LoginThrottle tracks consecutive failed logins per phone number.
// Counters live in Redis with a TTL, so a quiet phone resets itself.
type LoginThrottle interface {
	Check(ctx context.Context, phone string) error
	RecordFailure(ctx context.Context, phone string) error
	Reset(ctx context.Context, phone string) error
}

type redisLoginThrottle struct {
	client *redis.Client
	log    *logrus.Logger
	cfg    config.ThrottleConfig
}

func NewLoginThrottle(client *redis.Client, log *logrus.Logger, cfg config.ThrottleConfig) LoginThrottle {
	return &redisLoginThrottle{
		client: client,
		log:    log,
		cfg:    cfg,
	}
}

func (t *redisLoginThrottle) Check(ctx context.Context, phone string) error {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	attempts, err := t.client.Get(opCtx, loginAttemptKeyPrefix+phone).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		t.log.Warnf("Failed to read login attempt counter for %s: %+v", phone, err)
		return err
	}

	if attempts >= t.cfg.MaxAttempts {
		return ErrTooManyLoginAttempts
	}
	return nil
}

func (t *redisLoginThrottle) RecordFailure(ctx context.Context, phone string) error {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	key := loginAttemptKeyPrefix + phone
	attempts, err := t.client.Incr(opCtx, key).Result()
	if err != nil {
		t.log.Warnf("Failed to increment login attempt counter for %s: %+v", phone, err)
		return err
	}

	// The window starts at the first failure and is not extended by
	// later ones.
	if attempts == 1 {
		if err := t.client.Expire(opCtx, key, t.cfg.Window).Err(); err != nil {
			t.log.Warnf("Failed to set TTL on login attempt counter for %s: %+v", phone, err)
			return err
		}
	}
	return nil
}

func (t *redisLoginThrottle) Reset(ctx context.Context, phone string) error {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	return t.client.Del(opCtx, loginAttemptKeyPrefix+phone).Err()
}
