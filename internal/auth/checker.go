package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type Session struct {
	Token     string
	ProfileID string
	CreatedAt time.Time
}

// SessionChecker resolves bearer tokens into live sessions.
type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *SessionChecker) Session(ctx context.Context, token string) (*Session, error) {
	fields, err := c.redisClient.HGetAll(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	// HGETALL of a missing key is an empty map, not redis.Nil
	if len(fields) == 0 {
		return nil, ErrSessionNotFound
	}

	profileID := fields[sessionFieldProfileID]
	if profileID == "" {
		return nil, ErrSessionNotFound
	}

	createdAtUnix, err := strconv.ParseInt(fields[sessionFieldCreatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session created at: %w", err)
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if time.Since(createdAt) > c.ttl {
		return nil, ErrSessionExpired
	}

	return &Session{
		Token:     token,
		ProfileID: profileID,
		CreatedAt: createdAt,
	}, nil
}
