package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mahabubulhasibshawon/storefront/internal/domain"
)

const refreshTokenKey = "storefront:refresh:"

// RefreshStore holds opaque single-use refresh tokens. Only a hash of each
// token is stored. Rotate consumes the presented token atomically, so a
// token can be exchanged at most once.
type RefreshStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRefreshStore(client *redis.Client, ttl time.Duration) *RefreshStore {
	return &RefreshStore{client: client, ttl: ttl}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return refreshTokenKey + hex.EncodeToString(sum[:])
}

func (s *RefreshStore) Issue(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString() + "." + uuid.NewString()
	if err := s.client.Set(ctx, hashToken(token), strconv.FormatInt(userID, 10), s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RefreshStore) Rotate(ctx context.Context, token string) (int64, string, error) {
	if token == "" {
		return 0, "", domain.ErrRefreshInvalid
	}
	v, err := s.client.GetDel(ctx, hashToken(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, "", domain.ErrRefreshInvalid
	}
	if err != nil {
		return 0, "", err
	}
	userID, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, "", domain.ErrRefreshInvalid
	}
	next, err := s.Issue(ctx, userID)
	if err != nil {
		return 0, "", err
	}
	return userID, next, nil
}

func (s *RefreshStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, hashToken(token)).Err()
}
