package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const accessTokenKey = "storefront:access_token:"

// TokenStore keeps one session's access credential. No TTL is set: expiry is
// enforced by the server.
type TokenStore struct {
	client  *redis.Client
	session string
}

func NewTokenStore(client *redis.Client, session string) *TokenStore {
	return &TokenStore{client: client, session: session}
}

func (s *TokenStore) key() string {
	return accessTokenKey + s.session
}

func (s *TokenStore) Get(ctx context.Context) (string, error) {
	v, err := s.client.Get(ctx, s.key()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (s *TokenStore) Set(ctx context.Context, token string) error {
	return s.client.Set(ctx, s.key(), token, 0).Err()
}

func (s *TokenStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key()).Err()
}
