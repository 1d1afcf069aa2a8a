package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

// ConfirmationTokenStore keeps pending email-confirmation tokens in Redis.
// Tokens expire on their TTL and are deleted on consumption, so each one is
// usable exactly once.
type ConfirmationTokenStore struct {
	client *redis.Client
	prefix string
}

// NewConfirmationTokenStore creates a new ConfirmationTokenStore.
func NewConfirmationTokenStore(client *redis.Client) *ConfirmationTokenStore {
	return &ConfirmationTokenStore{
		client: client,
		prefix: "confirm:",
	}
}

// Save stores a token bound to a user id.
func (s *ConfirmationTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+token, userID, ttl).Err()
}

// Consume atomically reads and invalidates a token, returning the user id it
// was issued for.
func (s *ConfirmationTokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, s.prefix+token).Result()
	if err == redis.Nil {
		return "", &domain.NotFoundError{Prop: "token", Value: token}
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}
