package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/getready/ats-system/internal/core/domain"
)

// FileTokenStore issues short-lived resume access tokens backed by Redis.
// Key format: filetoken:<file_id>:<token>
type FileTokenStore struct {
	client *redis.Client
}

// NewFileTokenStore creates a FileTokenStore wrapping the given Redis client.
func NewFileTokenStore(client *redis.Client) *FileTokenStore {
	return &FileTokenStore{client: client}
}

// Issue mints a random token bound to fileID, expiring after ttl. Multiple
// live tokens per file are fine; each expires independently.
func (s *FileTokenStore) Issue(ctx context.Context, fileID string, ttl time.Duration) (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	token := hex.EncodeToString(buf)

	if err := s.client.Set(ctx, s.key(fileID, token), "1", ttl).Err(); err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Validate reports whether token is live and bound to fileID. A token for a
// different file, an expired token, and an unknown token are all equally
// invalid.
func (s *FileTokenStore) Validate(ctx context.Context, fileID, token string) error {
	if token == "" {
		return domain.ErrFileTokenInvalid
	}

	_, err := s.client.Get(ctx, s.key(fileID, token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ErrFileTokenInvalid
		}
		return fmt.Errorf("validate token: %w", err)
	}
	return nil
}

func (s *FileTokenStore) key(fileID, token string) string {
	return fmt.Sprintf("filetoken:%s:%s", fileID, token)
}
