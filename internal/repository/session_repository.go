package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

// SessionRepository stores operator sessions and per-operator preferences in
// Redis. Sessions are keyed by the token ID so logout can revoke a single
// token.
type SessionRepository struct {
	client    *redis.Client
	keyPrefix string
}

// NewSessionRepository constructs a session repository.
func NewSessionRepository(client *redis.Client, keyPrefix string) *SessionRepository {
	return &SessionRepository{client: client, keyPrefix: keyPrefix}
}

func (r *SessionRepository) sessionKey(tokenID string) string {
	return fmt.Sprintf("%s:%s", r.keyPrefix, tokenID)
}

func (r *SessionRepository) themeKey(operatorID string) string {
	return fmt.Sprintf("%s:theme:%s", r.keyPrefix, operatorID)
}

// SaveSession stores the operator snapshot under the token ID with the
// session TTL.
func (r *SessionRepository) SaveSession(ctx context.Context, tokenID string, operator *models.Operator, ttl time.Duration) error {
	payload, err := json.Marshal(operator)
	if err != nil {
		return fmt.Errorf("marshal session for %s: %w", tokenID, err)
	}
	if err := r.client.Set(ctx, r.sessionKey(tokenID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", tokenID, err)
	}
	return nil
}

// GetSession loads the operator snapshot for the token ID. A missing key
// means the session was revoked or expired.
func (r *SessionRepository) GetSession(ctx context.Context, tokenID string) (*models.Operator, error) {
	raw, err := r.client.Get(ctx, r.sessionKey(tokenID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("get session %s: %w", tokenID, err)
	}

	var operator models.Operator
	if err := json.Unmarshal(raw, &operator); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", tokenID, err)
	}
	return &operator, nil
}

// DeleteSession revokes the session for the token ID.
func (r *SessionRepository) DeleteSession(ctx context.Context, tokenID string) error {
	if err := r.client.Del(ctx, r.sessionKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", tokenID, err)
	}
	return nil
}

// SetTheme persists the operator's theme preference.
func (r *SessionRepository) SetTheme(ctx context.Context, operatorID, theme string) error {
	if err := r.client.Set(ctx, r.themeKey(operatorID), theme, 0).Err(); err != nil {
		return fmt.Errorf("set theme for %s: %w", operatorID, err)
	}
	return nil
}

// GetTheme returns the stored theme preference, or an empty string when the
// operator has never chosen one.
func (r *SessionRepository) GetTheme(ctx context.Context, operatorID string) (string, error) {
	theme, err := r.client.Get(ctx, r.themeKey(operatorID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("get theme for %s: %w", operatorID, err)
	}
	return theme, nil
}
