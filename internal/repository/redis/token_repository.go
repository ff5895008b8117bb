package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenData struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// TokenRepository is the server-side session store. A bearer token is only
// accepted while its lookup key exists, which makes logout an actual
// revocation rather than a client-side discard.
type TokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{
		client: client,
	}
}

func (r *TokenRepository) StoreToken(ctx context.Context, userID, token string, data TokenData, ttl time.Duration) error {
	key := fmt.Sprintf("token:user:%s", userID)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal token data: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token in Redis: %w", err)
	}

	// reverse lookup token -> user_id for quick validation
	tokenKey := fmt.Sprintf("token:lookup:%s", token)
	if err := r.client.Set(ctx, tokenKey, userID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store token lookup: %w", err)
	}

	return nil
}

// StoreSession records a freshly issued token for userID.
func (r *TokenRepository) StoreSession(ctx context.Context, userID, email, token string, ttl time.Duration) error {
	now := time.Now()
	return r.StoreToken(ctx, userID, token, TokenData{
		UserID:    userID,
		Email:     email,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}, ttl)
}

// ValidateToken returns the owning user id if the token is still live.
func (r *TokenRepository) ValidateToken(ctx context.Context, token string) (string, error) {
	tokenKey := fmt.Sprintf("token:lookup:%s", token)

	userID, err := r.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errors.New("token not found or expired")
		}
		return "", fmt.Errorf("failed to validate token: %w", err)
	}

	return userID, nil
}

func (r *TokenRepository) RevokeToken(ctx context.Context, userID, token string) error {
	key := fmt.Sprintf("token:user:%s", userID)
	tokenKey := fmt.Sprintf("token:lookup:%s", token)

	if err := r.client.Del(ctx, key, tokenKey).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
