package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/pointing/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "session:"
	creatorKeyPrefix = "creator_sessions:" // Index of session IDs per creator

	// defaultTTL bounds how long an untouched session survives. Every
	// save slides the expiry forward.
	defaultTTL = 24 * time.Hour
)

// ErrSessionNotFound is returned when a session is absent or expired
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied on every save; defaults to 24h when zero
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

// SaveSession persists the whole aggregate to Redis and refreshes its
// expiry. Last write wins: concurrent saves of the same session are not
// serialized here.
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	// Marshal the session to JSON
	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the session with a sliding TTL
	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.Session.ID)
	pipe.Set(ctx, sessionKey, sessionJSON, r.ttl)

	// Keep the creator index alive alongside the session
	if input.Session.CreatorID != "" {
		creatorKey := fmt.Sprintf("%s%s", creatorKeyPrefix, input.Session.CreatorID)
		pipe.SAdd(ctx, creatorKey, input.Session.ID)
		pipe.Expire(ctx, creatorKey, r.ttl)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	sessionJSON, err := r.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetSessionsByCreator retrieves every stored session a creator owns.
// IDs whose records already expired are skipped.
func (r *redisRepository) GetSessionsByCreator(ctx context.Context, input *GetSessionsByCreatorInput) (*GetSessionsByCreatorOutput, error) {
	if input == nil || input.CreatorID == "" {
		return nil, errors.New("input and creator ID cannot be empty")
	}

	creatorKey := fmt.Sprintf("%s%s", creatorKeyPrefix, input.CreatorID)
	sessionIDs, err := r.client.SMembers(ctx, creatorKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs for creator: %w", err)
	}

	if len(sessionIDs) == 0 {
		return &GetSessionsByCreatorOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	// Get all sessions in one round trip using a pipeline
	pipe := r.client.Pipeline()
	sessionCommands := make(map[string]*redis.StringCmd)

	for _, sessionID := range sessionIDs {
		sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)
		sessionCommands[sessionID] = pipe.Get(ctx, sessionKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for sessionID, cmd := range sessionCommands {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Session expired between the index read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionID, err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionID, err)
		}

		sessions = append(sessions, &session)
	}

	return &GetSessionsByCreatorOutput{
		Sessions: sessions,
	}, nil
}

// DeleteSession removes a session from Redis
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	// Get the session first to find its creator index entry
	session, err := r.GetSession(ctx, &GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	pipe.Del(ctx, sessionKey)

	if session.CreatorID != "" {
		creatorKey := fmt.Sprintf("%s%s", creatorKeyPrefix, session.CreatorID)
		pipe.SRem(ctx, creatorKey, input.SessionID)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// SessionExists reports whether a session is currently stored
func (r *redisRepository) SessionExists(ctx context.Context, input *SessionExistsInput) (bool, error) {
	if input == nil || input.SessionID == "" {
		return false, errors.New("input and session ID cannot be empty")
	}

	sessionKey := fmt.Sprintf("%s%s", sessionKeyPrefix, input.SessionID)
	count, err := r.client.Exists(ctx, sessionKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session existence: %w", err)
	}

	return count > 0, nil
}
