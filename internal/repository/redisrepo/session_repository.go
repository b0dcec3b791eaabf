package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ai-hrchat-be/internal/model"
	"ai-hrchat-be/internal/repository/contract"
)

const (
	sessionKeyPrefix    = "session:"
	shareTokenKeyPrefix = "share_token:"
	sessionIndexKey     = "sessions"

	// Sessions are conversational state; keep them around for a day of
	// inactivity and refresh the TTL on every read and write.
	sessionTTL = 24 * time.Hour
)

type SessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) contract.ISessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func shareTokenKey(token string) string {
	return shareTokenKeyPrefix + token
}

func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	if err := r.write(ctx, session); err != nil {
		return err
	}
	if err := r.rdb.SAdd(ctx, sessionIndexKey, session.ID).Err(); err != nil {
		return fmt.Errorf("failed to index session %s: %w", session.ID, err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, contract.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}

	r.rdb.Expire(ctx, sessionKey(sessionID), sessionTTL)
	return &session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *model.Session) error {
	return r.write(ctx, session)
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	session, err := r.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, contract.ErrSessionNotFound) {
		return err
	}

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.SRem(ctx, sessionIndexKey, sessionID)
	if session != nil && session.ShareToken != "" {
		pipe.Del(ctx, shareTokenKey(session.ShareToken))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

func (r *SessionRepository) List(ctx context.Context) ([]*model.Session, error) {
	ids, err := r.rdb.SMembers(ctx, sessionIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*model.Session, 0, len(ids))
	for _, id := range ids {
		session, err := r.Get(ctx, id)
		if errors.Is(err, contract.ErrSessionNotFound) {
			// Expired session still in the index; drop the stale member.
			r.rdb.SRem(ctx, sessionIndexKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *SessionRepository) FindByShareToken(ctx context.Context, token string) (*model.Session, error) {
	id, err := r.rdb.Get(ctx, shareTokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, contract.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve share token: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *SessionRepository) write(ctx context.Context, session *model.Session) error {
	session.UpdatedAt = time.Now()

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), raw, sessionTTL)
	if session.ShareToken != "" {
		pipe.Set(ctx, shareTokenKey(session.ShareToken), session.ID, sessionTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.ID, err)
	}
	return nil
}
