package contract

import (
	"context"
	"errors"

	"ai-hrchat-be/internal/model"
)

// ErrSessionNotFound is returned when a session ID or share token resolves
// to nothing.
var ErrSessionNotFound = errors.New("session not found")

// ISessionRepository persists conversation sessions.
type ISessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]*model.Session, error)
	FindByShareToken(ctx context.Context, token string) (*model.Session, error)
}
