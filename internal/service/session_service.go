package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ai-hrchat-be/internal/dto"
	"ai-hrchat-be/internal/model"
	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/internal/repository/contract"
	"ai-hrchat-be/internal/websocket"
	"ai-hrchat-be/pkg/events"
	"ai-hrchat-be/pkg/nats"
)

// ErrInitialMessageRequired is returned when a share link is requested
// before the HR side has sent the opening message.
var ErrInitialMessageRequired = errors.New("initial message must be sent before generating share link")

// ISessionService manages conversation sessions and their sharing flow.
type ISessionService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	ListSessions(ctx context.Context) (*dto.ListSessionsResponse, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*dto.SessionStatusResponse, error)
	SendInitialMessage(ctx context.Context, sessionID string, request *dto.InitialMessageRequest) error
	GenerateShareLink(ctx context.Context, sessionID string) (*dto.ShareLinkResponse, error)
	ValidateToken(ctx context.Context, token string) (*dto.ValidateTokenResponse, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type sessionService struct {
	sessionRepo contract.ISessionRepository
	contextSvc  IContextService
	hub         *websocket.Hub
	publisher   *nats.Publisher
	clientURL   string
	logger      logger.ILogger
}

func NewSessionService(
	sessionRepo contract.ISessionRepository,
	contextSvc IContextService,
	hub *websocket.Hub,
	publisher *nats.Publisher,
	clientURL string,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		contextSvc:  contextSvc,
		hub:         hub,
		publisher:   publisher,
		clientURL:   clientURL,
		logger:      log,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	session := &model.Session{
		ID:             uuid.NewString(),
		CandidateName:  request.CandidateName,
		CandidateEmail: request.CandidateEmail,
		ShareToken:     uuid.NewString(),
		ExtractedText:  map[string]string{},
		ChatHistory:    []model.ChatTurn{},
		CreatedAt:      time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.contextSvc.EnsureCollection(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session index: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewSessionCreated(session.ID, session.CandidateName)); err != nil {
			s.logger.Warn("SessionService", "Failed to publish session created event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info("SessionService", "Created new session", map[string]interface{}{
		"session_id":     session.ID,
		"candidate_name": session.CandidateName,
	})
	return &dto.CreateSessionResponse{
		SessionID:  session.ID,
		ShareToken: session.ShareToken,
	}, nil
}

func (s *sessionService) ListSessions(ctx context.Context) (*dto.ListSessionsResponse, error) {
	sessions, err := s.sessionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.ListSessionsResponse{Sessions: make([]dto.SessionSummaryResponse, 0, len(sessions))}
	for _, session := range sessions {
		res.Sessions = append(res.Sessions, dto.SessionSummaryResponse{
			SessionID:      session.ID,
			CandidateName:  session.CandidateName,
			CandidateEmail: session.CandidateEmail,
			CreatedAt:      session.CreatedAt,
		})
	}
	return res, nil
}

func (s *sessionService) GetSessionStatus(ctx context.Context, sessionID string) (*dto.SessionStatusResponse, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.SessionStatusResponse{InitialMessageSent: session.InitialMessageSent}, nil
}

// SendInitialMessage records the HR opening message, marks the session
// ready for sharing, and pushes the message to any connected clients.
func (s *sessionService) SendInitialMessage(ctx context.Context, sessionID string, request *dto.InitialMessageRequest) error {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	session.AppendTurn(model.ChatTurn{
		Role:      "hr",
		Response:  request.Message,
		Timestamp: time.Now(),
	})
	session.InitialMessageSent = true

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return err
	}

	s.hub.Send(sessionID, websocket.MessageTypeInitialMessage, map[string]interface{}{
		"role":      "hr",
		"content":   request.Message,
		"timestamp": time.Now().Unix(),
	})
	return nil
}

func (s *sessionService) GenerateShareLink(ctx context.Context, sessionID string) (*dto.ShareLinkResponse, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.InitialMessageSent {
		return nil, ErrInitialMessageRequired
	}

	link := fmt.Sprintf("%s/candidate-chat?token=%s", s.clientURL, session.ShareToken)
	return &dto.ShareLinkResponse{ShareLink: link}, nil
}

func (s *sessionService) ValidateToken(ctx context.Context, token string) (*dto.ValidateTokenResponse, error) {
	session, err := s.sessionRepo.FindByShareToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return &dto.ValidateTokenResponse{SessionID: session.ID}, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.contextSvc.DropCollection(ctx, session); err != nil {
		s.logger.Warn("SessionService", "Failed to drop session index", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewSessionDestroyed(sessionID)); err != nil {
			s.logger.Warn("SessionService", "Failed to publish session destroyed event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}
