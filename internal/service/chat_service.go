package service

import (
	"context"
	"fmt"
	"time"

	"ai-hrchat-be/internal/constant"
	"ai-hrchat-be/internal/dto"
	"ai-hrchat-be/internal/model"
	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/internal/repository/contract"
	"ai-hrchat-be/internal/websocket"
	"ai-hrchat-be/pkg/agent"
	"ai-hrchat-be/pkg/events"
	"ai-hrchat-be/pkg/maps"
	"ai-hrchat-be/pkg/nats"
	"ai-hrchat-be/pkg/speech"
)

// IChatService answers session queries against the indexed documents and
// the office map pipeline.
type IChatService interface {
	Chat(ctx context.Context, sessionID string, request *dto.ChatRequest) (*dto.ChatResponse, error)
	GetMessages(ctx context.Context, sessionID string) (*dto.MessagesResponse, error)
}

type chatService struct {
	sessionRepo contract.ISessionRepository
	contextSvc  IContextService
	agent       *agent.Agent
	resolver    *maps.Resolver
	synthesizer speech.Synthesizer
	hub         *websocket.Hub
	publisher   *nats.Publisher
	logger      logger.ILogger
}

func NewChatService(
	sessionRepo contract.ISessionRepository,
	contextSvc IContextService,
	chatAgent *agent.Agent,
	resolver *maps.Resolver,
	synthesizer speech.Synthesizer,
	hub *websocket.Hub,
	publisher *nats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		contextSvc:  contextSvc,
		agent:       chatAgent,
		resolver:    resolver,
		synthesizer: synthesizer,
		hub:         hub,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *chatService) Chat(ctx context.Context, sessionID string, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	history := agentHistory(session.ChatHistory)
	corrected := s.agent.CorrectQuery(ctx, request.Query, history, request.Role)
	intent := s.agent.ClassifyIntent(ctx, corrected, history, request.Role)

	s.logger.Info("ChatService", "Routing chat query", map[string]interface{}{
		"session_id": sessionID,
		"query":      corrected,
		"is_map":     intent.IsMap,
		"intent":     intent.Intent,
	})

	var response string
	var mapResult *maps.Result
	if intent.IsMap {
		response, mapResult = s.answerMapQuery(ctx, sessionID, corrected, request.Role, intent)
	} else {
		response, err = s.answerDocumentQuery(ctx, session, corrected, request.Role, intent)
		if err != nil {
			s.logger.Error("ChatService", "Document query failed", map[string]interface{}{
				"session_id": sessionID,
				"query":      corrected,
				"error":      err.Error(),
			})
			response = "Sorry, I couldn't generate an answer right now. Please try again."
		}
	}

	turn := model.ChatTurn{
		Role:      request.Role,
		Query:     corrected,
		Response:  response,
		Timestamp: time.Now(),
		MapData:   mapResult,
	}

	var audio string
	if request.VoiceMode && s.synthesizer != nil {
		audio, err = s.synthesizer.Synthesize(ctx, response)
		if err != nil {
			s.logger.Warn("ChatService", "Speech synthesis failed", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			audio = ""
		}
		turn.AudioBase64 = audio
	}

	session.AppendTurn(turn)
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.pushChatMessages(sessionID, request, response, mapResult)

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewChatMessage(sessionID, request.Role, corrected, intent.IsMap)); err != nil {
			s.logger.Warn("ChatService", "Failed to publish chat event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ChatResponse{
		Response:    response,
		History:     turnsToDto(session.ChatHistory),
		MapData:     mapResult,
		AudioBase64: audio,
	}, nil
}

// answerMapQuery resolves the location intent and narrates it. Failures
// degrade to an apologetic fallback rather than an error so the chat keeps
// flowing.
func (s *chatService) answerMapQuery(ctx context.Context, sessionID, query, role string, intent agent.IntentData) (string, *maps.Result) {
	result, err := s.resolver.Resolve(ctx, intent.MapQuery(sessionID, query))
	if err != nil {
		s.logger.Error("ChatService", "Map query failed", map[string]interface{}{
			"session_id": sessionID,
			"query":      query,
			"error":      err.Error(),
		})
		return fmt.Sprintf("Sorry, I couldn't process the location request for '%s'. Please rephrase.", query), nil
	}

	response, err := s.agent.NarrateMapResult(ctx, result, query, role)
	if err != nil {
		s.logger.Error("ChatService", "Map narration failed", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return fmt.Sprintf("Sorry, I couldn't process the location request for '%s'. Please rephrase.", query), nil
	}
	return response, result
}

func (s *chatService) answerDocumentQuery(ctx context.Context, session *model.Session, query, role string, _ agent.IntentData) (string, error) {
	// Without documents the retrieval branch has nothing to ground an
	// answer on, so short-circuit with guidance instead.
	if len(session.ExtractedText) == 0 {
		return constant.NoDocumentsResponse, nil
	}

	documents, err := s.contextSvc.SearchContext(ctx, session, query)
	if err != nil {
		return "", err
	}

	return s.agent.AnswerDocuments(ctx, documents, agentHistory(session.ChatHistory), query, role)
}

func (s *chatService) GetMessages(ctx context.Context, sessionID string) (*dto.MessagesResponse, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.MessagesResponse{Messages: turnsToDto(session.ChatHistory)}, nil
}

func (s *chatService) pushChatMessages(sessionID string, request *dto.ChatRequest, response string, mapResult *maps.Result) {
	s.hub.Send(sessionID, websocket.MessageTypeChat, map[string]interface{}{
		"role":      request.Role,
		"content":   request.Query,
		"timestamp": time.Now().Unix(),
	})

	assistant := map[string]interface{}{
		"role":      "assistant",
		"content":   response,
		"timestamp": time.Now().Unix(),
	}
	if mapResult != nil {
		assistant["map_data"] = mapResult
	}
	s.hub.Send(sessionID, websocket.MessageTypeChat, assistant)
}

func agentHistory(turns []model.ChatTurn) []agent.Turn {
	history := make([]agent.Turn, 0, len(turns))
	for _, turn := range turns {
		history = append(history, agent.Turn{
			Role:     turn.Role,
			Query:    turn.Query,
			Response: turn.Response,
		})
	}
	return history
}

func turnsToDto(turns []model.ChatTurn) []dto.ChatTurnResponse {
	res := make([]dto.ChatTurnResponse, 0, len(turns))
	for _, turn := range turns {
		res = append(res, dto.ChatTurnResponse{
			Role:        turn.Role,
			Query:       turn.Query,
			Response:    turn.Response,
			Timestamp:   turn.Timestamp,
			MapData:     turn.MapData,
			AudioBase64: turn.AudioBase64,
		})
	}
	return res
}
