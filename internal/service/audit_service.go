package service

import (
	"context"

	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/pkg/events"
	"ai-hrchat-be/pkg/nats"
)

// IAuditService consumes the event stream and records an audit trail of
// session activity.
type IAuditService interface {
	Start()
}

type auditService struct {
	subscriber *nats.Subscriber
	logger     logger.ILogger
}

func NewAuditService(subscriber *nats.Subscriber, log logger.ILogger) IAuditService {
	return &auditService{
		subscriber: subscriber,
		logger:     log,
	}
}

func (s *auditService) Start() {
	err := s.subscriber.Subscribe("events.>", "audit-worker", func(ctx context.Context, event events.Event) error {
		s.logger.Info("AuditService", "Event recorded", map[string]interface{}{
			"type":    event.EventType(),
			"payload": event.Payload(),
		})
		return nil
	})
	if err != nil {
		s.logger.Error("AuditService", "Failed to subscribe to event stream", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
