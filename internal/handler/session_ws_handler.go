package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"ai-hrchat-be/internal/pkg/logger"
	internalWS "ai-hrchat-be/internal/websocket"
)

// SessionWsHandler upgrades session clients onto the push hub.
type SessionWsHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewSessionWsHandler(hub *internalWS.Hub, log logger.ILogger) *SessionWsHandler {
	return &SessionWsHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *SessionWsHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	if _, err := uuid.Parse(sessionID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID"})
	}

	// Upgrade via Fiber WebSocket Middleware
	// We handle the upgrade here using the helper which automatically hijacks the connection
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(c *websocket.Conn) {
			h.logger.Info("SessionWsHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, c, sessionID)
			h.logger.Info("SessionWsHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the websocket route.
func (h *SessionWsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/:sessionId", h.ServeWs)
}
