package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"ai-hrchat-be/internal/pkg/logger"
)

// Message types pushed to connected session clients.
const (
	MessageTypeChat           = "chat_message"
	MessageTypeFilesIndexed   = "files_indexed"
	MessageTypeInitialMessage = "initial_message"
)

type Hub struct {
	// Registered clients map: SessionID -> List of Clients (HR and candidate
	// can watch the same session from separate tabs)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						// Remove from slice
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send pushes a typed message to every client watching the session, on this
// instance and on peers via Redis.
func (h *Hub) Send(sessionID string, messageType string, payload interface{}) {
	// 1. Serialize
	data, _ := json.Marshal(map[string]interface{}{
		"type": messageType,
		"data": payload,
	})

	// 2. Check locally
	h.mu.RLock()
	clients, localFound := h.clients[sessionID]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"session_id": sessionID})
				close(client.Send)
				h.unregister <- client
			}
		}
	}

	// 3. Publish to Redis so peers holding the same session deliver too
	if h.rdb != nil {
		envelope := map[string]interface{}{
			"target_session_id": sessionID,
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

// Broadcast sends a message to ALL connected clients.
func (h *Hub) Broadcast(messageType string, payload interface{}) {
	// 1. Serialize
	data, _ := json.Marshal(map[string]interface{}{
		"type": messageType,
		"data": payload,
	})

	// 2. Send to all local clients
	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				close(client.Send)
				h.unregister <- client
			}
		}
	}
	h.mu.RUnlock()

	// 3. Publish to Redis for other instances
	if h.rdb != nil {
		envelope := map[string]interface{}{
			"target_session_id": "*", // Wildcard for broadcast
			"message":           data,
		}
		jsonPayload, _ := json.Marshal(envelope)
		h.rdb.Publish(context.Background(), "cluster_events", jsonPayload)
	}
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to "cluster_events". When a message arrives,
	// check if we hold the target session locally. If yes, deliver.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "cluster_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		// Parse message
		var payload struct {
			TargetSessionID string          `json:"target_session_id"`
			Message         json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		// Check for Broadcast
		if payload.TargetSessionID == "*" {
			// Broadcast to all local clients
			h.mu.RLock()
			for _, clients := range h.clients {
				for _, client := range clients {
					select {
					case client.Send <- payload.Message:
					default:
						close(client.Send)
						h.unregister <- client
					}
				}
			}
			h.mu.RUnlock()
			continue
		}

		// Check local
		h.mu.RLock()
		clients, ok := h.clients[payload.TargetSessionID]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					close(client.Send)
					h.unregister <- client
				}
			}
		}
	}
}
