package events

import "time"

// Event type codes published on the NATS bus.
const (
	TypeSessionCreated   = "SESSION_CREATED"
	TypeFilesIndexed     = "FILES_INDEXED"
	TypeChatMessage      = "CHAT_MESSAGE"
	TypeSessionDestroyed = "SESSION_DESTROYED"
)

func NewSessionCreated(sessionID, candidateName string) Event {
	return BaseEvent{
		Type: TypeSessionCreated,
		Data: map[string]interface{}{
			"session_id":     sessionID,
			"candidate_name": candidateName,
		},
		OccurredAt: time.Now(),
	}
}

func NewFilesIndexed(sessionID string, filenames []string, chunkCount int) Event {
	return BaseEvent{
		Type: TypeFilesIndexed,
		Data: map[string]interface{}{
			"session_id":  sessionID,
			"filenames":   filenames,
			"chunk_count": chunkCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewChatMessage(sessionID, role, query string, isMap bool) Event {
	return BaseEvent{
		Type: TypeChatMessage,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"role":       role,
			"query":      query,
			"is_map":     isMap,
		},
		OccurredAt: time.Now(),
	}
}

func NewSessionDestroyed(sessionID string) Event {
	return BaseEvent{
		Type: TypeSessionDestroyed,
		Data: map[string]interface{}{
			"session_id": sessionID,
		},
		OccurredAt: time.Now(),
	}
}
