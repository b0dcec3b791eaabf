package model

import (
	"time"

	"ai-hrchat-be/pkg/maps"
)

// Session is a single document-analysis conversation between HR and a
// candidate. Extracted text is keyed by filename; the vector index for the
// session lives in its own collection named after the session ID.
type Session struct {
	ID                 string            `json:"session_id"`
	CandidateName      string            `json:"candidate_name"`
	CandidateEmail     string            `json:"candidate_email"`
	ShareToken         string            `json:"share_token"`
	ExtractedText      map[string]string `json:"extracted_text"`
	ChatHistory        []ChatTurn        `json:"chat_history"`
	InitialMessageSent bool              `json:"initial_message_sent"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// ChatTurn is one exchange in a session transcript.
type ChatTurn struct {
	Role        string       `json:"role"`
	Query       string       `json:"query"`
	Response    string       `json:"response"`
	Timestamp   time.Time    `json:"timestamp"`
	MapData     *maps.Result `json:"map_data,omitempty"`
	AudioBase64 string       `json:"audio_base64,omitempty"`
}

// HistoryWindow is how many turns of transcript are kept per session.
const HistoryWindow = 10

// AppendTurn adds a turn and trims the transcript to the history window.
func (s *Session) AppendTurn(turn ChatTurn) {
	s.ChatHistory = append(s.ChatHistory, turn)
	if len(s.ChatHistory) > HistoryWindow {
		s.ChatHistory = s.ChatHistory[len(s.ChatHistory)-HistoryWindow:]
	}
}

// VectorCollection is the per-session vector store collection name.
func (s *Session) VectorCollection() string {
	return "docs_" + s.ID
}
