package dto

import (
	"time"

	"ai-hrchat-be/pkg/maps"
)

type ChatRequest struct {
	Query     string `json:"query" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=hr candidate"`
	VoiceMode bool   `json:"voice_mode"`
}

type ChatTurnResponse struct {
	Role        string       `json:"role"`
	Query       string       `json:"query"`
	Response    string       `json:"response"`
	Timestamp   time.Time    `json:"timestamp"`
	MapData     *maps.Result `json:"map_data,omitempty"`
	AudioBase64 string       `json:"audio_base64,omitempty"`
}

type ChatResponse struct {
	Response    string             `json:"response"`
	History     []ChatTurnResponse `json:"history"`
	MapData     *maps.Result       `json:"map_data,omitempty"`
	AudioBase64 string             `json:"audio_base64,omitempty"`
}

type MessagesResponse struct {
	Messages []ChatTurnResponse `json:"messages"`
}
