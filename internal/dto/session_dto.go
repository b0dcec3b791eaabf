package dto

import "time"

type CreateSessionRequest struct {
	CandidateName  string `json:"candidate_name" validate:"required"`
	CandidateEmail string `json:"candidate_email" validate:"required,email"`
}

type CreateSessionResponse struct {
	SessionID  string `json:"session_id"`
	ShareToken string `json:"share_token"`
}

type SessionSummaryResponse struct {
	SessionID      string    `json:"session_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListSessionsResponse struct {
	Sessions []SessionSummaryResponse `json:"sessions"`
}

type SessionStatusResponse struct {
	InitialMessageSent bool `json:"initial_message_sent"`
}

type InitialMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type ShareLinkResponse struct {
	ShareLink string `json:"share_link"`
}

type ValidateTokenResponse struct {
	SessionID string `json:"session_id"`
}
