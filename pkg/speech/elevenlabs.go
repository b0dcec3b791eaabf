package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

// Synthesizer turns response text into speech audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// ElevenLabsClient synthesizes speech via the ElevenLabs text-to-speech API.
type ElevenLabsClient struct {
	apiKey  string
	voiceID string
	modelID string
	client  *http.Client
}

func NewElevenLabsClient(apiKey, voiceID, modelID string) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:  apiKey,
		voiceID: voiceID,
		modelID: modelID,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Synthesize returns the spoken text as base64-encoded MP3 audio.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", nil
	}

	body, err := json.Marshal(ttsRequest{
		Text:    text,
		ModelID: c.modelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal TTS request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", elevenLabsBaseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build TTS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mp3")
	req.Header.Set("xi-api-key", c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("TTS request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("TTS request returned status %d: %s", res.StatusCode, string(msg))
	}

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read TTS audio: %w", err)
	}

	return base64.StdEncoding.EncodeToString(audio), nil
}
