package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ai-hrchat-be/internal/constant"
	"ai-hrchat-be/pkg/maps"

	openai "github.com/sashabaranov/go-openai"
)

// IntentData is the classifier output: the routing decision plus any
// extracted entities. Pointer fields distinguish "absent" from empty.
type IntentData struct {
	IsMap       bool    `json:"is_map"`
	Intent      string  `json:"intent"`
	City        *string `json:"city"`
	NearbyType  *string `json:"nearby_type"`
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
}

// NonMapIntent is the safe default when classification fails: route to the
// document branch rather than erroring the whole chat turn.
func NonMapIntent() IntentData {
	return IntentData{IsMap: false, Intent: string(maps.IntentNonMap)}
}

// MapQuery converts the extracted entities into a resolver query.
func (d IntentData) MapQuery(sessionID, rawQuery string) maps.Query {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return strings.TrimSpace(*p)
	}
	return maps.Query{
		SessionID:   sessionID,
		RawQuery:    rawQuery,
		Intent:      maps.Intent(d.Intent),
		City:        strings.ToLower(deref(d.City)),
		NearbyType:  strings.ToLower(deref(d.NearbyType)),
		Origin:      deref(d.Origin),
		Destination: deref(d.Destination),
	}
}

// ClassifyIntent decides whether the (already corrected) query is map-related
// and extracts routing entities. Errors degrade to the non-map default.
func (a *Agent) ClassifyIntent(ctx context.Context, query string, history []Turn, role string) IntentData {
	var sb strings.Builder
	fmt.Fprintf(&sb, constant.IntentClassificationPromptV1,
		shortAudience(role),
		strings.Join(maps.CityNames(), ", "),
	)
	renderHistory(&sb, lastTurns(history))
	fmt.Fprintf(&sb, "\nQuery: %s\nJSON Output:", query)

	res, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: constant.IntentClassificationSystemPromptV1},
			{Role: openai.ChatMessageRoleUser, Content: sb.String()},
		},
		MaxTokens:   200,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		a.logger.Error("Agent", "Intent classification failed, defaulting to non_map", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return NonMapIntent()
	}
	if len(res.Choices) == 0 {
		a.logger.Error("Agent", "Intent classification returned no choices, defaulting to non_map", map[string]interface{}{
			"query": query,
		})
		return NonMapIntent()
	}

	raw := cleanJSONResponse(res.Choices[0].Message.Content)

	var data IntentData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		a.logger.Error("Agent", "Intent classification returned invalid JSON", map[string]interface{}{
			"error": err.Error(),
			"raw":   raw,
		})
		return NonMapIntent()
	}

	a.logger.Info("Agent", "Classified intent", map[string]interface{}{
		"query":  query,
		"is_map": data.IsMap,
		"intent": data.Intent,
	})
	return data
}

// cleanJSONResponse strips markdown fences some models wrap around JSON.
func cleanJSONResponse(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
