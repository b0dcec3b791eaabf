package agent

import (
	"context"
	"fmt"
	"strings"

	"ai-hrchat-be/internal/constant"
	"ai-hrchat-be/pkg/maps"

	openai "github.com/sashabaranov/go-openai"
)

// AnswerDocuments generates the RAG answer from retrieved document chunks
// and the conversation history.
func (a *Agent) AnswerDocuments(ctx context.Context, documents string, history []Turn, query, role string) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, constant.DocumentAnswerPromptV1, audience(role))

	if role == constant.RoleCandidate {
		sb.WriteString("\n\nSuggested Questions for Candidate:\n")
		for _, question := range constant.SuggestedCandidateQuestions {
			sb.WriteString("- ")
			sb.WriteString(question)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n\nDocuments:\n")
	sb.WriteString(documents)
	renderHistory(&sb, history)
	fmt.Fprintf(&sb, "\n%s Query: %s", capitalize(role), query)

	res, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: constant.DocumentAnswerSystemPromptV1},
			{Role: openai.ChatMessageRoleUser, Content: sb.String()},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate document answer: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("document answer response contained no choices")
	}

	answer := strings.TrimSpace(res.Choices[0].Message.Content)
	a.logger.Info("Agent", "Generated document answer", map[string]interface{}{
		"answer_preview": preview(answer),
	})
	return answer, nil
}

// NarrateMapResult produces the text that accompanies a map result.
// Address, nearby and multi-office results return an empty string because
// the frontend renders those as cards; directions become a bullet list;
// distance results get a short LLM narration.
func (a *Agent) NarrateMapResult(ctx context.Context, result *maps.Result, query, role string) (string, error) {
	if result == nil {
		return "", nil
	}

	switch result.Type {
	case "address", "nearby", "multi_location":
		return "", nil

	case "directions":
		var sb strings.Builder
		sb.WriteString("Directions:\n\n")
		for i, step := range result.Directions.Steps {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("- ")
			sb.WriteString(step)
		}
		return sb.String(), nil

	case "distance":
		prompt := fmt.Sprintf(constant.DistanceAnswerPromptV1,
			audience(role),
			result.Distance.Origin,
			result.Distance.Destination,
			result.Distance.Distance,
			result.Distance.Duration,
			query,
		)

		res, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: constant.MapAnswerSystemPromptV1},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			MaxTokens:   200,
			Temperature: 0.7,
		})
		if err != nil {
			return "", fmt.Errorf("failed to narrate distance result: %w", err)
		}
		if len(res.Choices) == 0 {
			return "", fmt.Errorf("distance narration response contained no choices")
		}

		answer := strings.TrimSpace(res.Choices[0].Message.Content)
		a.logger.Info("Agent", "Generated distance narration", map[string]interface{}{
			"answer_preview": preview(answer),
		})
		return answer, nil

	default:
		return "", nil
	}
}

func preview(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}
