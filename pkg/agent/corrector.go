package agent

import (
	"context"
	"fmt"
	"strings"

	"ai-hrchat-be/internal/constant"
	"ai-hrchat-be/pkg/maps"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	openai "github.com/sashabaranov/go-openai"
)

// localMatchCutoff is the minimum fuzzy score for a local typo correction.
const localMatchCutoff = 80

// LocalCorrect is the deterministic correction pass: it lowercases the query
// and snaps near-miss mentions of roster cities and common domain terms onto
// their canonical spelling. It is pure and runs without the LLM, which also
// makes it the fallback when the LLM pass fails.
func LocalCorrect(query string) string {
	corrected := strings.ToLower(query)

	for _, city := range maps.CityNames() {
		cityToken := strings.ToLower(strings.SplitN(city, ",", 2)[0])
		corrected = fuzzyReplace(corrected, cityToken)
	}
	for _, term := range constant.CommonQueryTerms {
		corrected = fuzzyReplace(corrected, term)
	}

	return corrected
}

// fuzzyReplace finds the query word window most similar to canonical and
// rewrites it when the score clears the cutoff. Exact matches are left alone.
func fuzzyReplace(query, canonical string) string {
	if strings.Contains(query, canonical) {
		return query
	}

	words := strings.Fields(query)
	window := len(strings.Fields(canonical))
	if window == 0 || len(words) < window {
		return query
	}

	bestScore := 0
	bestStart := -1
	for i := 0; i+window <= len(words); i++ {
		candidate := strings.Join(words[i:i+window], " ")
		score := fuzzy.Ratio(trimPunct(candidate), canonical)
		if score > bestScore {
			bestScore = score
			bestStart = i
		}
	}

	if bestScore < localMatchCutoff || bestStart < 0 {
		return query
	}

	replaced := append([]string{}, words[:bestStart]...)
	replaced = append(replaced, canonical)
	replaced = append(replaced, words[bestStart+window:]...)
	return strings.Join(replaced, " ")
}

func trimPunct(candidate string) string {
	return strings.Trim(candidate, ".,!?")
}

// CorrectQuery runs the local pass and then asks the LLM to fix remaining
// typos using the conversation history. Any LLM failure falls back to the
// local result so the pipeline never blocks on the model.
func (a *Agent) CorrectQuery(ctx context.Context, query string, history []Turn, role string) string {
	localResult := LocalCorrect(query)

	var sb strings.Builder
	fmt.Fprintf(&sb, constant.QueryCorrectionPromptV1,
		shortAudience(role),
		strings.Join(maps.CityNames(), ", "),
		strings.Join(constant.CommonQueryTerms, ", "),
	)
	renderHistory(&sb, lastTurns(history))
	fmt.Fprintf(&sb, "\nOriginal Query: %s\nCorrected Query:", query)

	res, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: constant.QueryCorrectionSystemPromptV1},
			{Role: openai.ChatMessageRoleUser, Content: sb.String()},
		},
		MaxTokens:   100,
		Temperature: 0.3,
	})
	if err != nil {
		a.logger.Error("Agent", "Query correction failed, using local result", map[string]interface{}{
			"error": err.Error(),
			"query": query,
		})
		return localResult
	}
	if len(res.Choices) == 0 {
		a.logger.Warn("Agent", "Query correction returned no choices, using local result", map[string]interface{}{
			"query": query,
		})
		return localResult
	}

	corrected := strings.TrimSpace(res.Choices[0].Message.Content)
	if corrected == "" {
		return localResult
	}

	a.logger.Info("Agent", "Corrected query", map[string]interface{}{
		"from": query,
		"to":   corrected,
	})
	return corrected
}
