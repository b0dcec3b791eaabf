package agent

import (
	"strings"

	"ai-hrchat-be/internal/constant"
	"ai-hrchat-be/internal/pkg/logger"

	openai "github.com/sashabaranov/go-openai"
)

// Turn is one query/response pair of conversation history.
type Turn struct {
	Role     string
	Query    string
	Response string
}

// Agent wraps the LLM used for query correction, intent classification and
// answer generation.
type Agent struct {
	client *openai.Client
	model  string
	logger logger.ILogger
}

func New(apiKey, model string, log logger.ILogger) *Agent {
	if model == "" {
		model = openai.GPT4o
	}
	return &Agent{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: log,
	}
}

// audience describes who the assistant is talking to inside prompts.
func audience(role string) string {
	if role == constant.RoleHR {
		return "HR representative"
	}
	return "job candidate"
}

// shortAudience is the compact variant used by the corrector and classifier.
func shortAudience(role string) string {
	if role == constant.RoleHR {
		return "HR"
	}
	return "candidate"
}

// promptHistoryWindow limits how much transcript the corrector and the
// classifier see.
const promptHistoryWindow = 5

// lastTurns trims the transcript to the prompt history window.
func lastTurns(history []Turn) []Turn {
	if len(history) > promptHistoryWindow {
		return history[len(history)-promptHistoryWindow:]
	}
	return history
}

// renderHistory appends the conversation transcript to a prompt builder.
func renderHistory(sb *strings.Builder, history []Turn) {
	sb.WriteString("\n\nConversation History:\n")
	for _, turn := range history {
		sb.WriteString(capitalize(turn.Role))
		sb.WriteString(": ")
		sb.WriteString(turn.Query)
		sb.WriteString("\nAssistant: ")
		sb.WriteString(turn.Response)
		sb.WriteString("\n")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
