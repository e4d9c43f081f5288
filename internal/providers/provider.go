package providers

import (
	"context"
	"encoding/json"
	"fmt"
)

// Message roles in a generation exchange.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one turn in a generation exchange.
type Message struct {
	Role    string
	Content string
	// ToolCalls is set on assistant messages that request tool invocations
	// instead of (or in addition to) text content.
	ToolCalls []ToolCall
	// ToolCallID links a tool-result message back to the call it answers.
	ToolCallID string
}

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON object text
}

// Tool describes an invocable capability offered to the model.
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage // JSON Schema
}

// GenerateRequest contains the data sent to an LLM for one exchange step.
type GenerateRequest struct {
	System      string
	Messages    []Message
	Tools       []Tool
	MaxTokens   int
	Temperature *float64
	Seed        *int
}

// GenerateResponse contains the model's reply. The message holds either
// final text content or one or more tool calls; the caller decides how to
// continue the exchange.
type GenerateResponse struct {
	Message    Message
	TokensUsed int
}

// Generator is the provider abstraction interface.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// New creates a provider by name.
func New(provider, model string) (Generator, error) {
	switch provider {
	case "anthropic":
		return NewAnthropic(model)
	case "openai":
		return NewOpenAI(model)
	case "gemini", "google":
		return NewGemini(model)
	case "ollama", "lmstudio":
		return NewOllama(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
