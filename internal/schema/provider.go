package schema

import "context"

// StopReason is the backend's signal for why generation stopped.
type StopReason string

const (
	StopEndTurn      StopReason = "end_turn"
	StopToolUse      StopReason = "tool_use"
	StopMaxTokens    StopReason = "max_tokens"
	StopStopSequence StopReason = "stop_sequence"
)

// ChatOptions configures a single backend request.
type ChatOptions struct {
	Model         string
	MaxTokens     int
	Temperature   float64
	TopP          float64
	StopSequences []string
}

// ModelResponse is the normalised response from any inference backend:
// one assistant message plus the stop reason.
type ModelResponse struct {
	Message    Message
	StopReason StopReason
	Usage      map[string]int // "input_tokens", "output_tokens"
}

// ModelClient is the interface every inference backend must satisfy.
// The call is synchronous and opaque; retry policy is the backend's concern.
type ModelClient interface {
	Chat(ctx context.Context, system string, history Messages, tools []ToolSpec, opts ChatOptions) (ModelResponse, error)
}
