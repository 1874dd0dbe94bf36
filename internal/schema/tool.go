package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface every model-callable tool must satisfy.
// Execute returns the structured business result; the dispatcher owns turning
// it (or the error) into a correlated protocol outcome.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's input.
	Parameters() json.RawMessage
	Execute(ctx context.Context, args map[string]any) (any, error)
}

// ToolSpec is the advertised description of one tool, sent to the inference
// backend so it knows what it may request. Immutable for the life of a run.
type ToolSpec struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// SpecOf derives the advertised spec from a Tool.
func SpecOf(t Tool) ToolSpec {
	return ToolSpec{Name: t.Name(), Description: t.Description(), InputSchema: t.Parameters()}
}

// ToolInvocation is one structured tool request extracted from an assistant
// message: correlation id, tool name, and raw untyped arguments.
type ToolInvocation struct {
	ID    string
	Name  string
	Input map[string]any
}

// OutcomeStatus is the result status of one tool invocation.
type OutcomeStatus string

const (
	StatusSuccess OutcomeStatus = "success"
	StatusError   OutcomeStatus = "error"
)

// ToolOutcome is the correlated result of one tool invocation. Content holds
// the structured result value on success, or a human-readable message on error.
type ToolOutcome struct {
	ID      string
	Status  OutcomeStatus
	Content any
}
