package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tickertalk/tickertalk/internal/schema"
	"github.com/tickertalk/tickertalk/internal/shared/llmutils"
	"github.com/tickertalk/tickertalk/internal/tools"
)

// Dispatcher routes one tool invocation to the matching executor and wraps
// the result into a correlated outcome.
//
// Every invocation produces exactly one outcome, including unknown tool
// names and lookup misses: silence would leave the model waiting on a
// correlation id that never resolves, so failures travel back as error
// outcomes the model can explain in natural language.
type Dispatcher struct {
	registry *tools.Registry
}

// NewDispatcher creates a Dispatcher over the given registry.
func NewDispatcher(registry *tools.Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch executes one invocation. Validation failures, unsupported
// operations, and lookup misses surface as error outcomes; they never abort
// the conversation.
func (d *Dispatcher) Dispatch(ctx context.Context, inv schema.ToolInvocation) schema.ToolOutcome {
	tool := d.registry.Get(inv.Name)
	if tool == nil {
		slog.Warn("Unknown tool requested", "name", inv.Name, "id", inv.ID)
		return schema.ToolOutcome{
			ID:      inv.ID,
			Status:  schema.StatusError,
			Content: fmt.Sprintf("Error: tool %q not found", inv.Name),
		}
	}

	argsJSON, _ := json.Marshal(inv.Input)
	slog.Info("Tool call", "name", inv.Name, "args", llmutils.Truncate(string(argsJSON), 200))

	result, err := tool.Execute(ctx, inv.Input)
	if err != nil {
		slog.Warn("Tool failed", "name", inv.Name, "err", err)
		return schema.ToolOutcome{ID: inv.ID, Status: schema.StatusError, Content: err.Error()}
	}

	return schema.ToolOutcome{ID: inv.ID, Status: schema.StatusSuccess, Content: result}
}
