package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tickertalk/tickertalk/internal/schema"
	"github.com/tickertalk/tickertalk/internal/shared/llmutils"
	"github.com/tickertalk/tickertalk/internal/tools"
)

// Driver owns the model/tool turn-taking loop for one conversation.
//
// Each iteration calls the backend with the full history and the advertised
// tool set, appends the returned assistant message verbatim, dispatches every
// tool-use block in order, appends the correlated results as one user
// message, and repeats until the backend stops with end_turn.
type Driver struct {
	client     schema.ModelClient
	dispatcher *Dispatcher
	registry   *tools.Registry
	settings   schema.AgentSettings
}

// NewDriver creates a Driver. The registry's specs are advertised unchanged
// on every backend call.
func NewDriver(client schema.ModelClient, dispatcher *Dispatcher, registry *tools.Registry, settings schema.AgentSettings) *Driver {
	return &Driver{
		client:     client,
		dispatcher: dispatcher,
		registry:   registry,
		settings:   settings,
	}
}

// Run drives history to completion and returns the text of the final
// assistant turn. onText, when non-nil, receives every text block as it
// arrives so callers can surface intermediate output.
//
// Backend errors are fatal: they propagate out without retry. The tool
// iteration bound is an added safety limit; hitting it is an error, not a
// protocol condition.
func (d *Driver) Run(ctx context.Context, history *schema.Messages, onText func(string)) (string, error) {
	specs := d.registry.Specs()
	opts := d.settings.ChatOptions()

	for i := 0; i < d.settings.MaxToolIterations; i++ {
		resp, err := d.client.Chat(ctx, SystemPrompt, *history, specs, opts)
		if err != nil {
			return "", fmt.Errorf("model call: %w", err)
		}

		// The assistant message enters the history exactly as received.
		history.Add(resp.Message)

		var text strings.Builder
		var invocations []schema.ToolInvocation
		var results []schema.ToolResultBlock

		for _, block := range resp.Message.Content {
			switch block.Kind {
			case schema.BlockText:
				if onText != nil && block.Text != "" {
					onText(block.Text)
				}
				text.WriteString(block.Text)

			case schema.BlockToolUse:
				inv := schema.ToolInvocation{
					ID:    block.ToolUse.ID,
					Name:  block.ToolUse.Name,
					Input: block.ToolUse.Input,
				}
				invocations = append(invocations, inv)
				outcome := d.dispatcher.Dispatch(ctx, inv)
				results = append(results, schema.ToolResultBlock{
					ID:      outcome.ID,
					Status:  outcome.Status,
					Content: outcome.Content,
				})

			case schema.BlockToolResult:
				// Only this driver emits tool results; a backend echoing one
				// back is a protocol violation we log and skip.
				slog.Warn("Assistant message contained a tool_result block", "id", block.ToolResult.ID)
			}
		}

		// Append the result message only when there is something to answer;
		// an empty user message would corrupt the alternation the protocol
		// expects on text-only turns.
		if len(results) > 0 {
			slog.Info("Turn used tools", "calls", llmutils.ToolHint(invocations))
			history.AddToolResults(results)
		}

		if resp.StopReason == schema.StopEndTurn {
			return text.String(), nil
		}
	}

	return "", fmt.Errorf("no final answer after %d tool iterations", d.settings.MaxToolIterations)
}
