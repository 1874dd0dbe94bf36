package agent

import (
	"context"
	"log/slog"

	"github.com/tickertalk/tickertalk/internal/bus"
	"github.com/tickertalk/tickertalk/internal/schema"
	"github.com/tickertalk/tickertalk/internal/shared/llmutils"
)

// Loop is the bus-facing wrapper around the Driver. It consumes prompts from
// the inbound bus, runs the driver against the single in-memory conversation
// history, and publishes replies outbound.
//
// One conversation, strictly sequential: one outstanding backend call at a
// time, prompts handled in arrival order. History lives only for this run.
type Loop struct {
	bus     bus.Bus
	driver  *Driver
	history schema.Messages
}

// NewLoop creates a Loop with a fresh conversation history.
func NewLoop(b bus.Bus, driver *Driver) *Loop {
	return &Loop{bus: b, driver: driver, history: schema.NewMessages()}
}

// Run consumes prompts until ctx is cancelled or a backend call fails.
// Backend failures are fatal to the run and propagate out.
func (l *Loop) Run(ctx context.Context) error {
	slog.Info("Agent loop started")

	for {
		select {
		case msg := <-l.bus.InboundChan():
			final, err := l.handle(ctx, msg.Content)
			if err != nil {
				return err
			}
			l.bus.PublishOutbound(bus.OutboundMessage{Content: final})
		case <-ctx.Done():
			slog.Info("Agent loop stopping")
			return ctx.Err()
		}
	}
}

// ProcessDirect handles one prompt outside the bus (single-message mode).
// Returns the final text response.
func (l *Loop) ProcessDirect(ctx context.Context, prompt string, onText func(string)) (string, error) {
	return l.runTurn(ctx, prompt, onText)
}

func (l *Loop) handle(ctx context.Context, prompt string) (string, error) {
	slog.Info("Processing prompt", "content", llmutils.Truncate(prompt, 80))

	return l.runTurn(ctx, prompt, func(text string) {
		l.bus.PublishOutbound(bus.OutboundMessage{Content: text, Progress: true})
	})
}

func (l *Loop) runTurn(ctx context.Context, prompt string, onText func(string)) (string, error) {
	l.history.AddUserText(prompt)

	final, err := l.driver.Run(ctx, &l.history, onText)
	if err != nil {
		return "", err
	}

	slog.Info("Response", "length", len(final))
	return final, nil
}
