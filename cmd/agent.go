package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tickertalk/tickertalk/internal/agent"
	"github.com/tickertalk/tickertalk/internal/bus"
	"github.com/tickertalk/tickertalk/internal/config"
	"github.com/tickertalk/tickertalk/internal/dependency"
	"github.com/tickertalk/tickertalk/internal/shared/llmutils"
	"github.com/tickertalk/tickertalk/internal/shared/termutils"
)

var agentMessage string

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Interact with the agent",
	RunE:  runAgent,
}

func init() {
	agentCmd.Flags().StringVarP(&agentMessage, "message", "m", "", "Send a single message and exit")
}

var exitCommands = map[string]bool{
	"exit":  true,
	"quit":  true,
	"/exit": true,
	"/quit": true,
	":q":    true,
}

func runAgent(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	container, err := dependency.New(cfg)
	if err != nil {
		return err
	}

	if agentMessage != "" {
		return runSingleMessage(container.AgentLoop())
	}

	return runInteractive(container.AgentLoop(), container.MessageBus())
}

// runSingleMessage sends one prompt to the agent and prints the response.
func runSingleMessage(loop *agent.Loop) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := loop.ProcessDirect(ctx, agentMessage, printText)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	// Intermediate turns were already printed via the callback; the final
	// text arrives through it too, so res is only needed for the empty case.
	if res == "" {
		fmt.Println(termutils.Output("(no response)"))
	}
	return nil
}

// runInteractive starts the REPL loop: reads lines from stdin, sends each to
// the agent via the bus, and waits for each reply before prompting again.
func runInteractive(loop *agent.Loop, msgBus bus.Bus) error {
	fmt.Printf("%s Interactive mode (type 'exit' or Ctrl+C to quit)\n\n", logo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listenForSignals(cancel)

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")

		if !scanner.Scan() {
			fmt.Println("\nGoodbye!")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if exitCommands[strings.ToLower(line)] {
			fmt.Println("Goodbye!")
			return nil
		}

		if err := sendAndWait(ctx, msgBus, errCh, line); err != nil {
			return err
		}
	}
}

// listenForSignals cancels ctx on SIGINT or SIGTERM and exits.
func listenForSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		cancel()
		os.Exit(0)
	}()
}

// sendAndWait pushes a prompt onto the inbound bus and blocks until the agent
// publishes the final reply, fails, or ctx is cancelled. A loop error is
// fatal to the run.
func sendAndWait(ctx context.Context, msgBus bus.Bus, errCh <-chan error, content string) error {
	msgBus.PublishInbound(bus.InboundMessage{Content: content})

	for {
		select {
		case msg := <-msgBus.OutboundChan():
			if msg.Progress {
				printText(msg.Content)
				continue
			}
			return nil
		case err := <-errCh:
			return err
		case <-ctx.Done():
			return nil
		}
	}
}

// printText renders one model text block, surfacing any embedded thinking.
func printText(text string) {
	thought, rest := llmutils.ExtractThinking(text)
	if thought != "" {
		fmt.Println(termutils.Thought(thought))
	}
	if rest != "" {
		fmt.Println(termutils.Output(rest))
	}
}
