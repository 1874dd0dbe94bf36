package llmutils

import (
	"testing"

	"github.com/tickertalk/tickertalk/internal/schema"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("unexpected: %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("unexpected: %q", got)
	}
}

func TestExtractThinking(t *testing.T) {
	thought, rest := ExtractThinking("<thinking>plan the steps</thinking>\nHere is the answer.")
	if thought != "plan the steps" {
		t.Errorf("unexpected thought: %q", thought)
	}
	if rest != "Here is the answer." {
		t.Errorf("unexpected rest: %q", rest)
	}
}

func TestExtractThinking_NoTags(t *testing.T) {
	thought, rest := ExtractThinking("  plain answer  ")
	if thought != "" {
		t.Errorf("expected empty thought, got %q", thought)
	}
	if rest != "plain answer" {
		t.Errorf("unexpected rest: %q", rest)
	}
}

func TestToolHint(t *testing.T) {
	hint := ToolHint([]schema.ToolInvocation{
		{Name: "get_stock_price", Input: map[string]any{"symbol": "ACME"}},
	})
	if hint == "" {
		t.Error("expected non-empty hint")
	}
}
