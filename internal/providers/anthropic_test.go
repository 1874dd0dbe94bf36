package providers

import (
	"encoding/json"
	"testing"

	"github.com/tickertalk/tickertalk/internal/schema"
)

func TestParseAnthropicResponse_TextAndToolUse(t *testing.T) {
	raw := []byte(`{
		"content": [
			{"type": "text", "text": "Looking that up."},
			{"type": "tool_use", "id": "toolu_1", "name": "get_stock_price",
			 "input": {"symbol": "ACME", "date": "2024-01-02"}}
		],
		"stop_reason": "tool_use",
		"usage": {"input_tokens": 50, "output_tokens": 20}
	}`)

	resp, err := parseAnthropicResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.StopReason != schema.StopToolUse {
		t.Errorf("expected tool_use stop reason, got %s", resp.StopReason)
	}
	if resp.Message.Role != schema.RoleAssistant {
		t.Errorf("expected assistant role, got %s", resp.Message.Role)
	}
	if len(resp.Message.Content) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(resp.Message.Content))
	}

	text := resp.Message.Content[0]
	if text.Kind != schema.BlockText || text.Text != "Looking that up." {
		t.Errorf("unexpected text block: %+v", text)
	}

	use := resp.Message.Content[1]
	if use.Kind != schema.BlockToolUse {
		t.Fatalf("expected tool_use block, got %s", use.Kind)
	}
	if use.ToolUse.ID != "toolu_1" || use.ToolUse.Name != "get_stock_price" {
		t.Errorf("unexpected tool use: %+v", use.ToolUse)
	}
	if use.ToolUse.Input["symbol"] != "ACME" {
		t.Errorf("unexpected input: %v", use.ToolUse.Input)
	}

	if resp.Usage["input_tokens"] != 50 || resp.Usage["output_tokens"] != 20 {
		t.Errorf("unexpected usage: %v", resp.Usage)
	}
}

func TestParseAnthropicResponse_EndTurn(t *testing.T) {
	raw := []byte(`{
		"content": [{"type": "text", "text": "All done."}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 10, "output_tokens": 5}
	}`)

	resp, err := parseAnthropicResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != schema.StopEndTurn {
		t.Errorf("expected end_turn, got %s", resp.StopReason)
	}
}

func TestParseAnthropicResponse_NilToolInput(t *testing.T) {
	raw := []byte(`{
		"content": [{"type": "tool_use", "id": "toolu_2", "name": "is_trading_day"}],
		"stop_reason": "tool_use"
	}`)

	resp, err := parseAnthropicResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	use := resp.Message.Content[0]
	if use.ToolUse.Input == nil {
		t.Error("expected non-nil input map for omitted input")
	}
}

func TestConvertMessages_ToolResults(t *testing.T) {
	history := schema.NewMessages(
		schema.NewUserMessage("check"),
		schema.Message{
			Role: schema.RoleAssistant,
			Content: []schema.ContentBlock{
				schema.NewToolUseBlock("use-1", "is_trading_day", map[string]any{"date": "2024-01-02"}),
			},
		},
		schema.NewToolResultMessage([]schema.ToolResultBlock{
			{ID: "use-1", Status: schema.StatusSuccess, Content: map[string]any{"result": true}},
			{ID: "use-2", Status: schema.StatusError, Content: "tool not found"},
		}),
	)

	wire := convertMessages(history)
	if len(wire) != 3 {
		t.Fatalf("expected 3 wire messages, got %d", len(wire))
	}

	results := wire[2]["content"].([]any)
	if len(results) != 2 {
		t.Fatalf("expected 2 result blocks, got %d", len(results))
	}

	ok := results[0].(map[string]any)
	if ok["type"] != "tool_result" || ok["tool_use_id"] != "use-1" {
		t.Errorf("unexpected success block: %v", ok)
	}
	if ok["is_error"] != false {
		t.Errorf("success block marked as error: %v", ok)
	}

	failed := results[1].(map[string]any)
	if failed["is_error"] != true {
		t.Errorf("error block not marked: %v", failed)
	}
	if failed["content"] != "tool not found" {
		t.Errorf("unexpected error content: %v", failed["content"])
	}
}

func TestConvertTools(t *testing.T) {
	specs := []schema.ToolSpec{
		{
			Name:        "is_trading_day",
			Description: "Return true or false if a given date is a trading day.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"date":{"type":"string"}},"required":["date"]}`),
		},
	}

	wire := convertTools(specs)
	if len(wire) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(wire))
	}
	if wire[0]["name"] != "is_trading_day" {
		t.Errorf("unexpected name: %v", wire[0]["name"])
	}
	if _, ok := wire[0]["input_schema"]; !ok {
		t.Error("missing input_schema")
	}
}
