package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tickertalk/tickertalk/internal/schema"
	"github.com/tickertalk/tickertalk/internal/shared/llmutils"
)

const anthropicVersion = "2023-06-01"

// AnthropicClient implements schema.ModelClient against the Anthropic
// Messages API over direct HTTP.
type AnthropicClient struct {
	apiKey     string
	apiBase    string
	httpClient *http.Client
}

// NewAnthropicClient constructs a client. apiBase defaults to the public
// endpoint; timeout 0 means no client-side timeout.
func NewAnthropicClient(apiKey, apiBase string, timeout time.Duration) *AnthropicClient {
	apiBase = llmutils.StringOrDefault(apiBase, "https://api.anthropic.com/v1")
	return &AnthropicClient{
		apiKey:     apiKey,
		apiBase:    strings.TrimRight(apiBase, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Chat implements schema.ModelClient.
func (c *AnthropicClient) Chat(
	ctx context.Context,
	system string,
	history schema.Messages,
	tools []schema.ToolSpec,
	opts schema.ChatOptions,
) (schema.ModelResponse, error) {
	body := map[string]any{
		"model":       opts.Model,
		"messages":    convertMessages(history),
		"max_tokens":  opts.MaxTokens,
		"temperature": opts.Temperature,
	}
	if opts.TopP > 0 {
		body["top_p"] = opts.TopP
	}
	if len(opts.StopSequences) > 0 {
		body["stop_sequences"] = opts.StopSequences
	}
	if system != "" {
		body["system"] = system
	}
	if len(tools) > 0 {
		body["tools"] = convertTools(tools)
	}

	data, err := json.Marshal(body)
	if err != nil {
		return schema.ModelResponse{}, fmt.Errorf("marshal anthropic request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBase+"/messages", bytes.NewReader(data))
	if err != nil {
		return schema.ModelResponse{}, fmt.Errorf("build anthropic request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return schema.ModelResponse{}, fmt.Errorf("anthropic HTTP request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return schema.ModelResponse{}, fmt.Errorf("read anthropic response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return schema.ModelResponse{}, fmt.Errorf("anthropic HTTP %d: %s", resp.StatusCode, friendlyHTTPError(resp.StatusCode, raw))
	}

	return parseAnthropicResponse(raw)
}

// convertMessages converts typed messages to Anthropic's wire format.
func convertMessages(history schema.Messages) []map[string]any {
	out := make([]map[string]any, 0, len(history.Messages))
	for _, msg := range history.Messages {
		blocks := make([]any, 0, len(msg.Content))
		for _, b := range msg.Content {
			switch b.Kind {
			case schema.BlockText:
				blocks = append(blocks, map[string]any{"type": "text", "text": b.Text})
			case schema.BlockToolUse:
				blocks = append(blocks, map[string]any{
					"type":  "tool_use",
					"id":    b.ToolUse.ID,
					"name":  b.ToolUse.Name,
					"input": b.ToolUse.Input,
				})
			case schema.BlockToolResult:
				blocks = append(blocks, map[string]any{
					"type":        "tool_result",
					"tool_use_id": b.ToolResult.ID,
					"content":     anyToString(b.ToolResult.Content),
					"is_error":    b.ToolResult.Status == schema.StatusError,
				})
			}
		}
		out = append(out, map[string]any{"role": string(msg.Role), "content": blocks})
	}
	return out
}

// convertTools converts advertised specs to Anthropic tool format.
func convertTools(tools []schema.ToolSpec) []map[string]any {
	out := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		out = append(out, map[string]any{
			"name":         t.Name,
			"description":  t.Description,
			"input_schema": t.InputSchema,
		})
	}
	return out
}

// anthropicRespBody models the Anthropic Messages API response.
type anthropicRespBody struct {
	Content []struct {
		Type  string         `json:"type"`
		Text  string         `json:"text"`  // type=text
		ID    string         `json:"id"`    // type=tool_use
		Name  string         `json:"name"`  // type=tool_use
		Input map[string]any `json:"input"` // type=tool_use
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func parseAnthropicResponse(raw []byte) (schema.ModelResponse, error) {
	var body anthropicRespBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return schema.ModelResponse{}, fmt.Errorf("parse anthropic response: %w", err)
	}

	msg := schema.Message{Role: schema.RoleAssistant}
	for _, block := range body.Content {
		switch block.Type {
		case "text":
			msg.Content = append(msg.Content, schema.NewTextBlock(block.Text))
		case "tool_use":
			input := block.Input
			if input == nil {
				input = map[string]any{}
			}
			msg.Content = append(msg.Content, schema.NewToolUseBlock(block.ID, block.Name, input))
		}
	}

	usage := map[string]int{
		"input_tokens":  body.Usage.InputTokens,
		"output_tokens": body.Usage.OutputTokens,
	}

	return schema.ModelResponse{
		Message:    msg,
		StopReason: schema.StopReason(body.StopReason),
		Usage:      usage,
	}, nil
}

func friendlyHTTPError(code int, body []byte) string {
	if code == http.StatusTooManyRequests {
		return "rate limit exceeded"
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}

func anyToString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, _ := json.Marshal(v)
	return string(b)
}
