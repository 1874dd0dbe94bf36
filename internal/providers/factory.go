// Package providers implements the inference backends behind
// schema.ModelClient: AWS Bedrock Converse and the Anthropic Messages API.
package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/tickertalk/tickertalk/internal/schema"
)

// Params are the raw values needed to construct any schema.ModelClient.
// Extracted from config.Config by the caller to avoid an import cycle.
type Params struct {
	Name    string // "bedrock" or "anthropic"
	Region  string // bedrock only
	APIKey  string // anthropic only
	APIBase string // anthropic only
	Timeout time.Duration
}

// New creates the ModelClient for the given params. An empty name selects
// bedrock.
func New(ctx context.Context, p Params) (schema.ModelClient, error) {
	switch p.Name {
	case "", "bedrock":
		return NewBedrockClient(ctx, p.Region, p.Timeout)
	case "anthropic":
		if p.APIKey == "" {
			return nil, fmt.Errorf("anthropic provider selected but no API key configured")
		}
		return NewAnthropicClient(p.APIKey, p.APIBase, p.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", p.Name)
	}
}
