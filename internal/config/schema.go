// Package config defines the tickertalk configuration schema.
// JSON keys use camelCase.
package config

// BedrockConfig configures the AWS Bedrock backend. Credentials come from
// the standard AWS chain; only the region lives here.
type BedrockConfig struct {
	Region string `json:"region"`
}

// AnthropicConfig holds credentials for the Anthropic Messages API backend.
type AnthropicConfig struct {
	APIKey  string `json:"apiKey"`
	APIBase string `json:"apiBase,omitempty"`
}

// ProvidersConfig selects and configures the inference backend.
type ProvidersConfig struct {
	Name      string          `json:"name"` // "bedrock" (default) or "anthropic"
	Bedrock   BedrockConfig   `json:"bedrock"`
	Anthropic AnthropicConfig `json:"anthropic"`
}

func defaultProvidersConfig() ProvidersConfig {
	return ProvidersConfig{
		Name:    "bedrock",
		Bedrock: BedrockConfig{Region: "us-east-2"},
	}
}

// AgentDefaults holds the fixed inference parameters and loop bounds.
type AgentDefaults struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"maxTokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	// MaxToolIter caps model/tool round-trips per prompt. Added safety
	// bound; the loop otherwise runs until the model stops.
	MaxToolIter int `json:"maxToolIterations"`
	// RequestTimeoutSec bounds one backend call. 0 disables the timeout.
	RequestTimeoutSec int `json:"requestTimeoutSeconds"`
}

func defaultAgentDefaults() AgentDefaults {
	return AgentDefaults{
		Model:       "us.amazon.nova-lite-v1:0",
		MaxTokens:   5120,
		Temperature: 0.7,
		TopP:        0.9,
		MaxToolIter: 20,
	}
}

// AgentsConfig wraps agent defaults.
type AgentsConfig struct {
	Defaults AgentDefaults `json:"defaults"`
}

// MarketConfig points at the market data to load. An empty manifest means
// the embedded default dataset.
type MarketConfig struct {
	Manifest string `json:"manifest,omitempty"`
}

// Config is the root configuration.
type Config struct {
	Providers ProvidersConfig `json:"providers"`
	Agents    AgentsConfig    `json:"agents"`
	Market    MarketConfig    `json:"market"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Providers: defaultProvidersConfig(),
		Agents:    AgentsConfig{Defaults: defaultAgentDefaults()},
	}
}
