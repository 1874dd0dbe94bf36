package schema

// AgentSettings carries the fixed inference parameters and loop bounds used
// by the conversation driver.
type AgentSettings struct {
	Model         string
	MaxTokens     int
	Temperature   float64
	TopP          float64
	StopSequences []string
	// MaxToolIterations bounds the number of model/tool round-trips in one
	// run. This is an added safety bound, not a protocol behaviour.
	MaxToolIterations int
}

// ChatOptions projects the settings into per-request options.
func (s AgentSettings) ChatOptions() ChatOptions {
	return ChatOptions{
		Model:         s.Model,
		MaxTokens:     s.MaxTokens,
		Temperature:   s.Temperature,
		TopP:          s.TopP,
		StopSequences: s.StopSequences,
	}
}
