package tools

import (
	"sort"

	"github.com/tickertalk/tickertalk/internal/schema"
)

// ToolName is the canonical name of a built-in tool.
type ToolName string

const (
	ToolTradingDay       ToolName = "is_trading_day"
	ToolStockPrice       ToolName = "get_stock_price"
	ToolArithmetic       ToolName = "add_subtract_multiply_divide"
	ToolPercentageChange ToolName = "calculate_percentage_change"
)

// Registry holds the fixed, hand-registered tool set for a run.
// It is immutable after Build; the advertised specs never change mid-run.
type Registry struct {
	tools map[string]schema.Tool
}

// Get returns the tool with the given name, or nil if not found.
func (r *Registry) Get(name string) schema.Tool {
	return r.tools[name]
}

// Specs returns the advertised descriptions of every registered tool,
// sorted by name so repeated calls produce the identical sequence.
func (r *Registry) Specs() []schema.ToolSpec {
	out := make([]schema.ToolSpec, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, schema.SpecOf(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.tools) }
