package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

// ArithmeticTool performs addition, subtraction, multiplication, or division
// on two numbers with exact decimal arithmetic. The result is converted to a
// float only at the serialization boundary.
type ArithmeticTool struct{}

func NewArithmeticTool() *ArithmeticTool { return &ArithmeticTool{} }

func (t *ArithmeticTool) Name() string { return "add_subtract_multiply_divide" }
func (t *ArithmeticTool) Description() string {
	return "Perform addition, subtraction, multiplication, or division on two numbers."
}

func (t *ArithmeticTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"operation": {
				"type": "string",
				"description": "The operation to perform",
				"enum": ["add", "subtract", "multiply", "divide"]
			},
			"first_num": {
				"type": "number",
				"description": "The first number"
			},
			"second_num": {
				"type": "number",
				"description": "The second number"
			}
		},
		"required": ["operation", "first_num", "second_num"]
	}`)
}

func (t *ArithmeticTool) Execute(_ context.Context, args map[string]any) (any, error) {
	operation, err := stringArg(args, "operation")
	if err != nil {
		return nil, err
	}
	first, err := decimalArg(args, "first_num")
	if err != nil {
		return nil, err
	}
	second, err := decimalArg(args, "second_num")
	if err != nil {
		return nil, err
	}

	slog.Info("Performing arithmetic", "operation", operation, "first", first, "second", second)

	var result decimal.Decimal
	switch operation {
	case "add":
		result = first.Add(second)
	case "subtract":
		result = first.Sub(second)
	case "multiply":
		result = first.Mul(second)
	case "divide":
		if second.IsZero() {
			return nil, fmt.Errorf("division by zero")
		}
		result = first.Div(second)
	default:
		return nil, fmt.Errorf("Invalid operation %q: must be one of add, subtract, multiply, divide", operation)
	}

	return map[string]any{"result": result.InexactFloat64()}, nil
}

// PercentageChangeTool calculates the relative change from first_num to
// second_num: (second_num - first_num) / first_num.
type PercentageChangeTool struct{}

func NewPercentageChangeTool() *PercentageChangeTool { return &PercentageChangeTool{} }

func (t *PercentageChangeTool) Name() string { return "calculate_percentage_change" }
func (t *PercentageChangeTool) Description() string {
	return "Calculate the percentage difference between second_num and first_num. " +
		"If second_num is greater than first_num the result is positive; " +
		"if second_num is less than first_num the result is negative."
}

func (t *PercentageChangeTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"first_num": {
				"type": "number",
				"description": "The first number"
			},
			"second_num": {
				"type": "number",
				"description": "The second number"
			}
		},
		"required": ["first_num", "second_num"]
	}`)
}

func (t *PercentageChangeTool) Execute(_ context.Context, args map[string]any) (any, error) {
	first, err := decimalArg(args, "first_num")
	if err != nil {
		return nil, err
	}
	second, err := decimalArg(args, "second_num")
	if err != nil {
		return nil, err
	}

	slog.Info("Calculating percentage change", "first", first, "second", second)

	if first.IsZero() {
		return nil, fmt.Errorf("cannot calculate percentage change from zero")
	}

	change := second.Sub(first).Div(first)
	return map[string]any{"result": change.InexactFloat64()}, nil
}
