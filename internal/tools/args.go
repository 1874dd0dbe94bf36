package tools

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Argument values cross the protocol boundary untyped: the backend is trusted
// to send the advertised argument names, never the advertised types. Every
// accessor here validates before the executor touches the value.

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q: expected string, got %T", key, v)
	}
	return s, nil
}

func dateArg(args map[string]any, key string) (time.Time, error) {
	s, err := stringArg(args, key)
	if err != nil {
		return time.Time{}, err
	}
	day, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("argument %q: invalid date %q, expected YYYY-MM-DD", key, s)
	}
	return day, nil
}

// decimalArg coerces a numeric argument into an exact decimal. Backends
// deliver numbers as JSON floats, numeric strings, or occasionally integers.
func decimalArg(args map[string]any, key string) (decimal.Decimal, error) {
	v, ok := args[key]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("missing required argument %q", key)
	}

	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("argument %q: invalid number %q", key, n.String())
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("argument %q: invalid number %q", key, n)
		}
		return d, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("argument %q: expected number, got %T", key, v)
	}
}
