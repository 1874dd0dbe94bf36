package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tickertalk/tickertalk/internal/market"
)

// TradingDayTool reports whether any price record exists for a given date.
type TradingDayTool struct {
	store *market.Store
}

// NewTradingDayTool creates a TradingDayTool backed by the given Store.
func NewTradingDayTool(store *market.Store) *TradingDayTool {
	return &TradingDayTool{store: store}
}

func (t *TradingDayTool) Name() string { return "is_trading_day" }
func (t *TradingDayTool) Description() string {
	return "Return true or false if a given date is a trading day."
}

func (t *TradingDayTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"date": {
				"type": "string",
				"description": "The date to check in YYYY-MM-DD format"
			}
		},
		"required": ["date"]
	}`)
}

func (t *TradingDayTool) Execute(_ context.Context, args map[string]any) (any, error) {
	day, err := dateArg(args, "date")
	if err != nil {
		return nil, err
	}

	slog.Info("Checking trading day", "date", day.Format(time.DateOnly))

	return map[string]any{"result": t.store.IsTradingDay(day)}, nil
}

// StockPriceTool looks up the open, close, low, and high prices for an exact
// (symbol, date) pair.
type StockPriceTool struct {
	store *market.Store
}

// NewStockPriceTool creates a StockPriceTool backed by the given Store.
func NewStockPriceTool(store *market.Store) *StockPriceTool {
	return &StockPriceTool{store: store}
}

func (t *StockPriceTool) Name() string { return "get_stock_price" }
func (t *StockPriceTool) Description() string {
	return "Get the stock open, close, low, and high prices for a given symbol and date."
}

func (t *StockPriceTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"symbol": {
				"type": "string",
				"description": "The symbol of the stock"
			},
			"date": {
				"type": "string",
				"description": "The date of the stock price in YYYY-MM-DD format"
			}
		},
		"required": ["symbol", "date"]
	}`)
}

func (t *StockPriceTool) Execute(_ context.Context, args map[string]any) (any, error) {
	symbol, err := stringArg(args, "symbol")
	if err != nil {
		return nil, err
	}
	day, err := dateArg(args, "date")
	if err != nil {
		return nil, err
	}

	slog.Info("Getting stock price", "symbol", symbol, "date", day.Format(time.DateOnly))

	record, ok := t.store.Lookup(symbol, day)
	if !ok {
		return nil, fmt.Errorf("no price found for %s on %s", symbol, day.Format(time.DateOnly))
	}

	// Exact decimals internally; floats only here, at the protocol boundary.
	return map[string]any{
		"symbol":      record.Symbol,
		"trade_date":  record.TradeDate.Format(time.DateOnly),
		"open_price":  record.Open.InexactFloat64(),
		"close_price": record.Close.InexactFloat64(),
		"low_price":   record.Low.InexactFloat64(),
		"high_price":  record.High.InexactFloat64(),
	}, nil
}
