// Package market holds the read-only in-memory table of historical stock
// prices queried by the agent's market tools. The table is built once at
// startup by the assembly code and injected; nothing mutates it afterwards.
package market

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// StockPrice is one daily price record. Prices are exact decimals so
// financial comparisons never pick up binary floating-point drift.
type StockPrice struct {
	Symbol    string
	TradeDate time.Time // date precision, normalised to UTC midnight
	Open      decimal.Decimal
	Close     decimal.Decimal
	Low       decimal.Decimal
	High      decimal.Decimal
}

// Store is the read-only price table.
type Store struct {
	records []StockPrice
	byKey   map[string]int  // "SYMBOL|YYYY-MM-DD" -> index into records
	days    map[string]bool // "YYYY-MM-DD" -> at least one record that day
}

// NewStore builds a Store from records. Later duplicates of the same
// (symbol, date) pair win, matching a naive last-row-loaded table.
func NewStore(records []StockPrice) *Store {
	s := &Store{
		records: records,
		byKey:   make(map[string]int, len(records)),
		days:    make(map[string]bool, len(records)),
	}
	for i, r := range records {
		day := r.TradeDate.Format(time.DateOnly)
		s.byKey[r.Symbol+"|"+day] = i
		s.days[day] = true
	}
	return s
}

// Lookup returns the record for the exact (symbol, date) pair, if any.
func (s *Store) Lookup(symbol string, day time.Time) (StockPrice, bool) {
	i, ok := s.byKey[symbol+"|"+day.Format(time.DateOnly)]
	if !ok {
		return StockPrice{}, false
	}
	return s.records[i], true
}

// IsTradingDay reports whether any record exists for the given date,
// regardless of symbol.
func (s *Store) IsTradingDay(day time.Time) bool {
	return s.days[day.Format(time.DateOnly)]
}

// Len returns the number of loaded records.
func (s *Store) Len() int { return len(s.records) }

// Symbols returns the distinct symbols in the table, sorted.
func (s *Store) Symbols() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.records {
		if !seen[r.Symbol] {
			seen[r.Symbol] = true
			out = append(out, r.Symbol)
		}
	}
	sort.Strings(out)
	return out
}
