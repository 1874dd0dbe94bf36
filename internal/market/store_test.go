package market

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const sampleCSV = `symbol,trade_date,open_price,close_price,low_price,high_price
ACME,2024-01-02,10.00,12.50,9.75,12.80
ACME,2024-01-03,12.50,11.90,11.40,12.60
WIDG,2024-01-02,55.10,54.20,53.90,55.40
`

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	day, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return day
}

func TestParseCSV(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	first := records[0]
	if first.Symbol != "ACME" {
		t.Errorf("expected symbol ACME, got %q", first.Symbol)
	}
	if got := first.TradeDate.Format(time.DateOnly); got != "2024-01-02" {
		t.Errorf("expected trade date 2024-01-02, got %s", got)
	}
	if !first.Close.Equal(decimal.RequireFromString("12.50")) {
		t.Errorf("expected close 12.50, got %s", first.Close)
	}
}

func TestParseCSV_BadHeader(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("symbol,date\nACME,2024-01-02\n"))
	if err == nil {
		t.Fatal("expected error for wrong header")
	}
}

func TestParseCSV_BadPrice(t *testing.T) {
	bad := "symbol,trade_date,open_price,close_price,low_price,high_price\nACME,2024-01-02,ten,12.50,9.75,12.80\n"
	_, err := ParseCSV(strings.NewReader(bad))
	if err == nil || !strings.Contains(err.Error(), "open_price") {
		t.Fatalf("expected open_price error, got: %v", err)
	}
}

func TestParseCSV_BadDate(t *testing.T) {
	bad := "symbol,trade_date,open_price,close_price,low_price,high_price\nACME,01/02/2024,10.00,12.50,9.75,12.80\n"
	_, err := ParseCSV(strings.NewReader(bad))
	if err == nil || !strings.Contains(err.Error(), "trade_date") {
		t.Fatalf("expected trade_date error, got: %v", err)
	}
}

func TestStoreLookup(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := NewStore(records)

	rec, ok := store.Lookup("ACME", mustDate(t, "2024-01-02"))
	if !ok {
		t.Fatal("expected a record for ACME on 2024-01-02")
	}
	if !rec.High.Equal(decimal.RequireFromString("12.80")) {
		t.Errorf("expected high 12.80, got %s", rec.High)
	}

	if _, ok := store.Lookup("ACME", mustDate(t, "2024-01-06")); ok {
		t.Error("expected no record for ACME on 2024-01-06")
	}
	if _, ok := store.Lookup("NOPE", mustDate(t, "2024-01-02")); ok {
		t.Error("expected no record for unknown symbol")
	}
}

func TestStoreIsTradingDay(t *testing.T) {
	records, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store := NewStore(records)

	// 2024-01-02 has records for two symbols; still just a boolean.
	if !store.IsTradingDay(mustDate(t, "2024-01-02")) {
		t.Error("expected 2024-01-02 to be a trading day")
	}
	if store.IsTradingDay(mustDate(t, "2024-01-06")) {
		t.Error("expected 2024-01-06 to not be a trading day")
	}
}

func TestStoreSymbols(t *testing.T) {
	records, _ := ParseCSV(strings.NewReader(sampleCSV))
	store := NewStore(records)

	symbols := store.Symbols()
	if len(symbols) != 2 || symbols[0] != "ACME" || symbols[1] != "WIDG" {
		t.Errorf("unexpected symbols: %v", symbols)
	}
}

func TestDefault_EmbeddedDataset(t *testing.T) {
	store := Default()
	if store.Len() == 0 {
		t.Fatal("embedded dataset is empty")
	}
	if !store.IsTradingDay(mustDate(t, "2024-01-02")) {
		t.Error("expected 2024-01-02 in the embedded dataset")
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()

	csvA := "symbol,trade_date,open_price,close_price,low_price,high_price\nACME,2024-01-02,10.00,12.50,9.75,12.80\n"
	csvB := "symbol,trade_date,open_price,close_price,low_price,high_price\nWIDG,2024-01-03,55.10,54.20,53.90,55.40\n"
	if err := os.WriteFile(filepath.Join(dir, "a.csv"), []byte(csvA), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.csv"), []byte(csvB), 0o600); err != nil {
		t.Fatal(err)
	}

	manifest := "datasets:\n  - name: a\n    path: a.csv\n  - name: b\n    path: b.csv\n"
	manifestPath := filepath.Join(dir, "datasets.yaml")
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := LoadManifest(manifestPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", store.Len())
	}
	if _, ok := store.Lookup("WIDG", mustDate(t, "2024-01-03")); !ok {
		t.Error("expected WIDG record from second dataset")
	}
}

func TestLoadManifest_MissingDataset(t *testing.T) {
	dir := t.TempDir()
	manifest := "datasets:\n  - name: gone\n    path: gone.csv\n"
	manifestPath := filepath.Join(dir, "datasets.yaml")
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadManifest(manifestPath); err == nil {
		t.Fatal("expected error for missing dataset file")
	}
}

func TestLoadManifest_Empty(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "datasets.yaml")
	if err := os.WriteFile(manifestPath, []byte("datasets: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadManifest(manifestPath); err == nil {
		t.Fatal("expected error for empty manifest")
	}
}
