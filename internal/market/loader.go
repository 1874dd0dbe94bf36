package market

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "embed"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed data/market_history.csv
var defaultHistory []byte

// csvColumns is the required header of a price history CSV.
var csvColumns = []string{"symbol", "trade_date", "open_price", "close_price", "low_price", "high_price"}

// Manifest lists the CSV datasets to load. Paths are resolved relative to the
// manifest file's directory.
type Manifest struct {
	Datasets []Dataset `yaml:"datasets"`
}

// Dataset is one named CSV file in a manifest.
type Dataset struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Default returns a Store loaded from the embedded price history.
func Default() *Store {
	records, err := ParseCSV(bytes.NewReader(defaultHistory))
	if err != nil {
		// The embedded dataset is validated by tests; reaching this means a
		// broken build, not a runtime condition.
		panic(fmt.Sprintf("embedded market history invalid: %v", err))
	}
	return NewStore(records)
}

// Load builds the Store for a run. With an empty manifest path it returns the
// embedded default dataset; otherwise it loads every dataset in the manifest.
func Load(manifestPath string) (*Store, error) {
	if manifestPath == "" {
		return Default(), nil
	}
	return LoadManifest(manifestPath)
}

// LoadManifest reads a YAML manifest and loads all listed CSV files
// concurrently. Record order across files is by manifest position, so the
// resulting table is deterministic.
func LoadManifest(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Datasets) == 0 {
		return nil, fmt.Errorf("manifest %s lists no datasets", path)
	}

	base := filepath.Dir(path)
	perFile := make([][]StockPrice, len(m.Datasets))

	var g errgroup.Group
	for i, ds := range m.Datasets {
		i, ds := i, ds
		g.Go(func() error {
			records, err := LoadFile(filepath.Join(base, ds.Path))
			if err != nil {
				return fmt.Errorf("dataset %q: %w", ds.Name, err)
			}
			perFile[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []StockPrice
	for i, records := range perFile {
		slog.Info("Loaded market dataset", "name", m.Datasets[i].Name, "records", len(records))
		all = append(all, records...)
	}
	return NewStore(all), nil
}

// LoadFile parses one CSV file of price records.
func LoadFile(path string) ([]StockPrice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ParseCSV reads price records from r. The header must match csvColumns.
func ParseCSV(r io.Reader) ([]StockPrice, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(csvColumns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvColumns), len(header))
	}
	for i, want := range csvColumns {
		if header[i] != want {
			return nil, fmt.Errorf("column %d: expected %q, got %q", i, want, header[i])
		}
	}

	var out []StockPrice
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		record, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, record)
	}
	return out, nil
}

func parseRow(row []string) (StockPrice, error) {
	day, err := time.Parse(time.DateOnly, row[1])
	if err != nil {
		return StockPrice{}, fmt.Errorf("trade_date %q: %w", row[1], err)
	}

	prices := make([]decimal.Decimal, 4)
	for i, col := range row[2:] {
		d, err := decimal.NewFromString(col)
		if err != nil {
			return StockPrice{}, fmt.Errorf("%s %q: %w", csvColumns[i+2], col, err)
		}
		prices[i] = d
	}

	return StockPrice{
		Symbol:    row[0],
		TradeDate: day,
		Open:      prices[0],
		Close:     prices[1],
		Low:       prices[2],
		High:      prices[3],
	}, nil
}
