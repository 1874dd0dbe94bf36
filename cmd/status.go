package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tickertalk/tickertalk/internal/config"
	"github.com/tickertalk/tickertalk/internal/market"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active configuration and loaded market data",
	RunE:  runStatus,
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := market.Load(cfg.Market.Manifest)
	if err != nil {
		return fmt.Errorf("load market data: %w", err)
	}

	fmt.Printf("%s tickertalk %s\n\n", logo, version)
	fmt.Printf("Config:    %s\n", config.ConfigPath())
	fmt.Printf("Provider:  %s\n", cfg.Providers.Name)
	fmt.Printf("Model:     %s\n", cfg.Agents.Defaults.Model)

	dataset := cfg.Market.Manifest
	if dataset == "" {
		dataset = "(embedded default)"
	}
	fmt.Printf("Dataset:   %s\n", dataset)
	fmt.Printf("Records:   %d\n", store.Len())
	fmt.Printf("Symbols:   %s\n", strings.Join(store.Symbols(), ", "))
	return nil
}
