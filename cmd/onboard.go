package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tickertalk/tickertalk/internal/config"
)

var onboardForce bool

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Write the default configuration file",
	RunE:  runOnboard,
}

func init() {
	onboardCmd.Flags().BoolVarP(&onboardForce, "force", "f", false, "Overwrite an existing config")
}

func runOnboard(_ *cobra.Command, _ []string) error {
	path := config.ConfigPath()

	if _, err := os.Stat(path); err == nil && !onboardForce {
		fmt.Printf("Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	cfg := config.DefaultConfig()
	if err := config.Save(&cfg, path); err != nil {
		return err
	}

	fmt.Printf("%s Wrote default config to %s\n", logo, path)
	fmt.Println("Edit it to pick a provider, then run: tickertalk agent")
	return nil
}
