package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	flagConfigVariant    string
	flagConfigDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules as YAML",
	Long: `Print the rules a session would use after the config search,
the variant and the difficulty preset have been applied.

The output is a valid config file:
  snake config > ~/.snake/configs/snake.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigVariant, "variant", "classic", "Rule variant to apply")
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadRules(flagConfigVariant, flagConfigDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // stdout
}
