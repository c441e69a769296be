// snake runs a tick-driven grid snake simulation in the terminal.
//
// Usage:
//
//	snake list              - List rule variants
//	snake play              - Play in the terminal
//	snake menu              - Pick a variant interactively, then play
//	snake sim               - Run a headless seeded simulation
//	snake serve             - Start SSH server for remote play
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Rules YAML (default: search ~/.snake/configs, ./configs)
//	--fps <rate>        - Host frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible food placement
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a tick-driven grid snake in your terminal",
	Long: `Snake moves one cell per movement interval, grows by one segment for
every food it eats and restarts the round when it hits a wall or itself.

Available commands:
  list     - Show the rule variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  sim      - Headless simulation with a random steering policy
  serve    - Start SSH server for remote play
  config   - Print the effective rules as YAML

Examples:
  snake play
  snake play --variant patient --difficulty hard
  snake sim --ticks 5000 --seed 7
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a rules YAML file")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
