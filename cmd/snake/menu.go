package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu, then play",
	Long: `Start snake in interactive menu mode.

Use arrow keys or j/k to navigate and Enter to start a variant.
Press B or Esc on the board to return to the menu.

Examples:
  snake menu
  snake menu --difficulty hard --sound`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addPlayFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	rules, err := config.Load(flagConfig)
	if err == nil {
		err = config.ApplyPreset(&rules, config.DifficultyPreset(flagDifficulty))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := hostLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts := []tui.Option{tui.WithFPS(flagFPS)}
	if sound := openSound(logger); sound != nil {
		defer sound.Close()
		opts = append(opts, tui.WithSound(sound))
	}

	if err := tui.RunSession(rules, runtimeConfig(), logger, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
