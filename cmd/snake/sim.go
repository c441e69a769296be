package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagSimVariant    string
	flagSimDifficulty string
	flagSimTicks      int
	flagSimStep       time.Duration
	flagSimTurnChance float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Drive the simulation without a terminal UI.

Every tick advances the clock by --dt. A seeded steering policy turns away
from walls and the body, heads for food, and otherwise turns at random with
probability --turn-chance per tick. Round events are logged; a summary is printed at
the end. The same --seed always produces the same run.

Examples:
  snake sim --ticks 10000 --seed 42
  snake sim --variant instant --dt 50ms --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimVariant, "variant", snake.VariantClassic, "Rule variant (see 'snake list')")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 2000, "Number of ticks to simulate")
	simCmd.Flags().DurationVar(&flagSimStep, "dt", 100*time.Millisecond, "Simulated time per tick")
	simCmd.Flags().Float64Var(&flagSimTurnChance, "turn-chance", 0.1, "Chance of a random turn on each tick")
}

// simOptions controls a headless run.
type simOptions struct {
	Ticks      int
	Step       time.Duration
	TurnChance float64
	Seed       int64
}

// simSummary aggregates a headless run.
type simSummary struct {
	Ticks      int
	Moves      int
	Rounds     int
	WallDeaths int
	SelfDeaths int
	FoodEaten  int
	MaxLength  int
	BoardFull  int
	Final      snake.Snapshot
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadRules(flagSimVariant, flagSimDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr, "snake-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := simOptions{
		Ticks:      flagSimTicks,
		Step:       flagSimStep,
		TurnChance: flagSimTurnChance,
		Seed:       resolveSeed(),
	}
	logger.Info("simulation started", "variant", flagSimVariant, "seed", opts.Seed, "ticks", opts.Ticks, "dt", opts.Step)

	sum, err := simulate(cfg, opts, logger)
	if err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
	printSummary(os.Stdout, sum)
}

// simulate runs the controller for opts.Ticks ticks with the steering policy.
func simulate(cfg config.Config, opts simOptions, logger *log.Logger) (simSummary, error) {
	if opts.Step <= 0 {
		return simSummary{}, fmt.Errorf("sim: --dt must be positive, got %v", opts.Step)
	}

	game, err := snake.New(cfg, snake.WithSeed(opts.Seed), snake.WithLogger(logger))
	if err != nil {
		return simSummary{}, err
	}
	policy := rand.New(rand.NewSource(opts.Seed ^ 0x5eed))

	sum := simSummary{Rounds: 1, MaxLength: game.Snake().Len()}
	in := core.NewInputFrame()

	for range opts.Ticks {
		in.Clear()
		if game.State() == snake.StateGameOver {
			in.Set(core.ActionRestart)
		} else if d, ok := steer(game, policy, opts.TurnChance); ok {
			in.Set(directionAction(d))
		}

		res := game.Tick(opts.Step, in)
		sum.Ticks++
		if res.Moved {
			sum.Moves++
		}
		for _, e := range res.Events {
			switch e.Kind {
			case snake.EventAte:
				sum.FoodEaten++
			case snake.EventGameOver:
				if e.Cause == snake.CauseWall {
					sum.WallDeaths++
				} else {
					sum.SelfDeaths++
				}
			case snake.EventReset:
				sum.Rounds++
			case snake.EventBoardFull:
				sum.BoardFull++
			}
		}
		sum.MaxLength = max(sum.MaxLength, game.Snake().Len())
	}

	sum.Final = game.Snapshot()
	return sum, nil
}

// steer picks a direction for the next move, or false to keep the facing.
// Unsafe facings are always corrected when a safe turn exists.
func steer(g *snake.Game, rng *rand.Rand, turnChance float64) (core.Direction, bool) {
	s := g.Snake()
	cur := s.Direction()
	turns := []core.Direction{cur, turnLeft(cur), turnRight(cur)}

	safe := make([]core.Direction, 0, len(turns))
	for _, d := range turns {
		next := s.Head().Step(d)
		if g.Grid().Contains(next) && !s.Contains(next, false) {
			safe = append(safe, d)
		}
	}
	if len(safe) == 0 {
		return 0, false
	}

	if food, ok := g.Food(); ok {
		best, bestDist := safe[0], distance(s.Head().Step(safe[0]), food)
		for _, d := range safe[1:] {
			if dist := distance(s.Head().Step(d), food); dist < bestDist {
				best, bestDist = d, dist
			}
		}
		if rng.Float64() >= turnChance {
			return best, best != cur
		}
	}

	if safe[0] != cur || rng.Float64() < turnChance {
		d := safe[rng.Intn(len(safe))]
		return d, d != cur
	}
	return 0, false
}

func turnLeft(d core.Direction) core.Direction {
	switch d {
	case core.DirUp:
		return core.DirLeft
	case core.DirLeft:
		return core.DirDown
	case core.DirDown:
		return core.DirRight
	default:
		return core.DirUp
	}
}

func turnRight(d core.Direction) core.Direction {
	return turnLeft(d).Opposite()
}

func distance(a, b core.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func directionAction(d core.Direction) core.Action {
	switch d {
	case core.DirLeft:
		return core.ActionLeft
	case core.DirUp:
		return core.ActionUp
	case core.DirRight:
		return core.ActionRight
	default:
		return core.ActionDown
	}
}

func printSummary(w io.Writer, s simSummary) {
	fmt.Fprintln(w, "Simulation summary:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-12s %d\n", "ticks", s.Ticks)
	fmt.Fprintf(w, "  %-12s %d\n", "moves", s.Moves)
	fmt.Fprintf(w, "  %-12s %d\n", "rounds", s.Rounds)
	fmt.Fprintf(w, "  %-12s %d\n", "food eaten", s.FoodEaten)
	fmt.Fprintf(w, "  %-12s %d\n", "max length", s.MaxLength)
	fmt.Fprintf(w, "  %-12s %d wall, %d self\n", "deaths", s.WallDeaths, s.SelfDeaths)
	if s.BoardFull > 0 {
		fmt.Fprintf(w, "  %-12s %d ticks\n", "board full", s.BoardFull)
	}
	fmt.Fprintf(w, "  %-12s length %d, head %v, %s\n", "final", s.Final.Length, s.Final.Head, s.Final.State)
}
