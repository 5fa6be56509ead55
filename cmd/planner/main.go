// Command myplan is the CLI collaborator spec.md section 6 describes:
// `myplan plan <domain.pddl> <problem.pddl> [--search bfs|astar]
// [--heuristic blind|landmark]`, printing one ground operator per line
// on success and exiting 1 with "No solution" on proven unsolvability.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "myplan",
	Short: "A classical STRIPS/PDDL planner",
	Long: `myplan grounds a PDDL domain and problem into ground operators
and searches for a plan using breadth-first search or A* with an
admissible landmark heuristic.`,
}

func buildLogger() *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := config.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(2)
	}
	return logger.Sugar()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(planCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
