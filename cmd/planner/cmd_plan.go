package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Koukyosyumei/MyPlan/internal/driver"
)

var (
	searchFlag    string
	heuristicFlag string
	dumpTaskFlag  bool
)

var planCmd = &cobra.Command{
	Use:   "plan <domain.pddl> <problem.pddl>",
	Short: "Find a plan transforming the problem's initial state into its goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&searchFlag, "search", "bfs", "search algorithm: bfs or astar")
	planCmd.Flags().StringVar(&heuristicFlag, "heuristic", "blind", "heuristic for astar: blind or landmark")
	planCmd.Flags().BoolVar(&dumpTaskFlag, "dump-task", false, "write the grounded task as JSON to stderr before searching")
}

func runPlan(cmd *cobra.Command, args []string) error {
	domainPath, problemPath := args[0], args[1]

	domainFile, err := os.Open(domainPath)
	if err != nil {
		return fmt.Errorf("opening domain file: %w", err)
	}
	defer domainFile.Close()

	problemFile, err := os.Open(problemPath)
	if err != nil {
		return fmt.Errorf("opening problem file: %w", err)
	}
	defer problemFile.Close()

	opts := driver.DefaultOptions()
	opts.Verbose = verbose
	opts.Logger = buildLogger()
	if dumpTaskFlag {
		opts.DumpTaskTo = os.Stderr
	}

	switch searchFlag {
	case "bfs":
		opts.Search = driver.BFS
	case "astar":
		opts.Search = driver.AStar
	default:
		return fmt.Errorf("unknown --search %q: want bfs or astar", searchFlag)
	}

	switch heuristicFlag {
	case "blind":
		opts.Heuristic = driver.Blind
	case "landmark":
		opts.Heuristic = driver.Landmark
	default:
		return fmt.Errorf("unknown --heuristic %q: want blind or landmark", heuristicFlag)
	}

	result, err := driver.Plan(domainFile, problemFile, opts)
	if err != nil {
		return err
	}

	if !result.Solved {
		fmt.Fprintln(os.Stderr, "No solution")
		os.Exit(1)
	}

	for _, action := range result.Plan {
		fmt.Println(action)
	}
	return nil
}
