// Package driver wires the collaborator-facing pieces together: parse
// domain/problem PDDL, ground, pick a search algorithm and heuristic,
// and run it (spec.md section 2, "Driver: wires parser -> grounder ->
// task -> search -> plan").
package driver

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Koukyosyumei/MyPlan/internal/grounder"
	"github.com/Koukyosyumei/MyPlan/internal/heuristic"
	"github.com/Koukyosyumei/MyPlan/internal/pddl"
	"github.com/Koukyosyumei/MyPlan/internal/search"
)

// SearchAlgorithm selects the search driver to run.
type SearchAlgorithm string

const (
	BFS   SearchAlgorithm = "bfs"
	AStar SearchAlgorithm = "astar"
)

// HeuristicKind selects the heuristic fed to A*. Ignored by BFS.
type HeuristicKind string

const (
	Blind    HeuristicKind = "blind"
	Landmark HeuristicKind = "landmark"
)

// Options configures one plan call end to end.
type Options struct {
	Search                        SearchAlgorithm
	Heuristic                     HeuristicKind
	RemoveStaticsFromInitialState bool
	RemoveIrrelevantOperators     bool
	Verbose                       bool
	Logger                        *zap.SugaredLogger

	// DumpTaskTo, if set, receives a JSON snapshot of the grounded task
	// before search begins (debugging aid, spec.md section 6's "no
	// persisted state" still holds: nothing is written unless asked).
	DumpTaskTo io.Writer
}

// DefaultOptions matches the grounder's and spec's defaults: both
// grounding passes on, BFS, no heuristic needed.
func DefaultOptions() Options {
	return Options{
		Search:                        BFS,
		Heuristic:                     Blind,
		RemoveStaticsFromInitialState: true,
		RemoveIrrelevantOperators:     true,
	}
}

// Plan parses domainSrc/problemSrc, grounds the result, and runs the
// configured search. Parse errors and internal-inconsistency errors are
// returned as err; "no solution" is reported via search.Result.Solved,
// never as an error (spec.md section 7).
func Plan(domainSrc, problemSrc io.Reader, opts Options) (search.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	domain, err := pddl.ParseDomain(domainSrc)
	if err != nil {
		return search.Result{}, errors.Wrap(err, "parsing domain")
	}
	problem, err := pddl.ParseProblem(problemSrc, domain)
	if err != nil {
		return search.Result{}, errors.Wrap(err, "parsing problem")
	}

	groundOpts := grounder.Options{
		RemoveStaticsFromInitialState: opts.RemoveStaticsFromInitialState,
		RemoveIrrelevantOperators:     opts.RemoveIrrelevantOperators,
		Verbose:                       opts.Verbose,
	}
	t, err := grounder.Ground(problem, groundOpts, logger)
	if err != nil {
		return search.Result{}, err
	}
	logger.Debugw("grounded task", "facts", t.NumFacts(), "operators", len(t.Operators))

	if opts.DumpTaskTo != nil {
		if err := t.WriteJSON(opts.DumpTaskTo); err != nil {
			return search.Result{}, errors.Wrap(err, "dumping grounded task")
		}
	}

	switch opts.Search {
	case AStar:
		var h heuristic.Heuristic
		switch opts.Heuristic {
		case Landmark:
			h = heuristic.NewLandmark(t)
		default:
			h = heuristic.Blind{}
		}
		return search.AStar(t, h, logger), nil
	default:
		return search.BFS(t, logger), nil
	}
}
