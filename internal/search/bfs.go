package search

import (
	"go.uber.org/zap"

	"github.com/Koukyosyumei/MyPlan/internal/searchspace"
	"github.com/Koukyosyumei/MyPlan/internal/task"
)

// BFS runs a FIFO breadth-first search over t, which is optimal for the
// unit-cost tasks this planner handles (spec.md section 4.4).
func BFS(t *task.Task, logger *zap.SugaredLogger) Result {
	nodes := []searchspace.Node{searchspace.Root(t.Initial, t.InitialHash)}
	closed := map[uint64]struct{}{t.InitialHash: {}}
	queue := []int{0}

	expanded := 0
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		node := nodes[idx]
		expanded++

		if t.GoalReached(node.State) {
			logger.Debugw("bfs solved", "nodesExpanded", expanded, "planLength", node.G)
			return Result{Plan: searchspace.ExtractPlan(nodes, idx), Solved: true, NodesExpanded: expanded}
		}

		for _, succ := range t.Successors(node.State, node.Hash) {
			if _, seen := closed[succ.Hash]; seen {
				continue
			}
			closed[succ.Hash] = struct{}{}
			child := searchspace.Child(idx, node.G, succ.OpName, succ.State, succ.Hash)
			nodes = append(nodes, child)
			queue = append(queue, len(nodes)-1)
		}
	}

	logger.Debugw("bfs exhausted", "nodesExpanded", expanded)
	return Result{Solved: false, NodesExpanded: expanded}
}
