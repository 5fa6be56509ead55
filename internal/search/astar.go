package search

import (
	"container/heap"

	"go.uber.org/zap"

	"github.com/Koukyosyumei/MyPlan/internal/heuristic"
	"github.com/Koukyosyumei/MyPlan/internal/searchspace"
	"github.com/Koukyosyumei/MyPlan/internal/task"
)

// pqEntry is one priority-queue slot: node idx plus the (f, h) pair it
// was pushed with, tie-broken by insertion sequence (spec.md section
// 9: "native min-heap ordered by (f, -h, sequence)").
type pqEntry struct {
	f, h    float64
	seq     int
	nodeIdx int
}

type priorityQueue []pqEntry

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h > pq[j].h // prefer deeper estimates
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) { *pq = append(*pq, x.(pqEntry)) }

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]
	return entry
}

// AStar runs A* over t using h, returning an optimal plan for any
// admissible h (spec.md section 4.4).
func AStar(t *task.Task, h heuristic.Heuristic, logger *zap.SugaredLogger) Result {
	nodes := []searchspace.Node{searchspace.Root(t.Initial, t.InitialHash)}
	stateCost := map[uint64]int{t.InitialHash: 0}

	pq := &priorityQueue{}
	heap.Init(pq)
	seq := 0
	initialH := h.Calculate(0, nodes)
	heap.Push(pq, pqEntry{f: initialH, h: initialH, seq: seq, nodeIdx: 0})
	seq++
	logger.Debugw("astar initial heuristic", "h", initialH)

	expanded := 0
	for pq.Len() > 0 {
		entry := heap.Pop(pq).(pqEntry)
		node := nodes[entry.nodeIdx]

		if stateCost[node.Hash] != node.G {
			continue // stale duplicate
		}
		expanded++

		if t.GoalReached(node.State) {
			logger.Debugw("astar solved", "nodesExpanded", expanded, "planLength", node.G)
			return Result{Plan: searchspace.ExtractPlan(nodes, entry.nodeIdx), Solved: true, NodesExpanded: expanded}
		}

		for _, succ := range t.Successors(node.State, node.Hash) {
			child := searchspace.Child(entry.nodeIdx, node.G, succ.OpName, succ.State, succ.Hash)
			bestG, known := stateCost[succ.Hash]
			if known && child.G >= bestG {
				continue
			}
			nodes = append(nodes, child)
			childIdx := len(nodes) - 1
			childH := h.Calculate(childIdx, nodes)
			stateCost[succ.Hash] = child.G
			heap.Push(pq, pqEntry{f: float64(child.G) + childH, h: childH, seq: seq, nodeIdx: childIdx})
			seq++
		}
	}

	logger.Debugw("astar exhausted", "nodesExpanded", expanded)
	return Result{Solved: false, NodesExpanded: expanded}
}
