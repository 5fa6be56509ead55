package heuristic

import "github.com/Koukyosyumei/MyPlan/internal/searchspace"

// Blind is the zero heuristic. A* driven by Blind must expand nodes in
// the same order BFS does on unit-cost tasks (spec.md section 9).
type Blind struct{}

func (Blind) Calculate(nodeIdx int, nodes []searchspace.Node) float64 {
	return 0
}
