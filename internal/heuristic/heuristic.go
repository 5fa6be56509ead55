// Package heuristic implements the search driver's one dependency: a
// capability that maps a node index plus the node vector built so far to
// a non-negative cost-to-go estimate (spec.md section 9, "Polymorphic
// heuristic"). Blind always returns zero; Landmark precomputes an
// admissible estimate from the delete-relaxed task.
package heuristic

import "github.com/Koukyosyumei/MyPlan/internal/searchspace"

// Heuristic estimates the remaining cost from nodes[nodeIdx] to the
// goal. Calculate may mutate nodes[nodeIdx] (e.g. to record Unreached)
// but must never touch any other entry.
type Heuristic interface {
	Calculate(nodeIdx int, nodes []searchspace.Node) float64
}
