// Package searchspace holds the append-only node vector every search
// algorithm builds: a flat slice of Node records with parent indices
// rather than pointers, matching the contiguous-vector layout spec.md
// section 3 calls for ("Nodes are stored in a contiguous vector; parent
// references are indices into that vector").
package searchspace

import "github.com/Koukyosyumei/MyPlan/internal/task"

// Node is one entry in the search's node vector. ParentID is -1 for the
// root. Unreached is populated by the landmark heuristic and is nil for
// searches using the Blind heuristic.
type Node struct {
	State     *task.FactSet
	ParentID  int
	Action    string
	G         int
	Hash      uint64
	Unreached map[int]struct{}
}

// Root builds the initial node: parent -1, empty action, g = 0.
func Root(initial *task.FactSet, hash uint64) Node {
	return Node{
		State:    initial,
		ParentID: -1,
		Action:   "",
		G:        0,
		Hash:     hash,
	}
}

// Child builds a successor node reached from parentIdx by applying the
// operator named action.
func Child(parentIdx int, parentG int, action string, state *task.FactSet, hash uint64) Node {
	return Node{
		State:    state,
		ParentID: parentIdx,
		Action:   action,
		G:        parentG + 1,
		Hash:     hash,
	}
}

// ExtractPlan walks parent pointers from terminalIdx back to the root,
// collecting actions in reverse order and returning them in execution
// order. The root's empty action is never included.
func ExtractPlan(nodes []Node, terminalIdx int) []string {
	var reversed []string
	for idx := terminalIdx; nodes[idx].ParentID != -1; idx = nodes[idx].ParentID {
		reversed = append(reversed, nodes[idx].Action)
	}
	plan := make([]string, len(reversed))
	for i, a := range reversed {
		plan[len(reversed)-1-i] = a
	}
	return plan
}
