package heuristic

import (
	"math"
	"sort"

	"github.com/Koukyosyumei/MyPlan/internal/searchspace"
	"github.com/Koukyosyumei/MyPlan/internal/task"
)

// Landmark is the admissible heuristic of spec.md section 4.5: a fact f
// is a landmark if it cannot be avoided by any delete-relaxed plan, and
// each landmark's cost is partitioned across its cheapest achiever.
//
// The forward-simulation used to test "can the goal be reached while
// forbidding operators that add f" is written here as a full fixpoint
// over every non-forbidden applicable operator, not the narrower
// "operators whose add-list intersects the not-yet-reached goal" loop
// the source implementation uses — the narrower form only ever applies
// operators that directly touch the goal predicates and can therefore
// miss applicable chains, understating reachability and so
// overstating the landmark set. The full fixpoint is the one spec.md's
// own admissibility argument ("the problem cannot be solved without
// passing through f") actually requires; see DESIGN.md.
type Landmark struct {
	relaxed        *task.Task
	landmarks      map[int]struct{}
	goalLandmarks  map[int]struct{}
	cost           map[int]float64
	achievedByName map[string][]int
}

// NewLandmark precomputes the landmark set and cost partition on the
// delete-relaxation of t. This work happens once, at heuristic
// construction, never per node.
func NewLandmark(t *task.Task) *Landmark {
	relaxed := t.Relax()
	landmarks := discoverLandmarks(relaxed)
	cost, achievedByName := partitionCosts(relaxed, landmarks)

	goalLandmarks := make(map[int]struct{})
	for _, g := range t.Goal.IDs() {
		if _, ok := landmarks[g]; ok {
			goalLandmarks[g] = struct{}{}
		}
	}

	return &Landmark{
		relaxed:        relaxed,
		landmarks:      landmarks,
		goalLandmarks:  goalLandmarks,
		cost:           cost,
		achievedByName: achievedByName,
	}
}

func discoverLandmarks(relaxed *task.Task) map[int]struct{} {
	landmarks := make(map[int]struct{})
	for _, g := range relaxed.Goal.IDs() {
		landmarks[g] = struct{}{}
	}
	for f := 0; f < relaxed.NumFacts(); f++ {
		if _, isGoal := landmarks[f]; isGoal {
			continue
		}
		if !reachesGoalForbidding(relaxed, f) {
			landmarks[f] = struct{}{}
		}
	}
	return landmarks
}

// reachesGoalForbidding forward-simulates relaxed to a fixpoint,
// forbidding every operator whose add-list contains f, and reports
// whether the goal is reachable without ever needing to produce f.
func reachesGoalForbidding(relaxed *task.Task, f int) bool {
	state := relaxed.Initial.Clone()
	if relaxed.GoalReached(state) {
		return true
	}
	for {
		changed := false
		for _, op := range relaxed.Operators {
			if containsID(op.Add, f) {
				continue
			}
			if !relaxed.Applicable(op, state) {
				continue
			}
			for _, id := range op.Add {
				if !state.Has(id) {
					state.Set(id)
					changed = true
				}
			}
		}
		if relaxed.GoalReached(state) {
			return true
		}
		if !changed {
			return false
		}
	}
}

// partitionCosts computes, for every landmark l, the cheapest
// 1/k_o share among operators o that achieve l (k_o = the number of
// landmarks o achieves), and returns the per-operator-name achieved
// list used to update a child node's unreached set.
func partitionCosts(relaxed *task.Task, landmarks map[int]struct{}) (map[int]float64, map[string][]int) {
	achievedByName := make(map[string][]int)
	achieverShares := make(map[int][]float64)

	for _, op := range relaxed.Operators {
		var achieved []int
		for _, id := range op.Add {
			if _, ok := landmarks[id]; ok {
				achieved = append(achieved, id)
			}
		}
		if len(achieved) == 0 {
			continue
		}
		achievedByName[op.Name] = achieved
		share := 1.0 / float64(len(achieved))
		for _, id := range achieved {
			achieverShares[id] = append(achieverShares[id], share)
		}
	}

	cost := make(map[int]float64, len(landmarks))
	for l := range landmarks {
		best := math.Inf(1)
		for _, share := range achieverShares[l] {
			if share < best {
				best = share
			}
		}
		if math.IsInf(best, 1) {
			// No operator achieves l in the relaxed task: only
			// possible for a landmark already true in the initial
			// state, which contributes nothing to any node's unreached
			// set.
			best = 0
		}
		cost[l] = best
	}
	return cost, achievedByName
}

func containsID(sorted []int, id int) bool {
	i := sort.SearchInts(sorted, id)
	return i < len(sorted) && sorted[i] == id
}

// Calculate implements spec.md section 4.5's per-node evaluation. It
// caches the resulting unreached set onto nodes[nodeIdx] so later
// children can build on it incrementally.
func (lm *Landmark) Calculate(nodeIdx int, nodes []searchspace.Node) float64 {
	node := &nodes[nodeIdx]

	var unreached map[int]struct{}
	if node.ParentID == -1 {
		unreached = make(map[int]struct{}, len(lm.landmarks))
		for l := range lm.landmarks {
			unreached[l] = struct{}{}
		}
	} else {
		parent := nodes[node.ParentID]
		unreached = make(map[int]struct{}, len(parent.Unreached))
		for l := range parent.Unreached {
			unreached[l] = struct{}{}
		}
		// Corrected removal semantics (spec.md section 9): remove the
		// intersection of the producing operator's add-list with the
		// landmark set, not the operator name itself.
		for _, l := range lm.achievedByName[node.Action] {
			delete(unreached, l)
		}
		// A goal landmark that held earlier but no longer holds must
		// be achieved again.
		for l := range lm.goalLandmarks {
			if !node.State.Has(l) {
				unreached[l] = struct{}{}
			}
		}
	}

	for l := range unreached {
		if node.State.Has(l) {
			delete(unreached, l)
		}
	}
	node.Unreached = unreached

	var h float64
	for l := range unreached {
		h += lm.cost[l]
	}
	return h
}
