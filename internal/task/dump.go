package task

import (
	"encoding/json"
	"io"
)

// dumpOperator and dumpedTask mirror the shape of the teacher lineage's
// graph serialization types: plain JSON-tagged structs, one marshal
// function, used here purely for debugging/inspection (`myplan plan
// --dump-task`) — the core itself persists nothing (spec.md section 6,
// "No persisted state").
type dumpOperator struct {
	Name string `json:"name"`
	Pre  []int  `json:"pre"`
	Add  []int  `json:"add"`
	Del  []int  `json:"del"`
}

type dumpedTask struct {
	Name      string         `json:"name"`
	Facts     []string       `json:"facts"`
	Initial   []int          `json:"initial"`
	Goal      []int          `json:"goal"`
	Operators []dumpOperator `json:"operators"`
}

// WriteJSON writes a debug snapshot of t to w.
func (t *Task) WriteJSON(w io.Writer) error {
	dump := dumpedTask{
		Name:    t.Name,
		Facts:   t.Facts,
		Initial: t.Initial.IDs(),
		Goal:    t.Goal.IDs(),
	}
	for _, op := range t.Operators {
		dump.Operators = append(dump.Operators, dumpOperator{
			Name: op.Name,
			Pre:  op.Pre,
			Add:  op.Add,
			Del:  op.Del,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}
