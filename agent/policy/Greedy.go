package policy

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// GreedyAction returns the action with the largest value in values. If
// multiple actions have equal maximum value, the action with the
// lowest index is returned.
func GreedyAction(values []float64) int {
	return floats.MaxIdx(values)
}

// Greedy returns the policy which is greedy with respect to the
// action values q, which has one row per state and one column per
// action. Ties are broken by lowest action index.
func Greedy(q *mat.Dense) Table {
	states, _ := q.Dims()
	t := NewTable(states)
	for s := 0; s < states; s++ {
		t[s] = GreedyAction(q.RawRowView(s))
	}
	return t
}
