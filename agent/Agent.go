// Package agent defines the interfaces implemented by tabular
// algorithms, and a registry which allows algorithms to be configured
// and constructed by name.
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
)

// Solver is an algorithm which computes a policy for an environment.
//
// Solve runs the algorithm to completion, which for all algorithms in
// this module is a fixed number of iterations or episodes, and returns
// the resulting policy.
type Solver interface {
	Solve() (policy.Table, error)
}

// Planner is a Solver which computes a state-value table from a model
// of the environment
type Planner interface {
	Solver

	// V returns a copy of the state-value table
	V() *mat.VecDense
}

// Learner is a Solver which learns a table of action values from
// interaction with the environment
type Learner interface {
	Solver

	// Q returns a copy of the action-value table, with one row per
	// state and one column per action
	Q() *mat.Dense

	// History returns the episodic returns recorded while learning
	History() []trackers.Sample
}
