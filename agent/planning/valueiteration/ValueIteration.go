// Package valueiteration implements value iteration.
//
// Each sweep applies the Bellman optimality backup to every state in
// ascending order, updating the state values in place. The greedy
// policy is extracted with one further sweep once the value sweeps
// have finished.
package valueiteration

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/planning"
	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment"
)

// ValueIteration implements the value iteration algorithm
type ValueIteration struct {
	env        environment.Model
	discount   float64
	iterations int

	v      *mat.VecDense
	policy policy.Table
	q      []float64

	logger logrus.FieldLogger
}

var _ agent.Planner = &ValueIteration{}

// New creates a new ValueIteration agent with zero state values and a
// policy which selects action 0 in every state. The seed is unused,
// since value iteration is deterministic, and exists so that all
// agents can be constructed in the same way.
func New(env environment.Model, c Config, _ uint64) (*ValueIteration,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	return &ValueIteration{
		env:        env,
		discount:   c.Discount,
		iterations: c.Iterations,
		v:          mat.NewVecDense(env.NumStates(), nil),
		policy:     policy.NewTable(env.NumStates()),
		q:          make([]float64, env.NumActions()),
		logger:     logrus.StandardLogger(),
	}, nil
}

// SetLogger sets the logger used by the agent
func (v *ValueIteration) SetLogger(l logrus.FieldLogger) {
	v.logger = l
}

// IterateValue runs the configured number of in-place sweeps of the
// Bellman optimality backup over all states
func (v *ValueIteration) IterateValue() error {
	for i := 0; i < v.iterations; i++ {
		var delta float64
		for s := 0; s < v.env.NumStates(); s++ {
			var err error
			v.q, err = planning.ActionValues(v.env, v.v, v.discount, s, v.q)
			if err != nil {
				return fmt.Errorf("iterateValue: sweep %d: %w", i, err)
			}

			value := floats.Max(v.q)
			delta = math.Max(delta, math.Abs(value-v.v.AtVec(s)))
			v.v.SetVec(s, value)
		}

		v.logger.WithFields(logrus.Fields{
			"sweep": i,
			"delta": delta,
		}).Debug("value iteration sweep complete")
	}
	return nil
}

// OptimalPolicy sweeps all states once more, setting the policy in each
// state to the action which is greedy with respect to the current state
// values. Ties are broken by lowest action index.
//
// OptimalPolicy may be called before IterateValue, in which case the
// policy is greedy with respect to all-zero state values.
func (v *ValueIteration) OptimalPolicy() (policy.Table, error) {
	for s := 0; s < v.env.NumStates(); s++ {
		var err error
		v.q, err = planning.ActionValues(v.env, v.v, v.discount, s, v.q)
		if err != nil {
			return nil, fmt.Errorf("optimalPolicy: %w", err)
		}
		v.policy[s] = policy.GreedyAction(v.q)
	}
	return v.Policy(), nil
}

// Solve runs IterateValue followed by OptimalPolicy
func (v *ValueIteration) Solve() (policy.Table, error) {
	if err := v.IterateValue(); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return v.OptimalPolicy()
}

// V returns a copy of the state values
func (v *ValueIteration) V() *mat.VecDense {
	return mat.VecDenseCopyOf(v.v)
}

// Policy returns a copy of the policy
func (v *ValueIteration) Policy() policy.Table {
	return v.policy.Clone()
}
