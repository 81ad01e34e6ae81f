// Package policyiteration implements policy iteration with a single
// sweep of policy evaluation per iteration.
//
// Evaluation and improvement are interleaved state by state: within a
// sweep, the value of each state is backed up under the current policy
// and the policy in that state is then immediately made greedy with
// respect to the updated values. States are swept in ascending order
// and updated in place, so later states in a sweep see the values
// already computed for earlier states.
package policyiteration

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/planning"
	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment"
)

// PolicyIteration implements the policy iteration algorithm
type PolicyIteration struct {
	env        environment.Model
	discount   float64
	iterations int

	v      *mat.VecDense
	policy policy.Table
	q      []float64 // Scratch space for action values

	logger logrus.FieldLogger
}

var _ agent.Planner = &PolicyIteration{}

// New creates a new PolicyIteration agent. State values are
// initialized to zero and the initial policy selects an action
// uniformly at random in each state.
func New(env environment.Model, c Config, seed uint64) (*PolicyIteration,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	p := policy.NewTable(env.NumStates())
	for s := range p {
		p[s] = rng.Intn(env.NumActions())
	}

	return &PolicyIteration{
		env:        env,
		discount:   c.Discount,
		iterations: c.Iterations,
		v:          mat.NewVecDense(env.NumStates(), nil),
		policy:     p,
		q:          make([]float64, env.NumActions()),
		logger:     logrus.StandardLogger(),
	}, nil
}

// SetLogger sets the logger used by the agent
func (p *PolicyIteration) SetLogger(l logrus.FieldLogger) {
	p.logger = l
}

// Solve runs the configured number of sweeps and returns the resulting
// policy
func (p *PolicyIteration) Solve() (policy.Table, error) {
	for i := 0; i < p.iterations; i++ {
		changed, err := p.sweep()
		if err != nil {
			return nil, fmt.Errorf("solve: sweep %d: %w", i, err)
		}
		p.logger.WithFields(logrus.Fields{
			"sweep":   i,
			"changed": changed,
		}).Debug("policy iteration sweep complete")
	}
	return p.Policy(), nil
}

// sweep performs one in-place sweep of evaluation and improvement over
// all states and returns the number of states whose action changed
func (p *PolicyIteration) sweep() (int, error) {
	var changed int
	for s := 0; s < p.env.NumStates(); s++ {
		// Policy evaluation
		value, err := planning.ActionValue(p.env, p.v, p.discount, s,
			p.policy[s])
		if err != nil {
			return changed, err
		}
		p.v.SetVec(s, value)

		// Policy improvement
		p.q, err = planning.ActionValues(p.env, p.v, p.discount, s, p.q)
		if err != nil {
			return changed, err
		}
		if a := policy.GreedyAction(p.q); a != p.policy[s] {
			p.policy[s] = a
			changed++
		}
	}
	return changed, nil
}

// V returns a copy of the state values
func (p *PolicyIteration) V() *mat.VecDense {
	return mat.VecDenseCopyOf(p.v)
}

// Policy returns a copy of the current policy
func (p *PolicyIteration) Policy() policy.Table {
	return p.policy.Clone()
}
