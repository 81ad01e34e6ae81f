// Package montecarlo holds the tables of a tabular Monte Carlo control
// agent: action values, visit counts for each state-action pair, and a
// policy.
//
// No learning rule is implemented. A MonteCarlo agent is therefore not
// an agent.Solver and cannot be registered with package agent.
package montecarlo

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment"
)

// Config represents a configuration for the MonteCarlo agent
type Config struct {
	Discount float64
	Episodes int
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	var err *multierror.Error
	if c.Discount < 0 || c.Discount > 1 {
		err = multierror.Append(err, fmt.Errorf("discount must be in "+
			"[0, 1], have %v", c.Discount))
	}
	if c.Episodes < 0 {
		err = multierror.Append(err, fmt.Errorf("episodes cannot be "+
			"negative, have %d", c.Episodes))
	}
	return err.ErrorOrNil()
}

// MonteCarlo holds the tables of a Monte Carlo control agent
type MonteCarlo struct {
	env      environment.Environment
	discount float64
	episodes int

	q            *mat.Dense
	returnsCount *mat.Dense
	policy       policy.Table
}

// New returns a new MonteCarlo agent with zero action values, zero
// visit counts, and a policy which selects action 0 in every state
func New(env environment.Environment, c Config) (*MonteCarlo, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	states, actions := env.NumStates(), env.NumActions()
	return &MonteCarlo{
		env:          env,
		discount:     c.Discount,
		episodes:     c.Episodes,
		q:            mat.NewDense(states, actions, nil),
		returnsCount: mat.NewDense(states, actions, nil),
		policy:       policy.NewTable(states),
	}, nil
}

// Q returns a copy of the action values
func (m *MonteCarlo) Q() *mat.Dense {
	return mat.DenseCopyOf(m.q)
}

// ReturnsCount returns a copy of the number of returns observed for
// each state-action pair
func (m *MonteCarlo) ReturnsCount() *mat.Dense {
	return mat.DenseCopyOf(m.returnsCount)
}

// Policy returns a copy of the policy
func (m *MonteCarlo) Policy() policy.Table {
	return m.policy.Clone()
}
