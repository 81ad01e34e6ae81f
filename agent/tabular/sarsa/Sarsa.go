// Package sarsa implements tabular Sarsa with an ε-greedy policy.
//
// Sarsa is on-policy: the next action is selected by the ε-greedy
// policy before the update, the target bootstraps off the value of
// that action, and that same action is taken on the next step. When an
// episode ends on a step, the target is the reward alone.
package sarsa

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/agent/tabular"
	"github.com/samuelfneumann/gotabular/environment"
)

// Sarsa implements the Sarsa algorithm
type Sarsa struct {
	*tabular.Base
	explorer *policy.EGreedy
}

var _ agent.Learner = &Sarsa{}

// New creates a new Sarsa agent with zero action values. The
// exploration rate starts at c.Epsilon and decays after each episode by
// policy.DefaultDecay down to policy.DefaultMinEpsilon.
func New(env environment.Sampler, c Config, seed uint64) (*Sarsa, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	p, err := policy.NewEGreedy(c.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	base := tabular.NewBase(env, c.Discount, c.LearningRate, c.Episodes)
	return &Sarsa{Base: base, explorer: p}, nil
}

// Solve runs the configured number of episodes and returns the policy
// which is greedy with respect to the learned action values
func (s *Sarsa) Solve() (policy.Table, error) {
	if err := s.Run(s.episode, s.explorer); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return s.Policy(), nil
}

// episode runs a single episode of Sarsa
func (s *Sarsa) episode() (float64, error) {
	step, err := s.StartEpisode()
	if err != nil {
		return 0, err
	}

	var total float64
	state := step.Observation
	action := s.explorer.SelectAction(s.Table(), state)
	for !step.Last() {
		step, err = s.TakeAction(action)
		if err != nil {
			return total, err
		}
		total += step.Reward

		nextState := step.Observation
		nextAction := s.explorer.SelectAction(s.Table(), nextState)

		target := step.Reward
		if !step.Last() {
			target += s.Discount() * s.Value(nextState, nextAction)
		}
		s.Update(state, action, target)

		state, action = nextState, nextAction
	}
	return total, nil
}

// Epsilon returns the current exploration rate
func (s *Sarsa) Epsilon() float64 {
	return s.explorer.Epsilon()
}
