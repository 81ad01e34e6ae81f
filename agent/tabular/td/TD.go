// Package td implements a one-step temporal difference learner of
// action values which always acts greedily.
//
// TD differs from Q-learning in two ways. It never explores, so that
// the action with the largest value (lowest index on ties) is always
// taken. Its target always bootstraps off the next state,
//
//	r + γ max_a Q(s', a)
//
// even on the step that ends an episode. On environments whose terminal
// states are never updated, their action values stay at zero and the
// two targets coincide.
package td

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/agent/tabular"
	"github.com/samuelfneumann/gotabular/environment"
)

// TD implements the greedy one-step temporal difference algorithm
type TD struct {
	*tabular.Base
}

var _ agent.Learner = &TD{}

// New creates a new TD agent with zero action values
func New(env environment.Sampler, c Config) (*TD, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}
	return &TD{tabular.NewBase(env, c.Discount, c.LearningRate, c.Episodes)},
		nil
}

// Solve runs the configured number of episodes and returns the policy
// which is greedy with respect to the learned action values
func (t *TD) Solve() (policy.Table, error) {
	if err := t.Run(t.episode, nil); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return t.Policy(), nil
}

// episode runs a single episode of TD
func (t *TD) episode() (float64, error) {
	step, err := t.StartEpisode()
	if err != nil {
		return 0, err
	}

	var total float64
	state := step.Observation
	for !step.Last() {
		action := policy.GreedyAction(t.Table().RawRowView(state))
		step, err = t.TakeAction(action)
		if err != nil {
			return total, err
		}
		total += step.Reward

		target := step.Reward + t.Discount()*t.MaxValue(step.Observation)
		t.Update(state, action, target)

		state = step.Observation
	}
	return total, nil
}
