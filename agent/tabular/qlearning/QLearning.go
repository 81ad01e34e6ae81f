// Package qlearning implements tabular Q-learning with an ε-greedy
// behaviour policy.
//
// The update target bootstraps off the largest action value in the
// next state, regardless of which action the behaviour policy takes
// next. When an episode ends on a step, the target is the reward alone.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/agent/tabular"
	"github.com/samuelfneumann/gotabular/environment"
)

// QLearning implements the Q-learning algorithm
type QLearning struct {
	*tabular.Base
	behaviour *policy.EGreedy
}

var _ agent.Learner = &QLearning{}

// New creates a new QLearning agent with zero action values. The
// exploration rate starts at c.Epsilon and decays after each episode by
// policy.DefaultDecay down to policy.DefaultMinEpsilon.
func New(env environment.Sampler, c Config, seed uint64) (*QLearning,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}

	behaviour, err := policy.NewEGreedy(c.Epsilon, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	base := tabular.NewBase(env, c.Discount, c.LearningRate, c.Episodes)
	return &QLearning{Base: base, behaviour: behaviour}, nil
}

// Solve runs the configured number of episodes and returns the policy
// which is greedy with respect to the learned action values
func (q *QLearning) Solve() (policy.Table, error) {
	if err := q.Run(q.episode, q.behaviour); err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return q.Policy(), nil
}

// episode runs a single episode of Q-learning
func (q *QLearning) episode() (float64, error) {
	step, err := q.StartEpisode()
	if err != nil {
		return 0, err
	}

	var total float64
	state := step.Observation
	for !step.Last() {
		action := q.behaviour.SelectAction(q.Table(), state)
		step, err = q.TakeAction(action)
		if err != nil {
			return total, err
		}
		total += step.Reward

		target := step.Reward
		if !step.Last() {
			target += q.Discount() * q.MaxValue(step.Observation)
		}
		q.Update(state, action, target)

		state = step.Observation
	}
	return total, nil
}

// Epsilon returns the current exploration rate
func (q *QLearning) Epsilon() float64 {
	return q.behaviour.Epsilon()
}
