// Package tabular implements the bookkeeping shared by the tabular,
// sampling-based learning algorithms: a table of action values, the
// episode loop, and the record of episodic returns.
package tabular

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// EpisodeFunc runs a single episode and returns the total reward
// accumulated over the episode
type EpisodeFunc func() (float64, error)

// Base holds an action-value table for a Sampler environment together
// with the hyperparameters common to all tabular learners. Learners
// embed a *Base and implement their own EpisodeFunc.
type Base struct {
	env          environment.Sampler
	discount     float64
	learningRate float64
	episodes     int
	completed    int

	q       *mat.Dense
	history *trackers.History
	logger  logrus.FieldLogger
}

// NewBase returns a new Base with a zero action-value table of shape
// (env.NumStates(), env.NumActions())
func NewBase(env environment.Sampler, discount, learningRate float64,
	episodes int) *Base {
	return &Base{
		env:          env,
		discount:     discount,
		learningRate: learningRate,
		episodes:     episodes,
		q:            mat.NewDense(env.NumStates(), env.NumActions(), nil),
		history:      trackers.NewHistory(trackers.DefaultInterval),
		logger:       logrus.StandardLogger(),
	}
}

// SetLogger sets the logger used by the learner
func (b *Base) SetLogger(l logrus.FieldLogger) {
	b.logger = l
}

// Discount returns the discount factor
func (b *Base) Discount() float64 {
	return b.discount
}

// Q returns a copy of the action-value table
func (b *Base) Q() *mat.Dense {
	return mat.DenseCopyOf(b.q)
}

// Table returns the action-value table itself, not a copy. It is meant
// for use by learners during an episode.
func (b *Base) Table() *mat.Dense {
	return b.q
}

// History returns the recorded episodic returns, one for every
// trackers.DefaultInterval episodes
func (b *Base) History() []trackers.Sample {
	return b.history.Samples()
}

// Policy returns the policy which is greedy with respect to the
// action-value table
func (b *Base) Policy() policy.Table {
	return policy.Greedy(b.q)
}

// Value returns the action value of action in state
func (b *Base) Value(state, action int) float64 {
	return b.q.At(state, action)
}

// MaxValue returns the largest action value in state
func (b *Base) MaxValue(state int) float64 {
	return floats.Max(b.q.RawRowView(state))
}

// Update moves the value of action in state toward target by the
// learning rate
func (b *Base) Update(state, action int, target float64) {
	value := b.q.At(state, action)
	b.q.Set(state, action, value+b.learningRate*(target-value))
}

// StartEpisode resets the environment, checking that the starting state
// is within the action-value table
func (b *Base) StartEpisode() (ts.TimeStep, error) {
	step, err := b.env.Reset()
	if err != nil {
		return step, fmt.Errorf("startEpisode: %w", err)
	}
	if err := environment.CheckState(b.env, step.Observation); err != nil {
		return step, fmt.Errorf("startEpisode: %w", err)
	}
	return step, nil
}

// TakeAction steps the environment with action, checking that the next
// state is within the action-value table
func (b *Base) TakeAction(action int) (ts.TimeStep, error) {
	step, err := b.env.Step(action)
	if err != nil {
		return step, fmt.Errorf("takeAction: %w", err)
	}
	if err := environment.CheckState(b.env, step.Observation); err != nil {
		return step, fmt.Errorf("takeAction: %w", err)
	}
	return step, nil
}

// Run runs the configured number of episodes with run, recording the
// return of every trackers.DefaultInterval-th episode. If explorer is
// not nil, its ε is decayed after each episode.
//
// Episodes are numbered from the first episode run by the learner, so
// that calling Run multiple times continues the same history.
func (b *Base) Run(run EpisodeFunc, explorer *policy.EGreedy) error {
	for i := 0; i < b.episodes; i++ {
		episode := b.completed
		reward, err := run()
		if err != nil {
			return fmt.Errorf("run: episode %d: %w", episode, err)
		}
		b.completed++

		if b.history.Track(episode, reward) {
			fields := logrus.Fields{"episode": episode, "reward": reward}
			if explorer != nil {
				fields["epsilon"] = explorer.Epsilon()
			}
			b.logger.WithFields(fields).Debug("episode complete")
		}

		if explorer != nil {
			explorer.Decay()
		}
	}
	return nil
}

// Validate checks the hyperparameters shared by the tabular learners
// and returns all problems found
func Validate(discount, learningRate float64, episodes int) *multierror.Error {
	var err *multierror.Error
	if discount < 0 || discount > 1 {
		err = multierror.Append(err, fmt.Errorf("discount must be in "+
			"[0, 1], have %v", discount))
	}
	if learningRate <= 0 {
		err = multierror.Append(err, fmt.Errorf("learning rate must be "+
			"positive, have %v", learningRate))
	}
	if episodes < 0 {
		err = multierror.Append(err, fmt.Errorf("episodes cannot be "+
			"negative, have %d", episodes))
	}
	return err
}

// ValidateEpsilon appends to err a problem with the exploration rate
// e, if there is one
func ValidateEpsilon(err *multierror.Error, e float64) *multierror.Error {
	if e < 0 || e > 1 {
		err = multierror.Append(err, fmt.Errorf("epsilon must be in "+
			"[0, 1], have %v", e))
	}
	return err
}

// AsSampler returns env as an environment.Sampler
func AsSampler(env environment.Environment) (environment.Sampler, error) {
	s, ok := env.(environment.Sampler)
	if !ok {
		return nil, fmt.Errorf("asSampler: environment %T cannot be "+
			"sampled", env)
	}
	return s, nil
}
