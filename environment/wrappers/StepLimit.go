// Package wrappers implements environment wrappers which alter the
// behaviour of a wrapped environment.Sampler
package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// StepLimit wraps an environment and cuts off episodes which have not
// reached a terminal state after a fixed number of steps. The last
// TimeStep of a cut off episode has EndType Timeout so that agents can
// distinguish truncation from termination.
//
// StepLimit itself implements the environment.Sampler interface, and
// is therefore itself a Sampler. If the wrapped environment is also an
// environment.Model, its transition model is available through the
// Model method.
type StepLimit struct {
	environment.Sampler
	episodeSteps int
	steps        int
}

// NewStepLimit returns a new StepLimit which truncates episodes of env
// after episodeSteps steps
func NewStepLimit(env environment.Sampler, episodeSteps int) (*StepLimit,
	error) {
	if episodeSteps <= 0 {
		return nil, fmt.Errorf("newStepLimit: episode step limit must be "+
			"positive, have %d", episodeSteps)
	}
	return &StepLimit{Sampler: env, episodeSteps: episodeSteps}, nil
}

// Reset resets the wrapped environment and the step counter
func (s *StepLimit) Reset() (ts.TimeStep, error) {
	s.steps = 0
	return s.Sampler.Reset()
}

// Step takes a step in the wrapped environment. If the step limit is
// reached and the episode has not otherwise ended, the returned
// TimeStep is marked as truncated.
func (s *StepLimit) Step(action int) (ts.TimeStep, error) {
	step, err := s.Sampler.Step(action)
	if err != nil {
		return step, err
	}
	s.steps++

	if s.steps >= s.episodeSteps && !step.Last() {
		step.SetEnd(ts.Timeout)
	}
	return step, nil
}

// Model returns the wrapped environment as an environment.Model, if it
// is one
func (s *StepLimit) Model() (environment.Model, bool) {
	m, ok := s.Sampler.(environment.Model)
	return m, ok
}
