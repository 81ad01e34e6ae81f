// Package gym provides access to OpenAI Gym environments with discrete
// observation and action spaces, such as FrozenLake-v1 or Taxi-v3.
//
// This is made possible through the Go bindings for OpenAI Gym,
// found at https://github.com/samuelfneumann/GoGym. Gym environments
// only expose a step/reset interface, and so a GymEnv is an
// environment.Sampler but not an environment.Model.
package gym

import (
	"fmt"

	"github.com/samuelfneumann/gogym"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// GymEnv implements access to a discrete OpenAI Gym environment using
// GoGym
type GymEnv struct {
	gogym.Environment

	states, actions int
	currentStep     ts.TimeStep
}

// New returns a new GymEnv with the given name, which must be a legal
// name from the OpenAI Gym suite of an environment with discrete
// observations and actions.
func New(name string, seed uint64) (*GymEnv, ts.TimeStep, error) {
	goGymEnv, err := gogym.Make(name)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not create "+
			"environment: %w", err)
	}

	states, err := cardinality(goGymEnv.ObservationSpace())
	if err != nil {
		goGymEnv.Close()
		return nil, ts.TimeStep{}, fmt.Errorf("new: observations: %w", err)
	}
	actions, err := cardinality(goGymEnv.ActionSpace())
	if err != nil {
		goGymEnv.Close()
		return nil, ts.TimeStep{}, fmt.Errorf("new: actions: %w", err)
	}

	goGymEnv.Seed(int(seed))
	gymEnv := &GymEnv{
		Environment: goGymEnv,
		states:      states,
		actions:     actions,
	}

	t, err := gymEnv.Reset()
	if err != nil {
		goGymEnv.Close()
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	return gymEnv, t, nil
}

// NumStates returns the number of discrete observations
func (g *GymEnv) NumStates() int {
	return g.states
}

// NumActions returns the number of discrete actions
func (g *GymEnv) NumActions() int {
	return g.actions
}

// Reset resets the environment to some starting state
func (g *GymEnv) Reset() (ts.TimeStep, error) {
	obs, err := g.Environment.Reset()
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: could not reset "+
			"environment: %w", err)
	}

	state := int(obs.AtVec(0))
	if err := environment.CheckState(g, state); err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	t := ts.New(ts.First, 0, state, 0)
	g.currentStep = t

	return t, nil
}

// Step takes a single environmental step.
//
// GoGym reports a single done signal for an episode. Episodes ended by
// Gym are reported as having reached a terminal state.
func (g *GymEnv) Step(action int) (ts.TimeStep, error) {
	if err := environment.CheckAction(g, action); err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}

	a := mat.NewVecDense(1, []float64{float64(action)})
	obs, reward, done, err := g.Environment.Step(a)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: could not step "+
			"GoGym environment: %w", err)
	}

	state := int(obs.AtVec(0))
	if err := environment.CheckState(g, state); err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}

	t := ts.New(ts.Mid, reward, state, g.currentStep.Number+1)
	if done {
		t.SetEnd(ts.TerminalStateReached)
	}
	g.currentStep = t

	return t, nil
}

// Close performs resource cleanup after the environment is no longer
// needed
func (g *GymEnv) Close() error {
	g.Environment.Close()
	return nil
}

// Shutdown releases the resources held by GoGym. No GymEnv can be used
// after Shutdown has been called.
func Shutdown() {
	gogym.Close()
}

// space is the subset of a GoGym space used by GymEnv
type space interface {
	High() []*mat.VecDense
}

// cardinality returns the number of elements of a one-dimensional
// discrete space
func cardinality(s space) (int, error) {
	if _, ok := s.(*gogym.DiscreteSpace); !ok {
		return 0, fmt.Errorf("package gym supports only GoGym's " +
			"DiscreteSpace")
	}

	high := s.High()
	if len(high) != 1 || high[0].Len() != 1 {
		return 0, fmt.Errorf("space must be one-dimensional")
	}
	return int(high[0].AtVec(0)) + 1, nil
}
