// Package environment outlines the interfaces and structs needed to
// implement concrete environments with finite, discrete state and
// action spaces.
//
// Environments expose their capabilities through separate interfaces.
// Model-based algorithms (e.g. policy iteration) require a Model, which
// gives access to the full transition dynamics of the underlying MDP.
// Sampling-based algorithms (e.g. Q-learning) require only a Sampler,
// which can be reset and stepped. Many concrete environments implement
// both.
package environment

import (
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Environment is a finite MDP with states 0, 1, ..., NumStates()-1 and
// actions 0, 1, ..., NumActions()-1. The cardinalities are fixed for
// the lifetime of an Environment.
type Environment interface {
	NumStates() int
	NumActions() int
}

// Transition is a single possible outcome of taking some action in
// some state
type Transition struct {
	Probability float64
	NextState   int
	Reward      float64
	Terminal    bool
}

// Model is an Environment which exposes its transition dynamics.
//
// Transitions returns every possible outcome of taking action in state.
// The returned outcomes are deterministic given the MDP (they are not
// a live sample) and their probabilities sum to 1.
type Model interface {
	Environment
	Transitions(state, action int) ([]Transition, error)
}

// Sampler is an Environment which can be interacted with one step at
// a time.
//
// Reset starts a new episode and returns its first TimeStep. Step takes
// an action in the current state and returns the resulting TimeStep.
// An episode is over when the returned TimeStep is the last in the
// episode, either because a terminal state was reached
// (TimeStep.Terminated) or because the episode was cut off
// (TimeStep.Truncated).
type Sampler interface {
	Environment
	Reset() (ts.TimeStep, error)
	Step(action int) (ts.TimeStep, error)
}

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() int
}
