// Package explicit implements finite MDPs whose dynamics are given as
// an explicit table of transitions.
//
// Explicit MDPs are useful for small synthetic problems, for example
// when testing algorithms against hand-computed solutions.
package explicit

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// MDP is a finite MDP defined by a transition table p, where p[s][a]
// lists every possible outcome of taking action a in state s. An MDP
// is both an environment.Model and an environment.Sampler.
type MDP struct {
	environment.Starter
	p       [][][]environment.Transition
	actions int
	source  rand.Source

	state       int
	currentStep ts.TimeStep
}

// New returns a new MDP with transition table p, starting each episode
// in a state drawn from s. Every state must have the same number of
// actions, and each p[s][a] must be a valid distribution over next
// states.
func New(p [][][]environment.Transition, s environment.Starter,
	seed uint64) (*MDP, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("new: %w: no states", environment.ErrMalformedModel)
	}
	actions := len(p[0])
	if actions == 0 {
		return nil, fmt.Errorf("new: %w: no actions",
			environment.ErrMalformedModel)
	}

	m := &MDP{
		Starter: s,
		p:       p,
		actions: actions,
		source:  rand.NewSource(seed),
	}

	for state := range p {
		if len(p[state]) != actions {
			return nil, fmt.Errorf("new: %w: state %d has %d actions, want %d",
				environment.ErrMalformedModel, state, len(p[state]), actions)
		}
		for action := range p[state] {
			if err := environment.CheckTransitions(m, p[state][action]); err != nil {
				return nil, fmt.Errorf("new: (%d, %d): %w", state, action, err)
			}
		}
	}

	return m, nil
}

// NumStates returns the number of states in the MDP
func (m *MDP) NumStates() int {
	return len(m.p)
}

// NumActions returns the number of actions in the MDP
func (m *MDP) NumActions() int {
	return m.actions
}

// Transitions returns the possible outcomes of taking action in state
func (m *MDP) Transitions(state, action int) ([]environment.Transition, error) {
	if err := environment.CheckState(m, state); err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}
	if err := environment.CheckAction(m, action); err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}
	return m.p[state][action], nil
}

// Reset starts a new episode in a state drawn from the MDP's Starter
func (m *MDP) Reset() (ts.TimeStep, error) {
	start := m.Start()
	if err := environment.CheckState(m, start); err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: invalid start: %w", err)
	}
	m.state = start
	m.currentStep = ts.New(ts.First, 0, start, 0)

	return m.currentStep, nil
}

// Step takes action in the current state, sampling the outcome from
// the transition table
func (m *MDP) Step(action int) (ts.TimeStep, error) {
	transitions, err := m.Transitions(m.state, action)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}

	outcome := transitions[0]
	if len(transitions) > 1 {
		weights := make([]float64, len(transitions))
		for i, t := range transitions {
			weights[i] = t.Probability
		}
		dist := distuv.NewCategorical(weights, m.source)
		outcome = transitions[int(dist.Rand())]
	}

	m.state = outcome.NextState
	step := ts.New(ts.Mid, outcome.Reward, m.state, m.currentStep.Number+1)
	if outcome.Terminal {
		step.SetEnd(ts.TerminalStateReached)
	}
	m.currentStep = step

	return step, nil
}
