// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes how an episode ended. A TimeStep which is not the
// last in its episode has EndType None.
//
// An episode that reaches a terminal state of the underlying MDP ends
// with TerminalStateReached, while an episode that is cut off early
// (e.g. by a step limit) ends with Timeout. These correspond to the
// terminated and truncated signals of an episode.
type EndType int

const (
	None EndType = iota
	TerminalStateReached
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "None"
	}
}

// TimeStep packages together a single timestep in an environment. The
// Observation is the index of the state the environment is in after
// the step.
type TimeStep struct {
	StepType
	EndType
	Reward      float64
	Observation int
	Number      int
}

// New returns a new TimeStep of type t with reward r, observed state o
// and step number n.
func New(t StepType, r float64, o int, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Observation: o, Number: n}
}

// SetEnd sets the ending type of the TimeStep and marks it as the last
// TimeStep in the episode.
func (t *TimeStep) SetEnd(e EndType) {
	t.StepType = Last
	t.EndType = e
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// Terminated returns whether the episode ended by reaching a terminal
// state
func (t *TimeStep) Terminated() bool {
	return t.Last() && t.EndType == TerminalStateReached
}

// Truncated returns whether the episode was cut off before reaching a
// terminal state
func (t *TimeStep) Truncated() bool {
	return t.Last() && t.EndType == Timeout
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  End: %v  |  Reward:  %.2f  |  " +
		"State: %v  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.EndType, t.Reward, t.Observation,
		t.Number)
}
