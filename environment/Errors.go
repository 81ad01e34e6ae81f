package environment

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// ProbabilityTolerance is the largest distance from 1 that the summed
// probabilities of a list of transitions may have
const ProbabilityTolerance float64 = 1e-6

var (
	// ErrStateOutOfRange is returned when a state index lies outside
	// [0, NumStates())
	ErrStateOutOfRange = errors.New("state out of range")

	// ErrActionOutOfRange is returned when an action index lies outside
	// [0, NumActions())
	ErrActionOutOfRange = errors.New("action out of range")

	// ErrMalformedModel is returned when a transition model cannot
	// describe a probability distribution over next states
	ErrMalformedModel = errors.New("malformed transition model")
)

// CheckState returns an error wrapping ErrStateOutOfRange if state is
// not a valid state of env
func CheckState(env Environment, state int) error {
	if state < 0 || state >= env.NumStates() {
		return fmt.Errorf("%w: state %d not in [0, %d)", ErrStateOutOfRange,
			state, env.NumStates())
	}
	return nil
}

// CheckAction returns an error wrapping ErrActionOutOfRange if action
// is not a valid action of env
func CheckAction(env Environment, action int) error {
	if action < 0 || action >= env.NumActions() {
		return fmt.Errorf("%w: action %d not in [0, %d)", ErrActionOutOfRange,
			action, env.NumActions())
	}
	return nil
}

// CheckTransitions ensures that a list of transitions is a valid
// distribution over next states of env. An empty list, a negative
// probability, or probabilities which do not sum to 1 are reported
// with ErrMalformedModel. A next state outside the state space is
// reported with ErrStateOutOfRange.
func CheckTransitions(env Environment, transitions []Transition) error {
	if len(transitions) == 0 {
		return fmt.Errorf("%w: no transitions", ErrMalformedModel)
	}

	var total float64
	for _, t := range transitions {
		if t.Probability < 0 {
			return fmt.Errorf("%w: negative probability %v",
				ErrMalformedModel, t.Probability)
		}
		if err := CheckState(env, t.NextState); err != nil {
			return err
		}
		total += t.Probability
	}

	if !scalar.EqualWithinAbs(total, 1.0, ProbabilityTolerance) {
		return fmt.Errorf("%w: probabilities sum to %v", ErrMalformedModel,
			total)
	}
	return nil
}
