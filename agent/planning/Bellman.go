// Package planning implements the Bellman backups shared by the
// model-based algorithms, which compute value functions from the
// transition dynamics of an environment.Model.
package planning

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/environment"
)

// ActionValue returns the one-step lookahead value of taking action in
// state with respect to the state values v:
//
//	Σ p(s', r | s, a) (r + γ v(s'))
//
// The terminal flag of each transition is not consulted. Terminal
// states of a well formed model are absorbing with zero reward, and so
// have zero value.
func ActionValue(env environment.Model, v *mat.VecDense, discount float64,
	state, action int) (float64, error) {
	transitions, err := env.Transitions(state, action)
	if err != nil {
		return 0, fmt.Errorf("actionValue: %w", err)
	}
	if err := environment.CheckTransitions(env, transitions); err != nil {
		return 0, fmt.Errorf("actionValue: (%d, %d): %w", state, action, err)
	}

	var value float64
	for _, t := range transitions {
		value += t.Probability * (t.Reward + discount*v.AtVec(t.NextState))
	}
	return value, nil
}

// ActionValues stores in dst the one-step lookahead value of each
// action in state and returns dst. If dst is nil or too short, a new
// slice is allocated.
func ActionValues(env environment.Model, v *mat.VecDense, discount float64,
	state int, dst []float64) ([]float64, error) {
	actions := env.NumActions()
	if len(dst) < actions {
		dst = make([]float64, actions)
	}
	dst = dst[:actions]

	for a := range dst {
		value, err := ActionValue(env, v, discount, state, a)
		if err != nil {
			return nil, err
		}
		dst[a] = value
	}
	return dst, nil
}

// Modeler is implemented by environments which wrap an
// environment.Model without being one themselves
type Modeler interface {
	Model() (environment.Model, bool)
}

// AsModel returns env as an environment.Model, unwrapping it if env
// implements Modeler
func AsModel(env environment.Environment) (environment.Model, error) {
	if m, ok := env.(environment.Model); ok {
		return m, nil
	}
	if w, ok := env.(Modeler); ok {
		if m, ok := w.Model(); ok {
			return m, nil
		}
	}
	return nil, fmt.Errorf("asModel: environment %T does not expose a "+
		"transition model", env)
}

// Validate checks the hyperparameters shared by the model-based
// algorithms and returns all problems found
func Validate(discount float64, iterations int) error {
	var err *multierror.Error
	if discount < 0 || discount >= 1 {
		err = multierror.Append(err, fmt.Errorf("discount must be in "+
			"[0, 1), have %v", discount))
	}
	if iterations < 0 {
		err = multierror.Append(err, fmt.Errorf("iterations cannot be "+
			"negative, have %d", iterations))
	}
	return err.ErrorOrNil()
}
