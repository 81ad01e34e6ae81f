// Package gridworld implements 2D gridworld environments
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Actions in a GridWorld
const (
	Left int = iota
	Right
	Up
	Down

	// Actions is the number of actions in a GridWorld
	Actions int = 4
)

// GridWorld represents a gridworld environment
//
// A gridworld is represented as a flattened matrix, but in this
// implementation only the matrix dimensions and current agent position
// are tracked. Cell (x, y) has state index y*c + x.
//
// Transitions in a GridWorld are deterministic. Moving off the edge of
// the grid leaves the agent in place. Goal cells are terminal and
// absorbing: any action taken in a goal cell leaves the agent there
// with zero reward.
//
// A GridWorld is both an environment.Model and an environment.Sampler.
type GridWorld struct {
	*Goal
	environment.Starter
	r, c        int
	position    int // current position
	currentStep ts.TimeStep
}

// New creates a new gridworld with r rows and c columns, task t, and
// starting state distribution s. The first TimeStep of the environment
// is returned with the GridWorld.
func New(r, c int, t *Goal, s environment.Starter) (*GridWorld,
	ts.TimeStep, error) {
	if r <= 0 || c <= 0 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: gridworld must have "+
			"at least one row and column, have (%d, %d)", r, c)
	}
	if t.r != r || t.c != c {
		return nil, ts.TimeStep{}, fmt.Errorf("new: task defined on a "+
			"(%d, %d) grid but gridworld is (%d, %d)", t.r, t.c, r, c)
	}

	g := &GridWorld{Goal: t, Starter: s, r: r, c: c}
	step, err := g.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	return g, step, nil
}

// NumStates returns the number of cells in the GridWorld
func (g *GridWorld) NumStates() int {
	return g.r * g.c
}

// NumActions returns the number of actions in the GridWorld
func (g *GridWorld) NumActions() int {
	return Actions
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.r, g.c
}

// Transitions returns the single deterministic outcome of taking
// action in state
func (g *GridWorld) Transitions(state, action int) ([]environment.Transition,
	error) {
	if err := environment.CheckState(g, state); err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}
	if err := environment.CheckAction(g, action); err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}

	if g.AtGoal(state) {
		return []environment.Transition{
			{Probability: 1.0, NextState: state, Reward: 0, Terminal: true},
		}, nil
	}

	next := g.move(state, action)
	return []environment.Transition{
		{
			Probability: 1.0,
			NextState:   next,
			Reward:      g.GetReward(next),
			Terminal:    g.AtGoal(next),
		},
	}, nil
}

// Reset resets the environment to a starting state drawn from the
// GridWorld's Starter
func (g *GridWorld) Reset() (ts.TimeStep, error) {
	start := g.Start()
	if err := environment.CheckState(g, start); err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: invalid start: %w", err)
	}
	g.position = start

	startStep := ts.New(ts.First, 0, start, 0)
	g.currentStep = startStep
	return startStep, nil
}

// Step takes a single environmental step
func (g *GridWorld) Step(action int) (ts.TimeStep, error) {
	transitions, err := g.Transitions(g.position, action)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}
	t := transitions[0]
	g.position = t.NextState

	// Set up the next timestep and update the gridworld's current step
	step := ts.New(ts.Mid, t.Reward, t.NextState, g.currentStep.Number+1)
	if t.Terminal {
		step.SetEnd(ts.TerminalStateReached)
	}
	g.currentStep = step

	return step, nil
}

// Coordinates returns the (x, y) coordinates of the agent
func (g *GridWorld) Coordinates() (int, int) {
	return indToC(g.position, g.c)
}

// move returns the state reached by moving in the direction action
// from state
func (g *GridWorld) move(state, action int) int {
	x, y := indToC(state, g.c)

	// Move the current position
	switch action {
	case Left:
		if newX := x - 1; newX >= 0 {
			x = newX
		}

	case Right:
		if newX := x + 1; newX < g.c {
			x = newX
		}

	case Up:
		if newY := y + 1; newY < g.r {
			y = newY
		}

	case Down:
		if newY := y - 1; newY >= 0 {
			y = newY
		}
	}

	return cToInd(x, y, g.c)
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |   Goal: %v  |  Bounds: (%d, %d)"
	x, y := g.Coordinates()

	return fmt.Sprintf(str, fmt.Sprintf("(%d, %d)", x, y), g.Goal, g.r, g.c)
}

// cToInd converts coordinates (x, y) to a state index
func cToInd(x, y, c int) int {
	return y*c + x
}

// indToC converts a state index into (x, y) coordinates
func indToC(ind, c int) (int, int) {
	y := ind / c
	x := ind - (y * c)
	return x, y
}
