// Package frozenlake implements the Frozen Lake environment.
//
// The agent walks on a frozen lake from a start tile (S) to a goal
// tile (G). Some tiles are frozen (F) and safe to walk on, while
// others are holes (H) into which the agent falls. Entering the goal
// is rewarded with 1 and every other transition with 0. Both holes
// and the goal are terminal and absorbing.
//
// If the lake is slippery, the agent moves in the intended direction
// with probability 1/3 and in each of the two perpendicular directions
// with probability 1/3.
package frozenlake

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Actions in a FrozenLake
const (
	Left int = iota
	Down
	Right
	Up

	// Actions is the number of actions in a FrozenLake
	Actions int = 4
)

// Tiles of a FrozenLake map
const (
	Start  byte = 'S'
	Frozen byte = 'F'
	Hole   byte = 'H'
	Goal   byte = 'G'
)

// Default maps
var (
	Map4x4 = []string{
		"SFFF",
		"FHFH",
		"FFFH",
		"HFFG",
	}

	Map8x8 = []string{
		"SFFFFFFF",
		"FFFFFFFF",
		"FFFHFFFF",
		"FFFFFHFF",
		"FFFHFFFF",
		"FHHFFFHF",
		"FHFFHFHF",
		"FFFHFFFG",
	}
)

// FrozenLake implements the Frozen Lake environment. A FrozenLake is
// both an environment.Model and an environment.Sampler.
type FrozenLake struct {
	desc      []string
	r, c      int
	start     int
	slippery  bool
	p         [][][]environment.Transition
	source    rand.Source
	state     int
	stepCount int
}

// New returns a new FrozenLake on the map desc. Each string in desc is
// one row of the lake, with row 0 at the top. The map must contain
// exactly one start tile and at least one goal tile.
func New(desc []string, slippery bool, seed uint64) (*FrozenLake, error) {
	if len(desc) == 0 || len(desc[0]) == 0 {
		return nil, fmt.Errorf("new: empty map")
	}

	r, c := len(desc), len(desc[0])
	start, goals := -1, 0
	for row, line := range desc {
		if len(line) != c {
			return nil, fmt.Errorf("new: row %d has length %d, want %d", row,
				len(line), c)
		}
		for col := 0; col < c; col++ {
			switch line[col] {
			case Start:
				if start >= 0 {
					return nil, fmt.Errorf("new: multiple start tiles")
				}
				start = row*c + col
			case Goal:
				goals++
			case Frozen, Hole:
			default:
				return nil, fmt.Errorf("new: unknown tile %q at (%d, %d)",
					line[col], row, col)
			}
		}
	}
	if start < 0 {
		return nil, fmt.Errorf("new: no start tile")
	}
	if goals == 0 {
		return nil, fmt.Errorf("new: no goal tile")
	}

	f := &FrozenLake{
		desc:     append([]string(nil), desc...),
		r:        r,
		c:        c,
		start:    start,
		slippery: slippery,
		source:   rand.NewSource(seed),
		state:    start,
	}
	f.p = f.buildModel()

	return f, nil
}

// NumStates returns the number of tiles on the lake
func (f *FrozenLake) NumStates() int {
	return f.r * f.c
}

// NumActions returns the number of actions
func (f *FrozenLake) NumActions() int {
	return Actions
}

// Transitions returns the possible outcomes of taking action in state
func (f *FrozenLake) Transitions(state, action int) ([]environment.Transition,
	error) {
	if err := environment.CheckState(f, state); err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}
	if err := environment.CheckAction(f, action); err != nil {
		return nil, fmt.Errorf("transitions: %w", err)
	}

	return append([]environment.Transition(nil), f.p[state][action]...), nil
}

// Reset resets the agent to the start tile
func (f *FrozenLake) Reset() (ts.TimeStep, error) {
	f.state = f.start
	f.stepCount = 0
	return ts.New(ts.First, 0, f.state, 0), nil
}

// Step takes a single environmental step, sampling the outcome from
// the transition model
func (f *FrozenLake) Step(action int) (ts.TimeStep, error) {
	transitions, err := f.Transitions(f.state, action)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}

	weights := make([]float64, len(transitions))
	for i, t := range transitions {
		weights[i] = t.Probability
	}
	outcome := transitions[int(distuv.NewCategorical(weights, f.source).Rand())]

	f.state = outcome.NextState
	f.stepCount++

	step := ts.New(ts.Mid, outcome.Reward, f.state, f.stepCount)
	if outcome.Terminal {
		step.SetEnd(ts.TerminalStateReached)
	}
	return step, nil
}

// Tile returns the tile at state
func (f *FrozenLake) Tile(state int) byte {
	row, col := state/f.c, state%f.c
	return f.desc[row][col]
}

// String implements the fmt.Stringer interface
func (f *FrozenLake) String() string {
	return fmt.Sprintf("FrozenLake | At: %d  |  Size: (%d, %d)  |  "+
		"Slippery: %v", f.state, f.r, f.c, f.slippery)
}

// buildModel constructs the full transition model of the lake
func (f *FrozenLake) buildModel() [][][]environment.Transition {
	p := make([][][]environment.Transition, f.NumStates())

	for s := range p {
		p[s] = make([][]environment.Transition, Actions)
		tile := f.Tile(s)

		for a := 0; a < Actions; a++ {
			if tile == Hole || tile == Goal {
				p[s][a] = []environment.Transition{
					{Probability: 1.0, NextState: s, Reward: 0, Terminal: true},
				}
				continue
			}

			if !f.slippery {
				p[s][a] = []environment.Transition{f.outcome(s, a, 1.0)}
				continue
			}

			// Intended direction and the two perpendicular directions
			for _, b := range []int{(a + 3) % Actions, a, (a + 1) % Actions} {
				p[s][a] = append(p[s][a], f.outcome(s, b, 1.0/3.0))
			}
		}
	}

	return p
}

// outcome returns the transition of moving in direction action from
// state, which occurs with probability prob
func (f *FrozenLake) outcome(state, action int, prob float64) environment.Transition {
	row, col := state/f.c, state%f.c

	switch action {
	case Left:
		if col > 0 {
			col--
		}
	case Down:
		if row < f.r-1 {
			row++
		}
	case Right:
		if col < f.c-1 {
			col++
		}
	case Up:
		if row > 0 {
			row--
		}
	}

	next := row*f.c + col
	tile := f.Tile(next)
	var reward float64
	if tile == Goal {
		reward = 1.0
	}

	return environment.Transition{
		Probability: prob,
		NextState:   next,
		Reward:      reward,
		Terminal:    tile == Goal || tile == Hole,
	}
}
