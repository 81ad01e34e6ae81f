// Package maze implements randomly generated maze environments using
// GoMaze.
//
// The agent starts in the top left cell of the maze and must find its
// way to the bottom right cell. Moving into a wall leaves the agent in
// place. Each step is rewarded with -1, except the step which enters
// the goal, which is rewarded with 0 and ends the episode.
//
// GoMaze only exposes a step/reset interface, and so a Maze is an
// environment.Sampler but not an environment.Model.
package maze

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gomaze"

	"github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Actions in a Maze
const (
	Up int = iota
	Down
	Left
	Right
)

// Names of the maze generation algorithms accepted by NewIniter
const (
	AldousBroder = "aldousbroder"
	Backtracking = "backtracking"
	BinaryTree   = "binarytree"
	Iterative    = "iterative"
	Wilson       = "wilson"
)

// Initers returns the names of all maze generation algorithms
func Initers() []string {
	return []string{AldousBroder, Backtracking, BinaryTree, Iterative, Wilson}
}

// NewIniter returns the GoMaze maze generation algorithm called name
func NewIniter(name string, seed uint64) (gomaze.Initer, error) {
	s := int64(seed)

	switch strings.ToLower(name) {
	case AldousBroder:
		return gomaze.NewAldousBroder(s), nil
	case Backtracking:
		return gomaze.NewBacktracking(s), nil
	case BinaryTree:
		return gomaze.NewBinaryTree(s), nil
	case Iterative:
		return gomaze.NewIterative(s), nil
	case Wilson:
		return gomaze.NewWilson(s), nil
	}
	return nil, fmt.Errorf("newIniter: unknown maze generator %q, want one "+
		"of %v", name, Initers())
}

// Maze is a maze with rows * cols cells. The state of the agent in
// row r and column c is r*cols + c.
type Maze struct {
	maze       *gomaze.Maze
	rows, cols int
	stepCount  int
}

// New returns a new Maze with the given number of rows and columns,
// whose walls are generated by init, together with the first TimeStep
// of its first episode
func New(rows, cols int, init gomaze.Initer) (*Maze, ts.TimeStep, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: maze must have a "+
			"positive number of rows and columns, have (%d, %d)", rows, cols)
	}
	if rows*cols < 2 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: the start and goal of "+
			"a (%d, %d) maze coincide", rows, cols)
	}

	// Negative positions place the goal in the bottom right and the start
	// in the top left
	maze, err := gomaze.NewMaze(rows, cols, -1, -1, -1, -1, init, false)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: could not create maze: %w",
			err)
	}

	m := &Maze{maze: maze, rows: rows, cols: cols}
	step, err := m.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}
	return m, step, nil
}

// NumStates returns the number of cells in the maze
func (m *Maze) NumStates() int {
	return m.rows * m.cols
}

// NumActions returns the number of actions
func (m *Maze) NumActions() int {
	return gomaze.Actions
}

// Dims returns the number of rows and columns in the maze
func (m *Maze) Dims() (int, int) {
	return m.rows, m.cols
}

// Reset moves the agent back to the start cell
func (m *Maze) Reset() (ts.TimeStep, error) {
	state, err := m.state(m.maze.Reset())
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}
	m.stepCount = 0

	return ts.New(ts.First, 0, state, 0), nil
}

// Step takes a single environmental step
func (m *Maze) Step(action int) (ts.TimeStep, error) {
	if err := environment.CheckAction(m, action); err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}

	obs, reward, done, err := m.maze.Step(action)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}
	state, err := m.state(obs)
	if err != nil {
		return ts.TimeStep{}, fmt.Errorf("step: %w", err)
	}
	m.stepCount++

	step := ts.New(ts.Mid, reward, state, m.stepCount)
	if done {
		step.SetEnd(ts.TerminalStateReached)
	}
	return step, nil
}

// String returns a drawing of the maze
func (m *Maze) String() string {
	return m.maze.String()
}

// state converts a GoMaze (x, y) observation into a state index
func (m *Maze) state(obs []float64) (int, error) {
	if len(obs) != 2 {
		return 0, fmt.Errorf("expected (x, y) observation, have %v", obs)
	}

	col, row := int(obs[0]), int(obs[1])
	state := row*m.cols + col
	if err := environment.CheckState(m, state); err != nil {
		return 0, err
	}
	return state, nil
}
