package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/environment"
)

// NewSingleStart returns a Starter which always starts in cell (x, y)
// of a gridworld with r rows and c columns
func NewSingleStart(x, y, r, c int) (environment.Starter, error) {
	if x < 0 || x >= c {
		return nil, fmt.Errorf("newSingleStart: x = %d outside of [0, %d)",
			x, c)
	} else if y < 0 || y >= r {
		return nil, fmt.Errorf("newSingleStart: y = %d outside of [0, %d)",
			y, r)
	}

	return environment.NewSingleStart(cToInd(x, y, c)), nil
}

// NewUniformStart returns a Starter which starts uniformly at random
// in any cell of a gridworld with r rows and c columns which is not a
// goal cell of the task g
func NewUniformStart(g *Goal, r, c int, seed uint64) (environment.Starter,
	error) {
	var states []int
	for ind := 0; ind < r*c; ind++ {
		if !g.AtGoal(ind) {
			states = append(states, ind)
		}
	}

	starter, err := environment.NewCategoricalStarter(states, nil, seed)
	if err != nil {
		return nil, fmt.Errorf("newUniformStart: %w", err)
	}
	return starter, nil
}
