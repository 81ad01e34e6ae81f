package gridworld

import (
	"fmt"
	"strings"
)

// Goal represents the task of reaching goal states in a GridWorld.
// Each transition into a goal cell is rewarded with the goal reward,
// and every other transition is rewarded with the timestep reward.
// Goal cells are terminal.
type Goal struct {
	goals          map[int]bool // cell indices of goal states
	r, c           int          // total rows and columns in environment
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new goal at positions (x[i], y[i]),
// given that the gridworld has r rows and c columns. The parameter tr
// is the reward for each timestep and gr is the reward for entering a
// goal cell.
func NewGoal(x, y []int, r, c int, tr, gr float64) (*Goal, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("newGoal: x length (%d) != y length (%d)",
			len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("newGoal: at least one goal is required")
	}

	goals := make(map[int]bool, len(x))
	for i := range x {
		// Ensure that the goal is within the proper bounds
		if x[i] < 0 || x[i] >= c {
			return nil, fmt.Errorf("newGoal: x[%d] = %d outside of [0, %d)",
				i, x[i], c)
		} else if y[i] < 0 || y[i] >= r {
			return nil, fmt.Errorf("newGoal: y[%d] = %d outside of [0, %d)",
				i, y[i], r)
		}
		goals[cToInd(x[i], y[i], c)] = true
	}

	return &Goal{goals, r, c, tr, gr}, nil
}

// GetReward returns the reward for transitioning into state next
func (g *Goal) GetReward(next int) float64 {
	if g.AtGoal(next) {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal returns whether state is a goal state
func (g *Goal) AtGoal(state int) bool {
	return g.goals[state]
}

// String implements the fmt.Stringer interface
func (g *Goal) String() string {
	var builder strings.Builder
	builder.WriteString("[")
	first := true
	for ind := 0; ind < g.r*g.c; ind++ {
		if !g.goals[ind] {
			continue
		}
		if !first {
			builder.WriteString(" ")
		}
		x, y := indToC(ind, g.c)
		builder.WriteString(fmt.Sprintf("(%d, %d)", x, y))
		first = false
	}
	builder.WriteString("]")
	return builder.String()
}
