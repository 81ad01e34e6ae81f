package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// SingleStart is a Starter which always starts in the same state
type SingleStart struct {
	state int
}

// NewSingleStart returns a Starter which always returns state
func NewSingleStart(state int) SingleStart {
	return SingleStart{state}
}

// Start returns the starting state
func (s SingleStart) Start() int {
	return s.state
}

// CategoricalStarter returns starting states sampled from a categorical
// distribution over a subset of the states of an environment.
type CategoricalStarter struct {
	states []int
	rand   distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter which samples
// states[i] with probability proportional to weights[i]. If weights is
// nil, each state is sampled uniformly.
func NewCategoricalStarter(states []int, weights []float64,
	seed uint64) (*CategoricalStarter, error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no starting states")
	}

	if weights == nil {
		// Create the weights for the uniform categorical distribution
		weights = make([]float64, len(states))
		for i := range weights {
			weights[i] = 1.0 / float64(len(weights))
		}
	} else if len(weights) != len(states) {
		return nil, fmt.Errorf("newCategoricalStarter: %d weights for %d "+
			"states", len(weights), len(states))
	}

	source := rand.NewSource(seed)
	dist := distuv.NewCategorical(weights, source)

	return &CategoricalStarter{
		states: append([]int(nil), states...),
		rand:   dist,
	}, nil
}

// Start returns a starting state
func (c *CategoricalStarter) Start() int {
	return c.states[int(c.rand.Rand())]
}
