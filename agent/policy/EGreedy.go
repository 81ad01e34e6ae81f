package policy

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultDecay is the multiplicative decay applied to ε after each
	// episode
	DefaultDecay float64 = 0.9995

	// DefaultMinEpsilon is the floor below which ε is never decayed
	DefaultMinEpsilon float64 = 0.01
)

// EGreedy implements an ε-greedy action selection rule over a table of
// action values. With probability ε an action is selected uniformly
// at random, otherwise the greedy action is selected.
//
// The value of ε can be decayed multiplicatively, and is floored at a
// minimum value.
type EGreedy struct {
	epsilon    float64
	decay      float64
	minEpsilon float64
	rng        *rand.Rand
}

// NewEGreedy constructs a new EGreedy selection rule with initial
// exploration rate e, which is decayed by DefaultDecay down to at least
// DefaultMinEpsilon on each call to Decay
func NewEGreedy(e float64, seed uint64) (*EGreedy, error) {
	return NewDecayingEGreedy(e, DefaultDecay, DefaultMinEpsilon, seed)
}

// NewDecayingEGreedy constructs a new EGreedy selection rule with
// initial exploration rate e, multiplicative decay rate decay and
// exploration floor minEpsilon
func NewDecayingEGreedy(e, decay, minEpsilon float64,
	seed uint64) (*EGreedy, error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon must be in [0, 1], "+
			"have %v", e)
	}
	if decay <= 0 || decay > 1 {
		return nil, fmt.Errorf("newEGreedy: decay must be in (0, 1], "+
			"have %v", decay)
	}
	if minEpsilon < 0 || minEpsilon > 1 {
		return nil, fmt.Errorf("newEGreedy: minimum epsilon must be in "+
			"[0, 1], have %v", minEpsilon)
	}

	return &EGreedy{
		epsilon:    e,
		decay:      decay,
		minEpsilon: minEpsilon,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// SelectAction selects an action in state from an ε-greedy policy with
// respect to the action values q
func (p *EGreedy) SelectAction(q *mat.Dense, state int) int {
	_, actions := q.Dims()
	if p.rng.Float64() < p.epsilon {
		return p.rng.Intn(actions)
	}
	return GreedyAction(q.RawRowView(state))
}

// Decay decays ε multiplicatively, never letting it fall below the
// minimum exploration rate
func (p *EGreedy) Decay() {
	p.epsilon = math.Max(p.minEpsilon, p.epsilon*p.decay)
}

// Epsilon returns the current exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the current exploration rate
func (p *EGreedy) SetEpsilon(e float64) {
	p.epsilon = e
}
