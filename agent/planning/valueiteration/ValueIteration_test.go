package valueiteration

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/planning/policyiteration"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/environment/explicit"
)

func step(next int, reward float64, terminal bool) []environment.Transition {
	return []environment.Transition{{
		Probability: 1,
		NextState:   next,
		Reward:      reward,
		Terminal:    terminal,
	}}
}

func mdp(t *testing.T, p [][][]environment.Transition) *explicit.MDP {
	t.Helper()

	m, err := explicit.New(p, environment.NewSingleStart(0), 1)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// episodic returns an MDP in which action 0 in state 0 reaches the
// absorbing state 1 with reward 10, and action 1 stays in state 0
func episodic(t *testing.T) *explicit.MDP {
	return mdp(t, [][][]environment.Transition{
		{step(1, 10, true), step(0, 0, false)},
		{step(1, 0, true), step(1, 0, true)},
	})
}

// continuing returns an MDP in which staying in state 0 yields reward 1
// and staying in state 1 yields reward 2. Moving between the states
// yields no reward. With discount 0.9 the optimal values are
// V(1) = 2 / (1 - 0.9) = 20 and V(0) = 0.9 V(1) = 18, and the optimal
// policy moves from state 0 and stays in state 1.
func continuing(t *testing.T) *explicit.MDP {
	return mdp(t, [][][]environment.Transition{
		{step(0, 1, false), step(1, 0, false)},
		{step(1, 2, false), step(0, 0, false)},
	})
}

func TestValueIterationEpisodic(t *testing.T) {
	vi, err := New(episodic(t), Config{Discount: 0.9, Iterations: 10}, 0)
	if err != nil {
		t.Fatal(err)
	}

	p, err := vi.Solve()
	if err != nil {
		t.Fatal(err)
	}

	if !floats.Equal(vi.V().RawVector().Data, []float64{10, 0}) {
		t.Errorf("want V = [10 0], have %v", vi.V().RawVector().Data)
	}
	if p[0] != 0 || p[1] != 0 {
		t.Errorf("want policy [0 0], have %v", p)
	}
}

func TestAgreesWithPolicyIteration(t *testing.T) {
	const tol = 1e-6
	wantV := []float64{18, 20}
	wantP := []int{1, 0}

	vi, err := New(continuing(t), Config{Discount: 0.9, Iterations: 500}, 0)
	if err != nil {
		t.Fatal(err)
	}
	viPolicy, err := vi.Solve()
	if err != nil {
		t.Fatal(err)
	}

	pi, err := policyiteration.New(continuing(t),
		policyiteration.Config{Discount: 0.9, Iterations: 500}, 3)
	if err != nil {
		t.Fatal(err)
	}
	piPolicy, err := pi.Solve()
	if err != nil {
		t.Fatal(err)
	}

	if !floats.EqualApprox(vi.V().RawVector().Data, wantV, tol) {
		t.Errorf("value iteration: want V = %v, have %v", wantV,
			vi.V().RawVector().Data)
	}
	if !floats.EqualApprox(pi.V().RawVector().Data, wantV, tol) {
		t.Errorf("policy iteration: want V = %v, have %v", wantV,
			pi.V().RawVector().Data)
	}
	for s := range wantP {
		if viPolicy[s] != wantP[s] || piPolicy[s] != wantP[s] {
			t.Errorf("state %d: want action %d, have %d (value iteration) "+
				"and %d (policy iteration)", s, wantP[s], viPolicy[s],
				piPolicy[s])
		}
	}
}

func TestInPlaceSweep(t *testing.T) {
	// State 0 leads to state 1, which leads to the absorbing state 2
	// with reward 1. Since states are swept in ascending order, state 0
	// only sees the value of state 1 on the second sweep.
	env := mdp(t, [][][]environment.Transition{
		{step(1, 0, false)},
		{step(2, 1, true)},
		{step(2, 0, true)},
	})

	vi, err := New(env, Config{Discount: 0.5, Iterations: 1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := vi.IterateValue(); err != nil {
		t.Fatal(err)
	}
	if want := []float64{0, 1, 0}; !floats.Equal(vi.V().RawVector().Data,
		want) {
		t.Errorf("after one sweep: want V = %v, have %v", want,
			vi.V().RawVector().Data)
	}

	if err := vi.IterateValue(); err != nil {
		t.Fatal(err)
	}
	if want := []float64{0.5, 1, 0}; !floats.Equal(vi.V().RawVector().Data,
		want) {
		t.Errorf("after two sweeps: want V = %v, have %v", want,
			vi.V().RawVector().Data)
	}
}

func TestOptimalPolicyBeforeIterateValue(t *testing.T) {
	env := episodic(t)
	vi, err := New(env, Config{Discount: 0.9, Iterations: 10}, 0)
	if err != nil {
		t.Fatal(err)
	}

	p, err := vi.OptimalPolicy()
	if err != nil {
		t.Fatalf("want nil error, have %v", err)
	}
	if err := p.Validate(env); err != nil {
		t.Error(err)
	}
	if v := vi.V().RawVector().Data; !floats.Equal(v, []float64{0, 0}) {
		t.Errorf("want zero values, have %v", v)
	}
}

func TestTieBreak(t *testing.T) {
	// All actions are equivalent in every state
	env := mdp(t, [][][]environment.Transition{
		{step(1, 1, false), step(1, 1, false), step(1, 1, false)},
		{step(0, 1, false), step(0, 1, false), step(0, 1, false)},
	})

	for i := 0; i < 5; i++ {
		vi, err := New(env, Config{Discount: 0.9, Iterations: 20}, uint64(i))
		if err != nil {
			t.Fatal(err)
		}
		p, err := vi.Solve()
		if err != nil {
			t.Fatal(err)
		}
		if p[0] != 0 || p[1] != 0 {
			t.Fatalf("run %d: want policy [0 0], have %v", i, p)
		}
	}
}

func TestConfig(t *testing.T) {
	c, err := agent.NewConfig(agent.ValueIteration,
		agent.Hyperparameters{Discount: 0.9, Iterations: 10})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}

	solver, err := c.CreateAgent(episodic(t), 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := solver.(*ValueIteration); !ok {
		t.Errorf("want *ValueIteration, have %T", solver)
	}

	invalid := Config{Discount: -0.1, Iterations: -1}
	if err := invalid.Validate(); err == nil {
		t.Error("want error for invalid config")
	}
}
