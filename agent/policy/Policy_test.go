package policy

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gotabular/environment"
)

type cardinalities struct {
	states, actions int
}

func (c cardinalities) NumStates() int  { return c.states }
func (c cardinalities) NumActions() int { return c.actions }

var _ environment.Environment = cardinalities{}

func TestGreedyTieBreak(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{[]float64{0, 0, 0}, 0},
		{[]float64{1, 2, 2}, 1},
		{[]float64{-1, -1, -2}, 0},
		{[]float64{3, 5, 4}, 1},
		{[]float64{0, 0, 7}, 2},
	}

	for _, test := range tests {
		// Repeated calls must always return the same action
		for i := 0; i < 10; i++ {
			if have := GreedyAction(test.values); have != test.want {
				t.Fatalf("%v: want %d, have %d", test.values, test.want, have)
			}
		}
	}
}

func TestGreedyTable(t *testing.T) {
	q := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		5, 5,
	})

	p := Greedy(q)
	want := Table{0, 1, 0}
	for s := range want {
		if p.Action(s) != want[s] {
			t.Errorf("state %d: want %d, have %d", s, want[s], p.Action(s))
		}
	}

	if err := p.Validate(cardinalities{3, 2}); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestTableValidate(t *testing.T) {
	env := cardinalities{2, 2}

	if err := (Table{0}).Validate(env); err == nil {
		t.Error("want error for too few states")
	}
	if err := (Table{0, 2}).Validate(env); err == nil {
		t.Error("want error for out of range action")
	}
	if err := (Table{1, 0}).Validate(env); err != nil {
		t.Errorf("want nil error, have %v", err)
	}
}

func TestEpsilonDecayFloor(t *testing.T) {
	p, err := NewEGreedy(1.0, 1)
	if err != nil {
		t.Fatal(err)
	}

	previous := p.Epsilon()
	for i := 0; i < 20_000; i++ {
		p.Decay()
		if p.Epsilon() < DefaultMinEpsilon {
			t.Fatalf("episode %d: epsilon %v below floor", i, p.Epsilon())
		}
		if p.Epsilon() > previous {
			t.Fatalf("episode %d: epsilon increased", i)
		}
		previous = p.Epsilon()
	}

	if p.Epsilon() != DefaultMinEpsilon {
		t.Errorf("want epsilon to reach floor %v, have %v", DefaultMinEpsilon,
			p.Epsilon())
	}
}

func TestEGreedySelection(t *testing.T) {
	q := mat.NewDense(1, 4, []float64{0, 0, 1, 0})

	greedy, err := NewEGreedy(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if a := greedy.SelectAction(q, 0); a != 2 {
			t.Fatalf("greedy selection: want 2, have %d", a)
		}
	}

	random, err := NewEGreedy(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	counts := make([]int, 4)
	for i := 0; i < 4000; i++ {
		counts[random.SelectAction(q, 0)]++
	}
	for a, count := range counts {
		if count < 800 {
			t.Errorf("action %d selected only %d times", a, count)
		}
	}
}

func TestNewEGreedyInvalid(t *testing.T) {
	if _, err := NewEGreedy(-0.1, 1); err == nil {
		t.Error("want error for negative epsilon")
	}
	if _, err := NewDecayingEGreedy(0.1, 0, 0.01, 1); err == nil {
		t.Error("want error for zero decay")
	}
	if _, err := NewDecayingEGreedy(0.1, 0.9, 2, 1); err == nil {
		t.Error("want error for minimum epsilon above 1")
	}
}
