package frozenlake

import (
	"testing"

	"github.com/samuelfneumann/gotabular/environment"
)

func TestNewInvalidMaps(t *testing.T) {
	maps := map[string][]string{
		"empty":         {},
		"ragged":        {"SF", "F"},
		"no start":      {"FF", "FG"},
		"no goal":       {"SF", "FF"},
		"two starts":    {"SS", "FG"},
		"unknown tiles": {"SX", "FG"},
	}

	for name, desc := range maps {
		if _, err := New(desc, false, 1); err == nil {
			t.Errorf("%s: want error, have nil", name)
		}
	}
}

func TestModelWellFormed(t *testing.T) {
	for _, slippery := range []bool{false, true} {
		for _, desc := range [][]string{Map4x4, Map8x8} {
			f, err := New(desc, slippery, 1)
			if err != nil {
				t.Fatal(err)
			}

			for s := 0; s < f.NumStates(); s++ {
				for a := 0; a < f.NumActions(); a++ {
					transitions, err := f.Transitions(s, a)
					if err != nil {
						t.Fatal(err)
					}
					err = environment.CheckTransitions(f, transitions)
					if err != nil {
						t.Errorf("slippery %v: transitions(%d, %d): %v",
							slippery, s, a, err)
					}
				}
			}
		}
	}
}

func TestSlipperyOutcomes(t *testing.T) {
	f, err := New(Map4x4, true, 1)
	if err != nil {
		t.Fatal(err)
	}

	// From the start in the top left corner, moving Right slips Down,
	// moves Right, or slips Up (staying in place)
	transitions, err := f.Transitions(0, Right)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{4, 1, 0}
	if len(transitions) != len(want) {
		t.Fatalf("want %d outcomes, have %d", len(want), len(transitions))
	}
	for i, tr := range transitions {
		if tr.NextState != want[i] {
			t.Errorf("outcome %d: want next state %d, have %d", i, want[i],
				tr.NextState)
		}
	}
}

func TestDeterministicEpisode(t *testing.T) {
	f, err := New(Map4x4, false, 1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.Reset(); err != nil {
		t.Fatal(err)
	}

	// Down, Down, Right, Right, Down, Right reaches the goal
	actions := []int{Down, Down, Right, Right, Down, Right}
	var total float64
	for i, a := range actions {
		step, err := f.Step(a)
		if err != nil {
			t.Fatal(err)
		}
		total += step.Reward

		if last := i == len(actions)-1; step.Last() != last {
			t.Fatalf("step %d: want last %v, have %v (state %d)", i, last,
				step.Last(), step.Observation)
		}
	}

	if total != 1.0 {
		t.Errorf("want return 1, have %v", total)
	}
}

func TestHoleIsTerminal(t *testing.T) {
	f, err := New(Map4x4, false, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Reset(); err != nil {
		t.Fatal(err)
	}

	// Right then Down falls in the hole at state 5
	if _, err := f.Step(Right); err != nil {
		t.Fatal(err)
	}
	step, err := f.Step(Down)
	if err != nil {
		t.Fatal(err)
	}
	if !step.Terminated() || step.Observation != 5 || step.Reward != 0 {
		t.Errorf("want terminal step in hole, have %v", step)
	}
}
