package maze

import (
	"testing"

	"github.com/samuelfneumann/gomaze"
)

// corridor returns a maze with a single row, in which every cell is
// linked to its neighbours
func corridor(t *testing.T, cols int) *Maze {
	t.Helper()

	m, step, err := New(1, cols, gomaze.NewBinaryTree(1))
	if err != nil {
		t.Fatal(err)
	}
	if !step.First() || step.Observation != 0 {
		t.Fatalf("want first step in state 0, have %v", step)
	}
	return m
}

func TestCorridor(t *testing.T) {
	m := corridor(t, 3)

	// Walking into the west wall leaves the agent in place
	step, err := m.Step(Left)
	if err != nil {
		t.Fatal(err)
	}
	if step.Observation != 0 || step.Reward != -1 || step.Last() {
		t.Errorf("unexpected step %v", step)
	}

	step, err = m.Step(Right)
	if err != nil {
		t.Fatal(err)
	}
	if step.Observation != 1 || step.Reward != -1 || step.Last() {
		t.Errorf("unexpected step %v", step)
	}

	step, err = m.Step(Right)
	if err != nil {
		t.Fatal(err)
	}
	if step.Observation != 2 || step.Reward != 0 || !step.Terminated() {
		t.Errorf("want terminal step in goal state 2, have %v", step)
	}
	if step.Number != 3 {
		t.Errorf("want step number 3, have %d", step.Number)
	}

	step, err = m.Reset()
	if err != nil {
		t.Fatal(err)
	}
	if step.Observation != 0 || step.Number != 0 {
		t.Errorf("reset: unexpected step %v", step)
	}
}

func TestEveryIniter(t *testing.T) {
	for _, name := range Initers() {
		init, err := NewIniter(name, 7)
		if err != nil {
			t.Fatal(err)
		}

		m, _, err := New(4, 5, init)
		if err != nil {
			t.Fatalf("%v: %v", name, err)
		}
		if m.NumStates() != 20 || m.NumActions() != 4 {
			t.Fatalf("%v: unexpected cardinalities (%d, %d)", name,
				m.NumStates(), m.NumActions())
		}

		for i := 0; i < 200; i++ {
			step, err := m.Step(i % m.NumActions())
			if err != nil {
				t.Fatalf("%v: step %d: %v", name, i, err)
			}
			if step.Last() {
				if _, err := m.Reset(); err != nil {
					t.Fatal(err)
				}
			}
		}
	}
}

func TestInvalid(t *testing.T) {
	if _, err := NewIniter("prim", 1); err == nil {
		t.Error("want error for unknown maze generator")
	}
	if _, _, err := New(0, 3, gomaze.NewBinaryTree(1)); err == nil {
		t.Error("want error for maze without rows")
	}
	if _, _, err := New(1, 1, gomaze.NewBinaryTree(1)); err == nil {
		t.Error("want error for single cell maze")
	}

	m := corridor(t, 2)
	if _, err := m.Step(gomaze.Actions); err == nil {
		t.Error("want error for out of range action")
	}
}
