package experiment

import (
	"testing"

	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment/gridworld"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
)

// corridor returns a 1x4 gridworld which starts in the leftmost cell
// and ends in the rightmost cell, with reward -1 on each step
func corridor(t *testing.T) *gridworld.GridWorld {
	t.Helper()

	goal, err := gridworld.NewGoal([]int{3}, []int{0}, 1, 4, -1, -1)
	if err != nil {
		t.Fatal(err)
	}
	start, err := gridworld.NewSingleStart(0, 0, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	g, _, err := gridworld.New(1, 4, goal, start)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func right(states int) policy.Table {
	p := policy.NewTable(states)
	for s := range p {
		p[s] = gridworld.Right
	}
	return p
}

func TestRolloutFollowsPolicy(t *testing.T) {
	env := corridor(t)
	lengths := trackers.NewEpisodeLength("")

	result, err := Rollout(env, right(env.NumStates()), 100, lengths)
	if err != nil {
		t.Fatal(err)
	}

	want := Result{Return: -3, Steps: 3, Terminated: true}
	if result != want {
		t.Errorf("want %v, have %v", want, result)
	}
	if data := lengths.Data(); len(data) != 1 || data[0] != 3 {
		t.Errorf("want tracked length 3, have %v", data)
	}
}

func TestRolloutTruncates(t *testing.T) {
	env := corridor(t)

	// Moving left from the leftmost cell never reaches the goal
	p := policy.NewTable(env.NumStates())
	for s := range p {
		p[s] = gridworld.Left
	}

	result, err := Rollout(env, p, 10)
	if err != nil {
		t.Fatal(err)
	}

	want := Result{Return: -10, Steps: 10, Truncated: true}
	if result != want {
		t.Errorf("want %v, have %v", want, result)
	}
}

func TestRolloutInvalidPolicy(t *testing.T) {
	env := corridor(t)
	if _, err := Rollout(env, policy.Table{0}, 10); err == nil {
		t.Error("want error for policy of the wrong size")
	}
}

func TestEvaluate(t *testing.T) {
	env := corridor(t)

	returns, err := Evaluate(env, right(env.NumStates()), 5, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(returns) != 5 {
		t.Fatalf("want 5 returns, have %v", returns)
	}
	for i, r := range returns {
		if r != -3 {
			t.Errorf("episode %d: want return -3, have %v", i, r)
		}
	}
}
