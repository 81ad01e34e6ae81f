package wrappers

import (
	"testing"

	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/environment/explicit"
)

// loop returns an MDP with a single state which is never left
func loop(t *testing.T) *explicit.MDP {
	t.Helper()

	p := [][][]environment.Transition{
		{{{Probability: 1, NextState: 0, Reward: 1}}},
	}
	m, err := explicit.New(p, environment.NewSingleStart(0), 1)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestStepLimitTruncates(t *testing.T) {
	limit := 5
	env, err := NewStepLimit(loop(t), limit)
	if err != nil {
		t.Fatal(err)
	}

	for episode := 0; episode < 3; episode++ {
		if _, err := env.Reset(); err != nil {
			t.Fatal(err)
		}

		for i := 1; i <= limit; i++ {
			step, err := env.Step(0)
			if err != nil {
				t.Fatal(err)
			}

			if i < limit && step.Last() {
				t.Fatalf("episode %d: step %d should not be last", episode, i)
			}
			if i == limit && (!step.Truncated() || step.Terminated()) {
				t.Fatalf("episode %d: step %d should be truncated, have %v",
					episode, i, step)
			}
		}
	}
}

func TestStepLimitModel(t *testing.T) {
	env, err := NewStepLimit(loop(t), 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.Model(); !ok {
		t.Error("wrapped explicit MDP should expose its model")
	}
}

func TestNewStepLimitInvalid(t *testing.T) {
	if _, err := NewStepLimit(loop(t), 0); err == nil {
		t.Error("want error for non-positive step limit")
	}
}
