package tabular

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// escaping is a Sampler which always steps to a state outside of its
// state space
type escaping struct{}

func (escaping) NumStates() int  { return 2 }
func (escaping) NumActions() int { return 2 }
func (escaping) Reset() (ts.TimeStep, error) {
	return ts.New(ts.First, 0, 0, 0), nil
}
func (escaping) Step(int) (ts.TimeStep, error) {
	return ts.New(ts.Mid, 0, 2, 1), nil
}

func TestUpdate(t *testing.T) {
	b := NewBase(escaping{}, 0.9, 0.5, 1)

	b.Update(1, 0, 4)
	if v := b.Value(1, 0); v != 2 {
		t.Errorf("want 2, have %v", v)
	}
	b.Update(1, 0, 4)
	if v := b.Value(1, 0); v != 3 {
		t.Errorf("want 3, have %v", v)
	}
	if v := b.MaxValue(1); v != 3 {
		t.Errorf("want max value 3, have %v", v)
	}

	// Q must return a copy
	b.Q().Set(1, 0, -1)
	if v := b.Value(1, 0); v != 3 {
		t.Error("mutating Q changed the action values")
	}
}

func TestStateOutOfRange(t *testing.T) {
	b := NewBase(escaping{}, 0.9, 0.5, 1)

	if _, err := b.StartEpisode(); err != nil {
		t.Fatal(err)
	}
	if _, err := b.TakeAction(0); !errors.Is(err,
		environment.ErrStateOutOfRange) {
		t.Errorf("want %v, have %v", environment.ErrStateOutOfRange, err)
	}
}

func TestRun(t *testing.T) {
	b := NewBase(escaping{}, 0.9, 0.5, 250)
	explorer, err := policy.NewEGreedy(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	var calls int
	run := func() (float64, error) {
		calls++
		return float64(calls), nil
	}

	if err := b.Run(run, explorer); err != nil {
		t.Fatal(err)
	}
	if calls != 250 {
		t.Errorf("want 250 episodes, have %d", calls)
	}
	if explorer.Epsilon() >= 1 {
		t.Error("epsilon was not decayed")
	}

	// A second run continues the history
	if err := b.Run(run, nil); err != nil {
		t.Fatal(err)
	}
	history := b.History()
	want := []int{0, 100, 200, 300, 400}
	if len(history) != len(want) {
		t.Fatalf("want %d samples, have %v", len(want), history)
	}
	for i, sample := range history {
		if sample.Episode != want[i] || sample.Reward != float64(want[i]+1) {
			t.Errorf("sample %d: unexpected %+v", i, sample)
		}
	}
}

func TestRunError(t *testing.T) {
	b := NewBase(escaping{}, 0.9, 0.5, 10)
	want := errors.New("failed")

	err := b.Run(func() (float64, error) { return 0, want }, nil)
	if !errors.Is(err, want) {
		t.Errorf("want %v, have %v", want, err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(1, 0.1, 10).ErrorOrNil(); err != nil {
		t.Errorf("want nil error, have %v", err)
	}

	err := Validate(1.5, 0, -1)
	if err == nil || len(err.Errors) != 3 {
		t.Errorf("want 3 errors, have %v", err)
	}

	if err := ValidateEpsilon(nil, 2).ErrorOrNil(); err == nil {
		t.Error("want error for epsilon above 1")
	}
}
