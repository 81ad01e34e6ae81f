package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Rollout runs a single episode in env, taking the action p[s] in each
// state s, and returns a summary of the episode. Every TimeStep of the
// episode, including the first, is passed to each Tracker in t.
//
// If maxSteps is positive and the episode has not ended after maxSteps
// steps, the episode is cut off and its last TimeStep is marked as
// truncated. Otherwise, the episode runs until env ends it.
func Rollout(env environment.Sampler, p policy.Table, maxSteps int,
	t ...trackers.Tracker) (Result, error) {
	if err := p.Validate(env); err != nil {
		return Result{}, fmt.Errorf("rollout: %w", err)
	}

	step, err := env.Reset()
	if err != nil {
		return Result{}, fmt.Errorf("rollout: %w", err)
	}
	if err := track(t, step); err != nil {
		return Result{}, fmt.Errorf("rollout: %w", err)
	}

	var result Result
	for !step.Last() {
		if err := environment.CheckState(env, step.Observation); err != nil {
			return result, fmt.Errorf("rollout: %w", err)
		}

		step, err = env.Step(p.Action(step.Observation))
		if err != nil {
			return result, fmt.Errorf("rollout: %w", err)
		}
		result.Steps++
		result.Return += step.Reward

		if maxSteps > 0 && result.Steps >= maxSteps && !step.Last() {
			step.SetEnd(ts.Timeout)
		}

		if err := track(t, step); err != nil {
			return result, fmt.Errorf("rollout: %w", err)
		}
	}

	result.Terminated = step.Terminated()
	result.Truncated = step.Truncated()
	return result, nil
}

// track tracks step with each Tracker in t
func track(t []trackers.Tracker, step ts.TimeStep) error {
	for _, tracker := range t {
		if err := tracker.Track(step); err != nil {
			return err
		}
	}
	return nil
}
