// Package experiment implements functionality for running a fixed
// policy in an environment, and for evaluating the returns that the
// policy achieves.
//
// Algorithms in package agent compute policies. This package is the
// driver loop which then acts with those policies: it resets the
// environment, repeatedly looks up the action of the current state in
// the policy, and steps the environment until the episode ends.
package experiment

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
)

// Result summarizes a single episode
type Result struct {
	Return     float64
	Steps      int
	Terminated bool // A terminal state was reached
	Truncated  bool // The episode was cut off
}

func (r Result) String() string {
	return fmt.Sprintf("Result{Return: %v, Steps: %v, Terminated: %v, "+
		"Truncated: %v}", r.Return, r.Steps, r.Terminated, r.Truncated)
}

// Evaluate runs episodes rollouts of p in env, each of at most
// maxSteps steps, and returns the return of each episode. Each
// TimeStep is additionally tracked by every tracker in t.
func Evaluate(env environment.Sampler, p policy.Table, episodes,
	maxSteps int, t ...trackers.Tracker) ([]float64, error) {
	returns := trackers.NewReturn("")
	t = append([]trackers.Tracker{returns}, t...)

	for i := 0; i < episodes; i++ {
		if _, err := Rollout(env, p, maxSteps, t...); err != nil {
			return nil, fmt.Errorf("evaluate: episode %d: %w", i, err)
		}
	}
	return returns.Data(), nil
}
