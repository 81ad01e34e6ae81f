package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/environment/frozenlake"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
)

// newTestRoot returns a root command with all subcommands attached
func newTestRoot() *cobra.Command {
	root := NewRootCmd()
	_ = NewSolveCmd(root)
	_ = NewLearnCmd(root)
	_ = NewCompareCmd(root)
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newTestRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestSolve(t *testing.T) {
	dir := t.TempDir()
	render := filepath.Join(dir, "policy.png")
	prefix := filepath.Join(dir, "vi")

	out, err := execute(t, "solve", "--rows", "3", "--cols", "3",
		"--algorithm", "valueiteration", "--render", render, "--save", prefix)
	if err != nil {
		t.Fatal(err)
	}

	// Four steps to the goal, the last of which is not penalized
	if !strings.Contains(out, "Return: -3.0000 ± 0.0000\nSteps: 4.00") {
		t.Errorf("unexpected output:\n%v", out)
	}

	for _, file := range []string{render, prefix + "-v.bin",
		prefix + "-policy.bin"} {
		if _, err := os.Stat(file); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}
}

func TestSolvePolicyIterationFrozenLake(t *testing.T) {
	out, err := execute(t, "solve", "--env", "frozenlake", "--slippery=false",
		"--algorithm", "PolicyIteration", "--discount", "0.9")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Return: 1.0000 ± 0.0000") {
		t.Errorf("unexpected output:\n%v", out)
	}
}

func TestLearn(t *testing.T) {
	dir := t.TempDir()
	plot := filepath.Join(dir, "curve.png")
	prefix := filepath.Join(dir, "q")

	out, err := execute(t, "learn", "--env", "frozenlake", "--slippery=false",
		"--episodes", "300", "--plot", plot, "--save", prefix)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Q:") || !strings.Contains(out, "Policy:") {
		t.Errorf("unexpected output:\n%v", out)
	}

	history, err := trackers.LoadHistory(prefix + "-history.bin")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 3 {
		t.Errorf("want 3 history samples, have %v", history)
	}
	for _, file := range []string{plot, prefix + "-q.bin",
		prefix + "-policy.bin"} {
		if _, err := os.Stat(file); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "--rows", "3", "--cols", "3",
		"--episodes", "200", "--seeds", "2", "--progress=false",
		"--algorithms", "QLearning,TD")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"QLearning", "TD"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing %v in output:\n%v", name, out)
		}
	}
}

func TestLearnMaze(t *testing.T) {
	for _, generator := range []string{"backtracking", "wilson"} {
		out, err := execute(t, "learn", "--env", "maze", "--maze", generator,
			"--rows", "3", "--cols", "3", "--episodes", "300")
		if err != nil {
			t.Fatalf("%v: %v", generator, err)
		}
		if !strings.Contains(out, "Steps:") {
			t.Errorf("%v: unexpected output:\n%v", generator, out)
		}
	}
}

func TestUniformStart(t *testing.T) {
	out, err := execute(t, "solve", "--rows", "3", "--cols", "3",
		"--start", "uniform", "--eval-episodes", "20")
	if err != nil {
		t.Fatal(err)
	}

	// Starting in any non-goal cell takes at most four steps to the goal
	if strings.Contains(out, "Steps: 4.00") || !strings.Contains(out,
		"Steps:") {
		t.Errorf("want mean episode length below 4, have output:\n%v", out)
	}
}

// TestGymShutdownOnce checks that Gym is shut down only once all runs of
// a command are finished, and never before creating an environment
func TestGymShutdownOnce(t *testing.T) {
	defer func(n func(string, uint64) (environment.Sampler, func() error,
		error), s func()) {
		newGym, shutdownGym = n, s
	}(newGym, shutdownGym)

	var created, closed, shutdowns int
	newGym = func(name string, seed uint64) (environment.Sampler,
		func() error, error) {
		if shutdowns > 0 {
			t.Fatalf("environment created after Gym shut down")
		}
		if name != "FrozenLake-v1" {
			t.Fatalf("unexpected environment %v", name)
		}
		created++
		f, err := frozenlake.New(frozenlake.Map4x4, false, seed)
		return f, func() error { closed++; return nil }, err
	}
	shutdownGym = func() { shutdowns++ }

	_, err := execute(t, "compare", "--env", "gym", "--episodes", "50",
		"--seeds", "3", "--progress=false", "--algorithms", "QLearning,Sarsa")
	if err != nil {
		t.Fatal(err)
	}
	if created != 6 || closed != 6 {
		t.Errorf("want 6 environments created and closed, have %d and %d",
			created, closed)
	}
	if shutdowns != 1 {
		t.Errorf("want a single shutdown, have %d", shutdowns)
	}
}

func TestInvalidCommands(t *testing.T) {
	tests := [][]string{
		{"solve", "--algorithm", "QLearning"},
		{"learn", "--algorithm", "ValueIteration"},
		{"learn", "--algorithm", "unknown"},
		{"solve", "--env", "unknown"},
		{"solve", "--discount", "1"},
		{"solve", "--env", "frozenlake", "--render", "policy.png"},
		{"learn", "--log-level", "loud"},
		{"learn", "--env", "maze", "--maze", "prim"},
		{"solve", "--env", "maze"},
		{"solve", "--start", "random"},
	}

	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: want error", args)
		}
	}
}
