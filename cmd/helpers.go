package cmd

import (
	"encoding"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/agent/policy"
	"github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/environment/frozenlake"
	"github.com/samuelfneumann/gotabular/environment/gridworld"
	"github.com/samuelfneumann/gotabular/environment/gym"
	"github.com/samuelfneumann/gotabular/environment/maze"
	"github.com/samuelfneumann/gotabular/environment/wrappers"
	"github.com/samuelfneumann/gotabular/experiment"
	"github.com/samuelfneumann/gotabular/experiment/checkpointer"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
	"github.com/samuelfneumann/gotabular/utils/matutils"

	// Register all algorithms with package agent
	_ "github.com/samuelfneumann/gotabular/agent/planning/policyiteration"
	_ "github.com/samuelfneumann/gotabular/agent/planning/valueiteration"
	_ "github.com/samuelfneumann/gotabular/agent/tabular/qlearning"
	_ "github.com/samuelfneumann/gotabular/agent/tabular/sarsa"
	_ "github.com/samuelfneumann/gotabular/agent/tabular/td"
)

// newGym creates a Gym environment and returns it together with the
// function which closes it. Tests replace newGym and shutdownGym since
// they cannot start a Python interpreter.
var newGym = func(name string, seed uint64) (environment.Sampler,
	func() error, error) {
	g, _, err := gym.New(name, seed)
	if err != nil {
		return nil, nil, err
	}
	return g, g.Close, nil
}

var shutdownGym = gym.Shutdown

// gymStarted reports whether a Gym environment has been created since
// the last call to releaseGym
var gymStarted bool

// releaseGym shuts down Gym if any Gym environment was created. It must
// only be called once a command has finished with all its environments.
func releaseGym() {
	if gymStarted {
		shutdownGym()
		gymStarted = false
	}
}

// handle is an environment constructed from command line flags
type handle struct {
	env      environment.Sampler
	grid     *gridworld.GridWorld // Set only for gridworlds
	maxSteps int
	close    func()
}

// newEnvironment constructs the environment selected by the flags of
// cmd. Episodes of the returned environment are cut off after the
// number of steps given by --max-steps.
func newEnvironment(cmd *cobra.Command, seed uint64) (*handle, error) {
	name, _ := cmd.Flags().GetString("env")
	maxSteps, _ := cmd.Flags().GetInt("max-steps")

	h := &handle{maxSteps: maxSteps, close: func() {}}
	var env environment.Sampler

	switch strings.ToLower(name) {
	case "gridworld":
		rows, _ := cmd.Flags().GetInt("rows")
		cols, _ := cmd.Flags().GetInt("cols")

		goal, err := gridworld.NewGoal([]int{cols - 1}, []int{rows - 1}, rows,
			cols, -1, 0)
		if err != nil {
			return nil, err
		}
		start, err := newGridStart(cmd, goal, rows, cols, seed)
		if err != nil {
			return nil, err
		}
		g, _, err := gridworld.New(rows, cols, goal, start)
		if err != nil {
			return nil, err
		}
		env, h.grid = g, g

	case "frozenlake":
		size, _ := cmd.Flags().GetString("map")
		slippery, _ := cmd.Flags().GetBool("slippery")

		desc := frozenlake.Map4x4
		switch size {
		case "4x4":
		case "8x8":
			desc = frozenlake.Map8x8
		default:
			return nil, fmt.Errorf("unknown frozen lake map %q", size)
		}

		f, err := frozenlake.New(desc, slippery, seed)
		if err != nil {
			return nil, err
		}
		env = f

	case "gym":
		gymName, _ := cmd.Flags().GetString("gym-name")
		g, closeGym, err := newGym(gymName, seed)
		if err != nil {
			return nil, err
		}
		gymStarted = true
		env = g
		h.close = func() {
			if err := closeGym(); err != nil {
				logrus.WithError(err).Warn("could not close environment")
			}
		}

	case "maze":
		rows, _ := cmd.Flags().GetInt("rows")
		cols, _ := cmd.Flags().GetInt("cols")
		generator, _ := cmd.Flags().GetString("maze")

		generate, err := maze.NewIniter(generator, seed)
		if err != nil {
			return nil, err
		}
		m, _, err := maze.New(rows, cols, generate)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("maze:\n%v", m)
		env = m

	default:
		return nil, fmt.Errorf("unknown environment %q", name)
	}

	if maxSteps > 0 {
		limited, err := wrappers.NewStepLimit(env, maxSteps)
		if err != nil {
			h.close()
			return nil, err
		}
		env = limited
	}
	h.env = env
	return h, nil
}

// newGridStart returns the gridworld Starter selected by the --start
// flag of cmd
func newGridStart(cmd *cobra.Command, goal *gridworld.Goal, rows, cols int,
	seed uint64) (environment.Starter, error) {
	start, _ := cmd.Flags().GetString("start")

	switch strings.ToLower(start) {
	case "fixed":
		return gridworld.NewSingleStart(0, 0, rows, cols)
	case "uniform":
		return gridworld.NewUniformStart(goal, rows, cols, seed)
	}
	return nil, fmt.Errorf("unknown gridworld start %q, want fixed or "+
		"uniform", start)
}

// newSolver creates and validates the algorithm t with hyperparameters
// h, logging with logger
func newSolver(t agent.Type, h agent.Hyperparameters,
	env environment.Environment, seed uint64,
	logger logrus.FieldLogger) (agent.Solver, error) {
	config, err := agent.NewConfig(t, h)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %v configuration: %w", t, err)
	}

	solver, err := config.CreateAgent(env, seed)
	if err != nil {
		return nil, err
	}
	if l, ok := solver.(interface{ SetLogger(logrus.FieldLogger) }); ok {
		l.SetLogger(logger.WithField("algorithm", t))
	}
	return solver, nil
}

// parseType returns the registered agent.Type named name, ignoring case
func parseType(name string) (agent.Type, error) {
	for _, t := range agent.Types() {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm %q, want one of %v", name,
		agent.Types())
}

// evaluation summarizes the rollouts of a policy
type evaluation struct {
	returns []float64
	lengths []float64
}

func (e evaluation) String() string {
	mean, std := meanStdDev(e.returns)
	steps, _ := meanStdDev(e.lengths)
	return fmt.Sprintf("Return: %.4f ± %.4f\nSteps: %.2f", mean, std, steps)
}

// evaluate rolls out p for the number of episodes given by the
// --eval-episodes flag of cmd
func evaluate(cmd *cobra.Command, h *handle, p policy.Table) (evaluation,
	error) {
	episodes, _ := cmd.Flags().GetInt("eval-episodes")
	if episodes <= 0 {
		return evaluation{}, nil
	}

	lengths := trackers.NewEpisodeLength("")
	returns, err := experiment.Evaluate(h.env, p, episodes, h.maxSteps,
		lengths)
	if err != nil {
		return evaluation{}, err
	}
	return evaluation{returns: returns, lengths: lengths.Data()}, nil
}

// meanStdDev returns the mean and sample standard deviation of x. The
// standard deviation of fewer than two values is reported as zero, as
// is the mean of no values.
func meanStdDev(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}
	return stat.MeanStdDev(x, nil)
}

// printValues prints the state values v, arranged as the grid of a
// gridworld if possible
func printValues(out io.Writer, h *handle, v mat.Vector) error {
	if h.grid == nil {
		fmt.Fprintf(out, "V:\n%v\n", matutils.Format(v))
		return nil
	}

	rows, cols := h.grid.Dims()
	grid, err := matutils.Grid(v, rows, cols)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "V:\n%v\n", matutils.Format(grid))
	return nil
}

// writeOutputs renders and saves p and tables according to the
// --render and --save flags
func writeOutputs(cmd *cobra.Command, h *handle, p policy.Table,
	tables map[string]encoding.BinaryMarshaler) error {
	render, _ := cmd.Flags().GetString("render")
	if render != "" {
		if h.grid == nil {
			return fmt.Errorf("--render is only supported for gridworlds")
		}
		if err := h.grid.SavePNG(p, render); err != nil {
			return err
		}
		logrus.WithField("file", render).Info("rendered policy")
	}

	prefix, _ := cmd.Flags().GetString("save")
	if prefix == "" {
		return nil
	}
	for name, table := range tables {
		filename := prefix + "-" + name + ".bin"
		if err := checkpointer.Save(table, filename); err != nil {
			return err
		}
		logrus.WithField("file", filename).Info("saved " + name)
	}
	return nil
}
