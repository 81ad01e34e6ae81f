package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/environment/maze"
)

// addEnvironmentFlags adds the flags used to construct an environment
// with newEnvironment
func addEnvironmentFlags(cmd *cobra.Command) {
	cmd.Flags().String("env", "gridworld", "Environment to use (gridworld, "+
		"maze, frozenlake, gym)")
	cmd.Flags().Int("rows", 5, "Rows in the gridworld or maze")
	cmd.Flags().Int("cols", 5, "Columns in the gridworld or maze")
	cmd.Flags().String("start", "fixed", "Gridworld starting cell, either "+
		"the top left (fixed) or any non-goal cell (uniform)")
	cmd.Flags().String("maze", maze.Backtracking, "Maze generator ("+
		strings.Join(maze.Initers(), ", ")+")")
	cmd.Flags().String("map", "4x4", "Frozen lake map (4x4, 8x8)")
	cmd.Flags().Bool("slippery", true, "Use a slippery frozen lake")
	cmd.Flags().String("gym-name", "FrozenLake-v1", "Name of the OpenAI Gym "+
		"environment")
	cmd.Flags().Int("max-steps", 200, "Maximum steps per episode")
	cmd.Flags().Int("eval-episodes", 10, "Episodes used to evaluate the "+
		"final policy")
}

// addHyperparameterFlags adds the flags read by readHyperparameters
func addHyperparameterFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("discount", 0.9, "Discount factor")
	cmd.Flags().Int("iterations", 100, "Sweeps of the state space for "+
		"model-based algorithms")
	cmd.Flags().Int("episodes", 5000, "Episodes for sampling-based "+
		"algorithms")
	cmd.Flags().Float64("lr", 0.1, "Learning rate")
	cmd.Flags().Float64("epsilon", 1.0, "Initial exploration rate")
}

// addOutputFlags adds the flags which select the files written by a
// command
func addOutputFlags(cmd *cobra.Command, plot bool) {
	cmd.Flags().String("render", "", "Save an image of the policy to this "+
		"PNG file (gridworld only)")
	cmd.Flags().String("save", "", "Save the computed tables to files "+
		"with this prefix")
	if plot {
		cmd.Flags().String("plot", "", "Save the learning curve to this "+
			"PNG file")
	}
}

// readHyperparameters reads the hyperparameter flags of cmd
func readHyperparameters(cmd *cobra.Command) agent.Hyperparameters {
	var h agent.Hyperparameters
	h.Discount, _ = cmd.Flags().GetFloat64("discount")
	h.Iterations, _ = cmd.Flags().GetInt("iterations")
	h.Episodes, _ = cmd.Flags().GetInt("episodes")
	h.LearningRate, _ = cmd.Flags().GetFloat64("lr")
	h.Epsilon, _ = cmd.Flags().GetFloat64("epsilon")
	return h
}
