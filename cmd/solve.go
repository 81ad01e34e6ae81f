package cmd

import (
	"encoding"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotabular/agent"
)

func NewSolveCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "solve",
		Short: "Compute a policy from the transition model of an environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runSolve(cmd)
		},
	}
	c.Flags().String("algorithm", string(agent.ValueIteration),
		"Algorithm to use (PolicyIteration, ValueIteration)")
	addEnvironmentFlags(c)
	addHyperparameterFlags(c)
	addOutputFlags(c, false)
	root.AddCommand(c)
	return c
}

var _ = NewSolveCmd(rootCmd)

func runSolve(cmd *cobra.Command) error {
	name, _ := cmd.Flags().GetString("algorithm")
	seed, _ := cmd.Flags().GetUint64("seed")

	t, err := parseType(name)
	if err != nil {
		return err
	}

	defer releaseGym()

	h, err := newEnvironment(cmd, seed)
	if err != nil {
		return err
	}
	defer h.close()

	solver, err := newSolver(t, readHyperparameters(cmd), h.env, seed,
		logrus.StandardLogger())
	if err != nil {
		return err
	}
	planner, ok := solver.(agent.Planner)
	if !ok {
		return fmt.Errorf("%v does not use a transition model, use the "+
			"learn command instead", t)
	}

	logrus.WithField("algorithm", t).Info("solving")
	p, err := planner.Solve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printValues(out, h, planner.V()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Policy: %v\n", p)

	eval, err := evaluate(cmd, h, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, eval)

	return writeOutputs(cmd, h, p, map[string]encoding.BinaryMarshaler{
		"v":      planner.V(),
		"policy": p,
	})
}
