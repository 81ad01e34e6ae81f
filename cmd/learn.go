package cmd

import (
	"encoding"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/experiment/curves"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
	"github.com/samuelfneumann/gotabular/utils/matutils"
)

func NewLearnCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "learn",
		Short: "Learn a policy by interacting with an environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runLearn(cmd)
		},
	}
	c.Flags().String("algorithm", string(agent.QLearning),
		"Algorithm to use (QLearning, Sarsa, TD)")
	addEnvironmentFlags(c)
	addHyperparameterFlags(c)
	addOutputFlags(c, true)
	root.AddCommand(c)
	return c
}

var _ = NewLearnCmd(rootCmd)

func runLearn(cmd *cobra.Command) error {
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
	learner, ok := solver.(agent.Learner)
	if !ok {
		return fmt.Errorf("%v does not learn from interaction, use the "+
			"solve command instead", t)
	}

	logrus.WithField("algorithm", t).Info("learning")
	p, err := learner.Solve()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Q:\n%v\n", matutils.Format(learner.Q()))
	fmt.Fprintf(out, "Policy: %v\n", p)

	eval, err := evaluate(cmd, h, p)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, eval)

	history := learner.History()
	if plot, _ := cmd.Flags().GetString("plot"); plot != "" {
		series := curves.Series{Name: string(t), Samples: history}
		if err := curves.Save(plot, "Learning curve", series); err != nil {
			return err
		}
		logrus.WithField("file", plot).Info("plotted learning curve")
	}

	if prefix, _ := cmd.Flags().GetString("save"); prefix != "" {
		filename := prefix + "-history.bin"
		if err := trackers.SaveHistory(filename, history); err != nil {
			return err
		}
		logrus.WithField("file", filename).Info("saved history")
	}

	return writeOutputs(cmd, h, p, map[string]encoding.BinaryMarshaler{
		"q":      learner.Q(),
		"policy": p,
	})
}
