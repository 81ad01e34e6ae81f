package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gotabular/agent"
	"github.com/samuelfneumann/gotabular/experiment/checkpointer"
	"github.com/samuelfneumann/gotabular/experiment/curves"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
	"github.com/samuelfneumann/gotabular/utils/progressbar"
)

func NewCompareCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "compare",
		Short: "Compare learning algorithms over multiple seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runCompare(cmd)
		},
	}
	c.Flags().StringSlice("algorithms", []string{
		string(agent.QLearning),
		string(agent.Sarsa),
		string(agent.TemporalDifference),
	}, "Algorithms to compare")
	c.Flags().Int("seeds", 5, "Number of seeds to run for each algorithm")
	c.Flags().Bool("progress", true, "Display a progress bar")
	addEnvironmentFlags(c)
	addHyperparameterFlags(c)
	c.Flags().String("plot", "", "Save the mean learning curves to this "+
		"PNG file")
	c.Flags().String("save", "", "Save the action values of each run to "+
		"files with this prefix")
	root.AddCommand(c)
	return c
}

var _ = NewCompareCmd(rootCmd)

// comparison is the outcome of running one algorithm over all seeds
type comparison struct {
	t         agent.Type
	histories [][]trackers.Sample
	returns   []float64 // Mean evaluation return of each seed
}

func runCompare(cmd *cobra.Command) error {
	names, _ := cmd.Flags().GetStringSlice("algorithms")
	seeds, _ := cmd.Flags().GetInt("seeds")
	baseSeed, _ := cmd.Flags().GetUint64("seed")
	showProgress, _ := cmd.Flags().GetBool("progress")
	prefix, _ := cmd.Flags().GetString("save")

	if seeds <= 0 {
		return fmt.Errorf("seeds must be positive, have %d", seeds)
	}

	defer releaseGym()

	comparisons := make([]*comparison, len(names))
	for i, name := range names {
		t, err := parseType(name)
		if err != nil {
			return err
		}
		comparisons[i] = &comparison{t: t}
	}

	var bar *progressbar.ManualProgressBar
	if showProgress {
		bar = progressbar.NewManualProgressBar(cmd.ErrOrStderr(), 40,
			len(comparisons)*seeds)
		defer bar.Close()
	}

	var save *checkpointer.Checkpointer
	if prefix != "" {
		save = checkpointer.New(checkpointer.FilenameEnumerator(0,
			prefix+"-q-", ".bin"))
	}

	for _, c := range comparisons {
		for i := 0; i < seeds; i++ {
			seed := baseSeed + uint64(i)
			if bar != nil {
				bar.SetLabel(fmt.Sprintf("%v seed %d", c.t, seed))
				bar.Display()
			}

			if err := c.run(cmd, seed, save); err != nil {
				return fmt.Errorf("%v seed %d: %w", c.t, seed, err)
			}

			if bar != nil {
				bar.Increment()
				bar.Display()
			}
		}
	}

	series := make([]curves.Series, 0, len(comparisons))
	for _, c := range comparisons {
		s, err := curves.Mean(string(c.t), c.histories...)
		if err != nil {
			return err
		}
		series = append(series, s)
	}

	if plot, _ := cmd.Flags().GetString("plot"); plot != "" {
		if err := curves.Save(plot, "Mean learning curves", series...); err != nil {
			return err
		}
		logrus.WithField("file", plot).Info("plotted learning curves")
	}

	printComparisons(cmd.OutOrStdout(), comparisons, series)
	return nil
}

// run learns with a single seed and records the results
func (c *comparison) run(cmd *cobra.Command, seed uint64,
	save *checkpointer.Checkpointer) error {
	h, err := newEnvironment(cmd, seed)
	if err != nil {
		return err
	}
	defer h.close()

	logger := logrus.WithField("seed", seed)
	solver, err := newSolver(c.t, readHyperparameters(cmd), h.env, seed,
		logger)
	if err != nil {
		return err
	}
	learner, ok := solver.(agent.Learner)
	if !ok {
		return fmt.Errorf("only learning algorithms can be compared")
	}

	p, err := learner.Solve()
	if err != nil {
		return err
	}
	c.histories = append(c.histories, learner.History())

	eval, err := evaluate(cmd, h, p)
	if err != nil {
		return err
	}
	mean, _ := meanStdDev(eval.returns)
	c.returns = append(c.returns, mean)

	if save != nil {
		filename, err := save.Checkpoint(learner.Q())
		if err != nil {
			return err
		}
		logger.WithField("file", filename).Debug("saved action values")
	}
	return nil
}

// printComparisons prints a summary table of the comparisons
func printComparisons(out io.Writer, comparisons []*comparison,
	series []curves.Series) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Algorithm\tFinal sampled return\tEvaluation return")
	for i, c := range comparisons {
		final := "-"
		if samples := series[i].Samples; len(samples) > 0 {
			final = fmt.Sprintf("%.4f", samples[len(samples)-1].Reward)
		}
		mean, std := meanStdDev(c.returns)
		fmt.Fprintf(w, "%v\t%v\t%.4f ± %.4f\n", c.t, final, mean, std)
	}
	w.Flush()
}
