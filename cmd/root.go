// Package cmd implements the gotabular command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the gotabular command without any subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gotabular",
		Short: "Tabular reinforcement learning on finite MDPs",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("log-level")
			level, err := logrus.ParseLevel(name)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
			return nil
		},
	}
	cmd.PersistentFlags().String("log-level", "info", "Set log level "+
		"(trace, debug, info, warn, error)")
	cmd.PersistentFlags().Uint64("seed", 1, "Set random seed")
	return cmd
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = NewRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
