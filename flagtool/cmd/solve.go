package cmd

import (
	"fmt"
	"github.com/c4t-but-s4d/crackme/log"
	"github.com/c4t-but-s4d/crackme/revision"
	"github.com/c4t-but-s4d/crackme/solve"
	"github.com/spf13/cobra"
	"time"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Recover the flag of a revision chunk by chunk",
	Args:  cobra.NoArgs,
	Run:   runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("revision", "r", revision.Default.String(), "Revision whose table is attacked")
	solveCmd.Flags().StringP("alphabet", "a", "", "Bytes a flag may contain. Defaults to printable ASCII")
	solveCmd.Flags().StringP("strategy", "s", "", "peel or exhaustive")
	solveCmd.Flags().IntP("workers", "w", 0, "Number of workers. Specify a value less than one, and the number of logical CPUs available to the process will be used")
}

func runSolve(cmd *cobra.Command, args []string) {
	opts, err := solverOptions(cmd)
	if err != nil {
		fatal(err)
	}
	name, _ := cmd.Flags().GetString("revision")
	r, err := revision.ParseRevision(name)
	if err != nil {
		fatal(err)
	}
	t, err := r.Table()
	if err != nil {
		fatal(err)
	}

	start := time.Now()
	flag, err := solve.Table(cmd.Context(), t, opts)
	if err != nil {
		fatal(err)
	}
	log.Infof("solved %s (table %016x) with %s in %s", r, t.ID(), opts.Strategy, time.Since(start))
	fmt.Fprintln(cmd.OutOrStdout(), flag)
}

// solverOptions layers command-line flags over the loaded config.
func solverOptions(cmd *cobra.Command) (solve.Options, error) {
	opts := solve.Options{
		Alphabet: cfg.Solver.Alphabet,
		Workers:  cfg.Solver.Workers,
		Logger:   log.Logger(),
	}
	strategy := cfg.Solver.Strategy
	if cmd.Flags().Changed("alphabet") {
		opts.Alphabet, _ = cmd.Flags().GetString("alphabet")
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if cmd.Flags().Changed("strategy") {
		strategy, _ = cmd.Flags().GetString("strategy")
	}
	if strategy != "" {
		s, err := solve.ParseStrategy(strategy)
		if err != nil {
			return opts, err
		}
		opts.Strategy = s
	}
	return opts, nil
}
