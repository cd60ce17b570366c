package cmd

import (
	"fmt"
	"github.com/c4t-but-s4d/crackme/revision"
	"github.com/spf13/cobra"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// revisionsCmd represents the revisions command
var revisionsCmd = &cobra.Command{
	Use:   "revisions",
	Short: "List challenge revisions and the id of their target tables",
	Args:  cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range revision.Revisions() {
			t, err := r.Table()
			if err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s unavailable: %v\n", r, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-9s %016x\n", r, t.ID())
		}
	},
}

func init() {
	rootCmd.AddCommand(revisionsCmd)
}
