package cmd

import (
	"fmt"
	"github.com/c4t-but-s4d/crackme/revision"
	"github.com/spf13/cobra"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check FLAG",
	Short: "Check a flag the way the challenge binary does",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("revision")
		r, err := revision.ParseRevision(name)
		if err != nil {
			fatal(err)
		}
		if r.Verifier().Check(args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), "gj")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "bj")
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("revision", "r", revision.Default.String(), "Revision to check against")
}
