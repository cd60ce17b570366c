package cmd

import (
	"fmt"
	"github.com/c4t-but-s4d/crackme"
	"github.com/spf13/cobra"
	"strconv"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table SECRET",
	Short: "Print the target table a 32-byte secret hashes to",
	Args:  cobra.ExactArgs(1),
	Run:   runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().BoolP("hex", "x", false, "Print fingerprints as hexadecimal literals")
}

func runTable(cmd *cobra.Command, args []string) {
	secret := args[0]
	if len(secret) != crackme.FlagLength {
		fatal(fmt.Errorf("secret is %d bytes long, want %d", len(secret), crackme.FlagLength))
	}

	hex, _ := cmd.Flags().GetBool("hex")
	t := crackme.TableOf(secret)
	for _, v := range t {
		if hex {
			fmt.Fprintf(cmd.OutOrStdout(), "%#016x\n", v)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatUint(v, 10))
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "table id %016x\n", t.ID())
}
