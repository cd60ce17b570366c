package cmd

import (
	"fmt"
	"github.com/c4t-but-s4d/crackme/config"
	"github.com/c4t-but-s4d/crackme/log"
	"github.com/spf13/cobra"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var cfg = &config.Config{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flagtool",
	Short: "Build, seal and solve the target tables of the crackme challenge",

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		c, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			c.Log.Level, _ = cmd.Flags().GetString("log-level")
		}
		log.Init(c.Log.Level, c.Log.Output)
		*cfg = *c
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file (CRACKME_* environment variables override it)")
	rootCmd.PersistentFlags().String("log-level", "error", "debug, info, warn or error")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "flagtool:", err)
	os.Exit(1)
}
