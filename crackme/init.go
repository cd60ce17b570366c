package main

import (
	"github.com/c4t-but-s4d/crackme/revision"
	. "github.com/spf13/pflag"
	"io"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var pRevision = revision.Default
var pHelp, pDebug, noCodes bool
var yell, purp, zero = "\033[33m", "\033[35m", "\033[0m"

func init() {
	BoolVarP(&pHelp, "help", "h", false,
		"print this help menu"+n)

	BoolVar(&pDebug, "debug", false, "")
	CommandLine.MarkHidden("debug")

	VarP(&pRevision, "revision", "r",
		"challenge generation to check against: plain, shuffled or macro")

	/* Help is hoisted to the top; the rest keep declaration order. */
	CommandLine.SortFlags = false
}

// parseFlags is kept out of init so that test binaries never see these flags.
func parseFlags() {
	Parse()
	if noCodes {
		yell, purp, zero = "", "", ""
	}
}

func printFlags(w io.Writer) {
	CommandLine.SetOutput(w)
	PrintDefaults()
}
