//go:build windows

package main

import (
	. "golang.org/x/sys/windows"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

/* The help menu is the only colored output; stdout and the answer token are never touched. */
func init() {
	v := Handle(os.Stderr.Fd())
	var mode uint32
	if err := GetConsoleMode(v, &mode); err != nil {
		noCodes = true
		return
	}
	if mode&ENABLE_VIRTUAL_TERMINAL_PROCESSING == 0 {
		if err := SetConsoleMode(v, mode|ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
			noCodes = true
		}
	}
}
