package main

import (
	"bufio"
	. "fmt"
	"github.com/c4t-but-s4d/crackme/log"
	"github.com/c4t-but-s4d/crackme/revision"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The challenge itself: one line in, one token out. "gj" means the line was the flag, "bj" means it
// was not, whatever the reason.

const n = "\n"
const success = 0

func main() { os.Exit(program()) }

func help() {
	name, err := os.Executable()
	if err != nil {
		name = "crackme"
	} else {
		name = filepath.Base(name)
	}
	Fprint(os.Stderr, yell, "Prove you know the flag.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h] [-r plain|shuffled|macro] < FLAG"+n+n+
		"Options:"+n)
	printFlags(os.Stderr)
	Fprint(os.Stderr, n, purp, "The answer is printed as a single line: gj or bj.", zero, n)
}

func program() int {
	parseFlags()
	if pHelp {
		help()
		return success
	}
	if pDebug {
		log.Init("debug", "stderr")
	}

	Println(answer(os.Stdin, pRevision))
	return success
}

// answer reads one line from rd and returns the token for it. A read that fails before yielding any
// byte is not an answer, so it panics rather than printing "bj".
func answer(rd io.Reader, r revision.Revision) string {
	line, err := bufio.NewReader(rd).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		panic(err)
	}
	if r.Verifier().Check(strings.TrimSpace(line)) {
		return "gj"
	}
	return "bj"
}
