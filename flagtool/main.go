package main

import "github.com/c4t-but-s4d/crackme/flagtool/cmd"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func main() {
	cmd.Execute()
}
