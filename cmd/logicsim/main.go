// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim runs demo logic circuits.
//
package main

import (
	"fmt"
	"os"

	"github.com/db47h/logicsim/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "logicsim:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
