// Command intake validates the files of a folder and writes a summary report
// and an execution log next to it.
package main

import (
	"os"

	"github.com/idelchi/intake/internal/cli"
)

// version is set at build time via -ldflags.
var version = "unknown - unofficial & generated by unknown"

func main() {
	os.Exit(cli.ExitCode(cli.New(version).Execute()))
}
