// itermeter works through a sequence of items and redraws a progress
// line in the terminal before each one
package main

import (
	"os"

	"github.com/andpalmier/itermeter/cmd"
)

// Version information (set at build time via -ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(cmd.Execute(version, commit, date))
}
