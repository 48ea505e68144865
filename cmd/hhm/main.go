// Package main is the entry point for the hhm CLI.
//
// hhm sizes a fleet of Hetzner Cloud servers. The fleet is every server
// carrying the label set from the config file; `hhm spin <n>` creates or
// deletes servers until exactly n remain, after asking for confirmation.
//
// Commands: spin, list, version.
//
// For detailed usage information, run:
//
//	hhm --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/hhm/cmd/hhm/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
