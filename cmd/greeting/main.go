package main

import (
	"os"

	"github.com/greeting-cli/greeting/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(os.Args[1:]); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
