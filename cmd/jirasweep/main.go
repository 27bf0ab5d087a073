package main

import (
	"fmt"
	"os"

	"github.com/southerncoder/jirasweep/pkg/cli"
	"github.com/southerncoder/jirasweep/pkg/console"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersionInfo(version)

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatError(err))
		os.Exit(1)
	}
}
