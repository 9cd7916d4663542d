// Package main is the entry point for the buildreport CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/buildreport/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
