// Package main is the entry point for the conreport CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/conreport/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
