package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dkarlsen/fitquest/internal/cli"
	"github.com/dkarlsen/fitquest/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Plan: service.NewPlanService(),
	}

	// Detect interactive terminal for the questionnaire entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
