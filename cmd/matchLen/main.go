package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/EvolBioInf/matchLen/internal/cli"
	"github.com/EvolBioInf/matchLen/internal/logging"
	"github.com/EvolBioInf/matchLen/internal/ui"
)

func main() {
	os.Exit(run(os.Args, os.Getenv, os.Stdout, os.Stderr))
}

// run is main without the process: it takes the invocation, environment
// lookup and output streams, and returns the exit code.
func run(osArgs []string, getenv func(string) string, stdout, stderr io.Writer) int {
	ui.Out = stderr
	ui.SetColor(getenv("NO_COLOR") == "" && logging.IsTerminal(stderr))

	level, err := logging.ParseLevel(getenv("MATCHLEN_LOG_LEVEL"))
	if err != nil {
		ui.Warn("%v, using info", err)
	}
	logger := slog.New(logging.NewTerminalHandler(stderr, level))

	args := cli.Parse(osArgs)
	if args.Help {
		fmt.Fprint(stdout, cli.Usage())
		return 0
	}
	if args.Version {
		fmt.Fprint(stdout, cli.Splash())
		return 0
	}
	if args.HasError() {
		ui.Fail("Error parsing arguments: %v", args.Err)
		ui.Info("Run %s for usage information", cli.Program+" --help")
		fmt.Fprint(stderr, cli.Usage())
		return 1
	}

	logger.Debug("arguments parsed",
		"iterations", args.Iterations,
		"files", args.Files)

	if err := checkInputs(args.Files); err != nil {
		ui.Fail("%v", err)
		return 1
	}

	ui.Success("%d input file(s), %d iteration(s)", len(args.Files), args.Iterations)
	return 0
}

// checkInputs verifies that every named input is a regular file.
// "-" stands for stdin and is not checked.
func checkInputs(files []string) error {
	for _, name := range files {
		if name == "-" {
			continue
		}
		info, err := os.Stat(name)
		if err != nil {
			return fmt.Errorf("input file: %w", err)
		}
		if !info.Mode().IsRegular() {
			return fmt.Errorf("input file: %s is not a regular file", name)
		}
	}
	return nil
}
