// Package cli handles command-line argument parsing.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultIterations is used when -i is not given.
const DefaultIterations = 1

// ErrInvalidArgument is wrapped by every error Parse reports.
var ErrInvalidArgument = errors.New("invalid argument")

// Args represents parsed command-line arguments.
type Args struct {
	// Mode flags
	Help    bool
	Version bool

	// Err is set when parsing failed; the other fields are then meaningless.
	Err error

	Iterations int

	// Input files, in command-line order
	Files []string
}

// HasError reports whether parsing failed.
func (a *Args) HasError() bool {
	return a.Err != nil
}

// Default returns the arguments used when nothing is given on the command line.
func Default() *Args {
	return &Args{
		Iterations: DefaultIterations,
		Files:      []string{},
	}
}

// Parse parses command-line arguments into an Args struct.
// osArgs[0] is the program name and is skipped, as with os.Args.
func Parse(osArgs []string) *Args {
	args := Default()

	i := 1 // Skip program name
	for i < len(osArgs) {
		arg := osArgs[i]

		switch arg {
		case "-h", "--help":
			args.Help = true
			args.Err = nil
			return args

		case "-v", "--version":
			args.Version = true
			args.Err = nil
			return args

		case "-i", "--iterations":
			if i+1 >= len(osArgs) {
				args.Err = fmt.Errorf("%w: %s requires a number", ErrInvalidArgument, arg)
				return args
			}
			n, err := parseIterations(osArgs[i+1])
			if err != nil {
				args.Err = fmt.Errorf("%w: %s: %v", ErrInvalidArgument, arg, err)
				return args
			}
			args.Iterations = n
			i += 2

		case "--":
			args.Files = append(args.Files, osArgs[i+1:]...)
			return args

		case "-":
			// stdin placeholder
			args.Files = append(args.Files, arg)
			i++

		default:
			if strings.HasPrefix(arg, "-") {
				// Keep scanning: a later -h or -v still wins.
				if args.Err == nil {
					args.Err = fmt.Errorf("%w: unknown flag %s", ErrInvalidArgument, arg)
				}
				i++
				continue
			}
			args.Files = append(args.Files, arg)
			i++
		}
	}

	return args
}

func parseIterations(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%s is out of range", s)
	}
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative", n)
	}
	return n, nil
}
