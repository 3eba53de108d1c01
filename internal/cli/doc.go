// Package cli provides command-line argument parsing for matchLen.
//
// This package turns the raw invocation into a structured Args value.
// It performs no I/O: deciding what to print and which exit code to use
// is left to the caller.
//
// Supported flags:
//   - -h, --help: Show usage
//   - -v, --version: Show version
//   - -i, --iterations N: Number of iterations (default 1)
//   - --: Treat all following tokens as input files
//
// Every other token is an input file, kept in command-line order.
//
// Example usage:
//
//	args := cli.Parse(os.Args)
//	switch {
//	case args.Help:
//	    fmt.Print(cli.Usage())
//	case args.Version:
//	    fmt.Print(cli.Splash())
//	case args.HasError():
//	    fmt.Fprintln(os.Stderr, args.Err)
//	    fmt.Fprint(os.Stderr, cli.Usage())
//	    os.Exit(1)
//	}
package cli
