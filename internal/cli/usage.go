package cli

import "fmt"

// Version is the program version. Release builds set it with
// -ldflags "-X github.com/EvolBioInf/matchLen/internal/cli.Version=...".
var Version = "0.1.0-dev"

// Program is the name shown in usage and version text.
const Program = "matchLen"

// Usage returns the help text.
func Usage() string {
	return fmt.Sprintf(`%[1]s - compute match lengths over a set of input files

USAGE:
    %[1]s [OPTIONS] [FILE...]

OPTIONS:
    -i, --iterations N     Number of iterations (default %[2]d)
    -h, --help             Show this help message
    -v, --version          Show version information
    --                     Treat all following arguments as files

ENVIRONMENT VARIABLES:
    MATCHLEN_LOG_LEVEL     debug, info, warn or error (default info)
    NO_COLOR               Set to disable colored output
`, Program, DefaultIterations)
}

// Splash returns the version text.
func Splash() string {
	return fmt.Sprintf("%s %s\nDistributed under the GNU General Public License.\n", Program, Version)
}
