// Package options parses the calculator's command-line flags, the
// small process-level surface named in spec §6.2.
//
// Grounded on the teacher's internal/system/options package: a
// docopt-go usage string as the flag grammar, with isatty deciding
// whether stdin is a terminal.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

const usage = `calc

Usage:
  calc [-c COMMAND]
  calc -h
  calc -v

Options:
  -c, --command=COMMAND  Evaluate COMMAND non-interactively and exit.
  -h, --help             Display this help.
  -v, --version          Print calc's version.

With no arguments, calc starts an interactive REPL if stdin is a
terminal, or reads evaluator input from stdin otherwise.
`

// Version is the program version reported by -v.
var Version = "calc (development build)"

// Options holds the parsed command-line flags.
type Options struct {
	Command     string
	HasCommand  bool
	Interactive bool
}

// Parse parses argv (os.Args[1:]) against the usage grammar above. It
// handles -h/-v itself: ParseArgs prints usage/version and the process
// exits before Parse returns, matching docopt-go's own convention.
func Parse(argv []string) (Options, error) {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return Options{}, err
	}

	command, hasCommand := opts["--command"].(string)

	return Options{
		Command:     command,
		HasCommand:  hasCommand,
		Interactive: !hasCommand && isatty.IsTerminal(os.Stdin.Fd()),
	}, nil
}
