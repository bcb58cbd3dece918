// Package config parses the driver's command line (spec §4.E). The
// teacher's own CLI entrypoint parsed os.Args by hand; this preprocessor
// instead uses github.com/spf13/pflag (the flag library several repos in
// the retrieval pack reach for, e.g. moby-moby and go-ecslog), since the
// spec needs a repeatable -v counter and GNU-style long flags that hand
// parsing does not give for free.
package config

import (
	"os"
	"strconv"

	qbceerrors "github.com/flonsing/qbce-prepro/internal/errors"
	"github.com/spf13/pflag"
)

// Options is the fully-validated result of parsing argv (spec §4.E's
// option table).
type Options struct {
	Simplify     bool
	PrintFormula bool
	Verbosity    int
	TimeoutSecs  int
	InputPath    string // empty means stdin
	Help         bool
}

// Parse parses argv (excluding the program name) into Options, or
// returns a *errors.Diagnostic of kind CliUsage.
func Parse(argv []string) (*Options, error) {
	fs := pflag.NewFlagSet("qbce-prepro", pflag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(discard{})

	opts := &Options{}
	fs.BoolVar(&opts.Simplify, "simplify", false, "run the QBCE blocked-clause elimination pass")
	fs.BoolVar(&opts.PrintFormula, "print-formula", false, "emit the resulting QDIMACS formula on stdout")
	fs.BoolVarP(&opts.Help, "help", "h", false, "show usage")
	fs.CountVarP(&opts.Verbosity, "verbose", "v", "raise verbosity (repeatable)")

	if err := fs.Parse(argv); err != nil {
		return nil, qbceerrors.Newf(qbceerrors.CliUsage, "%s", err)
	}
	if opts.Help {
		return opts, nil
	}

	positional := fs.Args()
	if len(positional) > 2 {
		return nil, qbceerrors.Newf(qbceerrors.CliUsage, "too many positional arguments: %v", positional[2:])
	}

	for _, arg := range positional {
		if n, err := parsePositiveInt(arg); err == nil {
			if opts.TimeoutSecs != 0 {
				return nil, qbceerrors.Newf(qbceerrors.CliUsage, "timeout given more than once")
			}
			if n <= 0 {
				return nil, qbceerrors.New(qbceerrors.CliUsage, "timeout must be a positive number of seconds")
			}
			opts.TimeoutSecs = n
			continue
		}
		if opts.InputPath != "" {
			return nil, qbceerrors.Newf(qbceerrors.CliUsage, "input path given more than once: %q", arg)
		}
		opts.InputPath = arg
	}

	if opts.InputPath != "" {
		if err := validateInputPath(opts.InputPath); err != nil {
			return nil, err
		}
	}

	return opts, nil
}

// Usage returns the help text shown for -h/--help.
func Usage() string {
	return `usage: qbce-prepro [--simplify] [--print-formula] [-v...] [timeout] [path]

  --simplify        run the QBCE blocked-clause elimination pass
  --print-formula   emit the resulting QDIMACS formula on stdout
  -v                raise verbosity (repeatable)
  timeout           wall-clock timeout in seconds (must be > 0)
  path              QDIMACS input file (default: stdin)
`
}

func parsePositiveInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func validateInputPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return qbceerrors.Newf(qbceerrors.CliUsage, "cannot read input file %q: %s", path, err)
	}
	if info.IsDir() {
		return qbceerrors.Newf(qbceerrors.CliUsage, "input path %q is a directory", path)
	}
	return nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
