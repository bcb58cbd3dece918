// Command qbce-prepro reads a PCNF formula in QDIMACS text format,
// optionally eliminates its Q-blocked clauses, and optionally re-emits
// the result in QDIMACS (spec §4.E).
package main

import (
	"fmt"
	"os"

	"github.com/flonsing/qbce-prepro/internal/config"
	qbceerrors "github.com/flonsing/qbce-prepro/internal/errors"
	"github.com/flonsing/qbce-prepro/internal/qbce"
	"github.com/flonsing/qbce-prepro/internal/qdimacs"
	"github.com/flonsing/qbce-prepro/internal/runtime"
	"github.com/flonsing/qbce-prepro/internal/writer"
)

// memoryLimitBytes bounds the accounting allocator (spec §5); there is no
// flag to change it, matching the original tool's compiled-in default.
const memoryLimitBytes = 4 << 30 // 4 GiB

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	opts, err := config.Parse(argv)
	if err != nil {
		return fail(err)
	}
	if opts.Help {
		fmt.Print(config.Usage())
		return 0
	}

	runtime.InstallSignalHandlers()
	timer := runtime.SetAlarm(opts.TimeoutSecs)
	defer timer.Stop()

	reporter := qbceerrors.NewReporter(os.Stderr, opts.Verbosity)
	start := runtime.ProcessTime()

	in, err := openInput(opts.InputPath)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	acct := runtime.NewAccountant(memoryLimitBytes)
	f, err := qdimacs.Read(in, acct)
	if err != nil {
		return fail(err)
	}
	reporter.Tracef("parsed formula: %d variables, %d clauses", f.NumVars, len(f.Clauses))

	totalClauses := len(f.Clauses)
	if opts.Simplify {
		stats := qbce.Run(f)
		reporter.Tracef("QBCE finished in %d passes, %d clauses newly blocked", stats.Passes, stats.NewlyBlocked)
	}

	if opts.PrintFormula {
		if err := writer.Write(os.Stdout, f); err != nil {
			return fail(qbceerrors.Newf(qbceerrors.CliUsage, "failed to write output: %s", err))
		}
	}

	reporter.Stats(opts.TimeoutSecs > 0, opts.TimeoutSecs, opts.Simplify, opts.PrintFormula,
		f.BlockedCount(), totalClauses, runtime.ProcessTime()-start)

	return 0
}

// openInput opens opts.InputPath, or wraps stdin when it is empty. When
// err is nil the returned file is non-nil and closeable, so callers can
// defer Close right after the error check (scoped acquisition per spec §5).
func openInput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, qbceerrors.Newf(qbceerrors.CliUsage, "cannot open input file %q: %s", path, err)
	}
	return f, nil
}

// fail prints the single-line stderr contract required by spec §7 and
// returns the process exit code.
func fail(err error) int {
	fmt.Fprintf(os.Stderr, "qbce-prepro: %s\n", err)
	return 1
}
