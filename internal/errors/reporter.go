package errors

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter prints verbosity-gated diagnostic traces (iteration counts,
// timing, closing statistics) to an output stream. It is never used for
// the single-line terminal error the driver writes on abort (see
// cmd/qbce-prepro): that line is printed directly from a *Diagnostic's
// Error() string, per the flat stderr contract this tool promises.
type Reporter struct {
	out     io.Writer
	enabled bool
}

// NewReporter creates a Reporter that writes to out only when verbosity
// level is at least 1.
func NewReporter(out io.Writer, verbosity int) *Reporter {
	return &Reporter{out: out, enabled: verbosity >= 1}
}

// Tracef prints a verbose-only progress line, dimmed to distinguish it
// from the formula output that may share the same terminal.
func (r *Reporter) Tracef(format string, args ...any) {
	if !r.enabled {
		return
	}
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(r.out, dim(fmt.Sprintf(format, args...)))
}

// Stats prints the closing statistics banner described in spec §4.E.
func (r *Reporter) Stats(timeLimitSet bool, timeLimit int, simplify, printFormula bool, blocked, total int, runTime float64) {
	if !r.enabled {
		return
	}
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintln(r.out, bold("\nDONE, printing statistics:"))
	if !timeLimitSet {
		fmt.Fprintln(r.out, "  time limit: not set")
	} else {
		fmt.Fprintf(r.out, "  time limit: %d\n", timeLimit)
	}
	fmt.Fprintf(r.out, "  simplification enabled: %s\n", yesNo(simplify))
	fmt.Fprintf(r.out, "  printing formula: %s\n", yesNo(printFormula))
	pct := 0.0
	if total > 0 {
		pct = (float64(blocked) / float64(total)) * 100
	}
	fmt.Fprintf(r.out, "  QBCE: %d blocked clauses of total %d clauses ( %f %% of initial CNF)\n", blocked, total, pct)
	fmt.Fprintf(r.out, "  run time: %f\n", runTime)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Description exposes a Kind's human-readable label, for callers that
// want to annotate a trace line with the category of a diagnostic.
func Description(kind Kind) string {
	return kind.description()
}
