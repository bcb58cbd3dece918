// Package errors defines the diagnostic taxonomy used throughout
// qbce-prepro. Every user-facing failure is a *Diagnostic carrying one of
// the Kinds below; there is no local recovery; the driver surfaces a
// diagnostic as a single line on stderr and aborts (see cmd/qbce-prepro).
package errors

// Kind categorizes a Diagnostic. These mirror the error taxonomy of the
// tool: CLI usage problems, the three QDIMACS syntax categories, the
// clause-count mismatch, and memory exhaustion.
type Kind string

const (
	// CliUsage covers unknown flags, non-numeric or zero timeouts, and an
	// input path that is a directory or unreadable.
	CliUsage Kind = "CliUsage"

	// MalformedPreamble covers a missing or ill-formed "p cnf V C" line.
	MalformedPreamble Kind = "MalformedPreamble"

	// ScopeSyntax covers prefix-line errors: opening a scope before closing
	// the previous one, a zero or out-of-range variable ID in a scope, or
	// re-quantifying an already-declared variable.
	ScopeSyntax Kind = "ScopeSyntax"

	// ClauseSyntax covers clause-line errors: an out-of-range variable ID,
	// a literal over an undeclared variable, or a duplicate/complementary
	// literal within one clause.
	ClauseSyntax Kind = "ClauseSyntax"

	// CountMismatch covers a declared clause count that disagrees with the
	// actual number of clause lines parsed.
	CountMismatch Kind = "CountMismatch"

	// ResourceExhaustion covers the memory accountant's limit being
	// exceeded.
	ResourceExhaustion Kind = "ResourceExhaustion"
)

// description returns a short human-readable label for a Kind, used only
// in verbose (-v) diagnostic traces, never in the single-line error that
// terminates the process.
func (k Kind) description() string {
	switch k {
	case CliUsage:
		return "command line usage error"
	case MalformedPreamble:
		return "malformed QDIMACS preamble"
	case ScopeSyntax:
		return "malformed quantifier scope"
	case ClauseSyntax:
		return "malformed clause"
	case CountMismatch:
		return "clause count mismatch"
	case ResourceExhaustion:
		return "memory limit exceeded"
	default:
		return "error"
	}
}
