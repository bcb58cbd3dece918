// Package pcnf implements the indexed formula store described in spec
// §3 and §4.A: the quantifier prefix, the variable table, the clause
// list, and the per-variable/per-polarity occurrence indices that the
// QBCE engine (internal/qbce) walks. Scopes, variables, and clauses are
// created only while a formula is being built (internal/qdimacs); after
// that the only permitted mutations are flipping a clause's Blocked flag,
// which this package keeps consistent with BlockedCount, and the QBCE
// retry flags on Var.
package pcnf

// LitID is a signed, nonzero literal: its absolute value names a
// variable, its sign is the literal's polarity.
type LitID int

// VarID names a variable; valid IDs run from 1 to a formula's NumVars
// inclusive (0 is reserved and never assigned).
type VarID uint32

// ClauseID uniquely identifies a clause in parse order, starting at 1.
type ClauseID uint32

// Nesting is a scope's 0-based depth in the quantifier prefix.
type Nesting uint32

// QuantifierType distinguishes universal from existential scopes.
type QuantifierType int8

const (
	Undef QuantifierType = iota
	Exists
	Forall
)

func (q QuantifierType) String() string {
	switch q {
	case Exists:
		return "e"
	case Forall:
		return "a"
	default:
		return "?"
	}
}

// VarOf returns the variable ID of a literal, discarding its sign.
func VarOf(lit LitID) VarID {
	if lit < 0 {
		return VarID(-lit)
	}
	return VarID(lit)
}

// Negative reports whether a literal is negative.
func Negative(lit LitID) bool {
	return lit < 0
}

// Positive reports whether a literal is positive.
func Positive(lit LitID) bool {
	return lit > 0
}
