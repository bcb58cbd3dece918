// Package qdimacs reads a PCNF formula in QDIMACS text format into an
// internal/pcnf.Formula (spec §4.B). It performs syntax-level validation
// only (preamble shape, scope/clause line shape, declared-vs-actual
// clause count); the semantic invariants that depend on the formula's
// state (duplicate/complementary literals, undeclared variables,
// re-quantified variables) are enforced by internal/pcnf itself, so this
// package stays a thin grammar-driven producer, in the spirit of
// rhartert-dimacs's Builder-fed Read function generalized from plain CNF
// to QDIMACS's quantifier prefix.
package qdimacs

import (
	"io"

	qbceerrors "github.com/flonsing/qbce-prepro/internal/errors"
	"github.com/flonsing/qbce-prepro/internal/pcnf"
	"github.com/flonsing/qbce-prepro/internal/runtime"
)

// Read parses a QDIMACS document from r and returns a fully populated
// Formula, or the first *errors.Diagnostic encountered. Parsing aborts at
// the first error, per spec §7's propagation policy: there is no partial
// recovery for a batch preprocessor.
func Read(r io.Reader, acct *runtime.Accountant) (*pcnf.Formula, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, qbceerrors.Newf(qbceerrors.CliUsage, "could not read input: %s", err)
	}
	return parse(newScanner(src), acct)
}

func parse(s *scanner, acct *runtime.Accountant) (*pcnf.Formula, error) {
	numVars, declaredClauses, err := readPreamble(s)
	if err != nil {
		return nil, err
	}

	f, err := pcnf.NewFormula(numVars, acct)
	if err != nil {
		return nil, err
	}

	actualClauses := 0
	for !s.atEOF() {
		word, isWord := s.readWord()
		switch {
		case isWord && (word == "a" || word == "e"):
			qtype := pcnf.Exists
			if word == "a" {
				qtype = pcnf.Forall
			}
			ids, err := readScopeVars(s)
			if err != nil {
				return nil, err
			}
			if _, err := f.AddScope(qtype, ids); err != nil {
				return nil, err
			}
		case isWord:
			return nil, qbceerrors.Newf(qbceerrors.ClauseSyntax, "unexpected token %q: expecting 'a', 'e', or a clause", word)
		default:
			lits, err := readClauseLiterals(s)
			if err != nil {
				return nil, err
			}
			if actualClauses >= declaredClauses {
				return nil, qbceerrors.Newf(qbceerrors.CountMismatch, "actual number of clauses exceeds declared number of clauses (%d)", declaredClauses)
			}
			if _, err := f.AddClause(lits); err != nil {
				return nil, err
			}
			actualClauses++
		}
	}

	if actualClauses != declaredClauses {
		return nil, qbceerrors.Newf(qbceerrors.CountMismatch,
			"declared number of clauses (%d) does not match actual number of clauses (%d)", declaredClauses, actualClauses)
	}

	return f, nil
}

// readPreamble consumes "p cnf <V> <C>".
func readPreamble(s *scanner) (numVars, numClauses int, err error) {
	letter, ok := s.readLetter()
	if !ok {
		return 0, 0, qbceerrors.New(qbceerrors.MalformedPreamble, "preamble missing")
	}
	if letter != 'p' {
		return 0, 0, qbceerrors.New(qbceerrors.MalformedPreamble, "expecting preamble")
	}
	word, ok := s.readWord()
	if !ok || word != "cnf" {
		return 0, 0, qbceerrors.New(qbceerrors.MalformedPreamble, "malformed preamble: expected 'cnf'")
	}
	v, ok := s.readInt()
	if !ok || v < 0 {
		return 0, 0, qbceerrors.New(qbceerrors.MalformedPreamble, "malformed preamble: expected number of variables")
	}
	c, ok := s.readInt()
	if !ok || c < 0 {
		return 0, 0, qbceerrors.New(qbceerrors.MalformedPreamble, "malformed preamble: expected number of clauses")
	}
	return int(v), int(c), nil
}

// readScopeVars reads the positive variable IDs of one prefix line, up to
// and including its terminating 0. A line with no ID before its 0 is
// rejected.
func readScopeVars(s *scanner) ([]pcnf.VarID, error) {
	var ids []pcnf.VarID
	for {
		n, ok := s.readInt()
		if !ok {
			return nil, qbceerrors.New(qbceerrors.ScopeSyntax, "expecting variable ID or '0' to close scope")
		}
		if n == 0 && len(ids) == 0 {
			return nil, qbceerrors.New(qbceerrors.ScopeSyntax, "expecting a positive variable ID before '0' in scope")
		}
		if n == 0 {
			return ids, nil
		}
		if n < 0 {
			return nil, qbceerrors.New(qbceerrors.ScopeSyntax, "variable ID in scope must be positive")
		}
		ids = append(ids, pcnf.VarID(n))
	}
}

// readClauseLiterals reads the signed literals of one clause line, up to
// and including its terminating 0.
func readClauseLiterals(s *scanner) ([]pcnf.LitID, error) {
	var lits []pcnf.LitID
	for {
		n, ok := s.readInt()
		if !ok {
			return nil, qbceerrors.New(qbceerrors.ClauseSyntax, "expecting literal or '0' to close clause")
		}
		if n == 0 {
			return lits, nil
		}
		lits = append(lits, pcnf.LitID(n))
	}
}
