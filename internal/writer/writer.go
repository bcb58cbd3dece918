// Package writer emits a pcnf.Formula back into QDIMACS text (spec
// §4.D). It is read-only with respect to the formula: it never sets or
// clears Blocked, it only consults it.
package writer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/flonsing/qbce-prepro/internal/pcnf"
)

// Write emits f in QDIMACS shape: a preamble reflecting the post-QBCE
// clause count, each scope in original order, then each non-blocked
// clause in parse order.
func Write(w io.Writer, f *pcnf.Formula) error {
	bw := bufio.NewWriter(w)

	remaining := len(f.Clauses) - f.BlockedCount()
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.NumVars, remaining); err != nil {
		return err
	}

	for _, scope := range f.Scopes {
		if err := writeScope(bw, scope); err != nil {
			return err
		}
	}

	for _, c := range f.Clauses {
		if c.Blocked {
			continue
		}
		if err := writeClause(bw, c); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeScope(w *bufio.Writer, s *pcnf.Scope) error {
	if _, err := fmt.Fprintf(w, "%s", s.Type.String()); err != nil {
		return err
	}
	for _, v := range s.Vars {
		if _, err := fmt.Fprintf(w, " %d", v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, " 0\n")
	return err
}

func writeClause(w *bufio.Writer, c *pcnf.Clause) error {
	for _, lit := range c.Literals {
		if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "0\n")
	return err
}
