// Package qbce computes the greatest fixpoint of Q-blocked clauses over a
// parsed PCNF formula (spec §4.C) and marks them in place. It is the core
// of the preprocessor; everything else in this module exists to feed it
// a formula or to print what it leaves behind.
package qbce

import "github.com/flonsing/qbce-prepro/internal/pcnf"

// Engine holds the scratch state used while computing blocked clauses. It
// is not safe for concurrent use and is meant to be constructed once per
// Run call.
type Engine struct {
	f       *pcnf.Formula
	scratch map[pcnf.VarID]pcnf.LitID
}

// Stats summarizes one Run, for the driver's verbose reporting (spec
// §4.E).
type Stats struct {
	Passes       int
	NewlyBlocked int
}

// Run computes and marks all Q-blocked clauses of f, repeating worklist
// passes until one produces no newly-blocked clause (spec §4.C.2,
// §4.C.3). It is idempotent: the first call ends at a fixpoint, so a
// second call, which re-tests every existential literal, marks nothing
// further.
func Run(f *pcnf.Formula) Stats {
	e := &Engine{f: f, scratch: make(map[pcnf.VarID]pcnf.LitID)}
	return e.run()
}

func (e *Engine) run() Stats {
	f := e.f
	for v := pcnf.VarID(1); v <= f.NumVars; v++ {
		vv := f.Variable(v)
		if vv.Declared() && vv.Scope.Exists() {
			vv.RetryPos = true
			vv.RetryNeg = true
		}
	}

	var stats Stats
	for {
		newlyBlockedThisPass := 0
		for v := pcnf.VarID(1); v <= f.NumVars; v++ {
			vv := f.Variable(v)
			if !vv.Declared() || !vv.Scope.Exists() {
				continue
			}
			if vv.RetryPos {
				vv.RetryPos = false
				newlyBlockedThisPass += e.retryPolarity(v, false)
			}
			if vv.RetryNeg {
				vv.RetryNeg = false
				newlyBlockedThisPass += e.retryPolarity(v, true)
			}
		}
		stats.Passes++
		stats.NewlyBlocked += newlyBlockedThisPass
		if newlyBlockedThisPass == 0 {
			break
		}
	}
	return stats
}

// retryPolarity re-examines every non-blocked clause in the s-polarity
// occurrence list of v (s = negative selects the negative list), testing
// whether the literal s*v blocks it. It returns the number of clauses
// newly marked blocked.
func (e *Engine) retryPolarity(v pcnf.VarID, negative bool) int {
	lit := pcnf.LitID(v)
	if negative {
		lit = -lit
	}
	occ := e.f.Variable(v).Occ(negative)

	newlyBlocked := 0
	for _, c := range occ {
		if c.Blocked {
			continue
		}
		if !e.blocks(lit, c) {
			continue
		}
		e.f.SetBlocked(c)
		newlyBlocked++
		e.propagate(c)
	}
	return newlyBlocked
}

// propagate raises retry flags for each existential variable u of the
// newly-blocked clause c. The flag of the polarity u has in c is raised
// (spec §4.C.3 step 2), and so is the opposite one: blocks(-u, D) scans
// the list c sits in, so dropping c from it can let -u block a clause
// that failed before.
func (e *Engine) propagate(c *pcnf.Clause) {
	for _, lit := range c.Literals {
		u := pcnf.VarOf(lit)
		uv := e.f.Variable(u)
		if !uv.Declared() || !uv.Scope.Exists() {
			continue
		}
		uv.RetryPos = true
		uv.RetryNeg = true
	}
}
