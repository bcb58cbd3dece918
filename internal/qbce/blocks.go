package qbce

import "github.com/flonsing/qbce-prepro/internal/pcnf"

// blocks implements the blocks(ℓ, C) test of spec §4.C.4: ℓ blocks C iff
// every non-blocked clause D in the opposite-polarity occurrence list of
// var(ℓ) produces a Q-tautological resolvent with C on var(ℓ).
//
// A resolvent is Q-tautological iff C and D hold a complementary pair of
// literals on some variable y != var(ℓ) with level(y) <= level(var(ℓ)).
// The check marks C's eligible literals once on entry (keyed by variable,
// valued by the literal's sign) and then does a single pass over each D's
// literals, rather than rescanning C for every D.
func (e *Engine) blocks(lit pcnf.LitID, c *pcnf.Clause) bool {
	x := pcnf.VarOf(lit)
	xLevel := e.f.Variable(x).Level()

	opp := e.f.Variable(x).Occ(!pcnf.Negative(lit))

	for y := range e.scratch {
		delete(e.scratch, y)
	}
	for _, cl := range c.Literals {
		y := pcnf.VarOf(cl)
		if y == x {
			continue
		}
		if e.f.Variable(y).Level() > xLevel {
			continue
		}
		e.scratch[y] = cl
	}

	for _, d := range opp {
		if d.Blocked {
			continue
		}
		if !qTautologicalWith(e.scratch, d) {
			return false
		}
	}
	return true
}

// qTautologicalWith reports whether clause d contains, for some variable y
// present in marked, the literal complementary to marked[y].
func qTautologicalWith(marked map[pcnf.VarID]pcnf.LitID, d *pcnf.Clause) bool {
	for _, dl := range d.Literals {
		y := pcnf.VarOf(dl)
		if cl, ok := marked[y]; ok && cl == -dl {
			return true
		}
	}
	return false
}
