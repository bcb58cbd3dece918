package pcnf

// Clause is an ordered sequence of literals as parsed: neither sorted nor
// universal-reduced (spec §3). Literals is immutable after construction;
// QBCE only ever flips Blocked, monotonically, from false to true.
type Clause struct {
	ID       ClauseID
	Literals []LitID
	Blocked  bool
}

// Len returns the clause's literal count.
func (c *Clause) Len() int { return len(c.Literals) }

// Contains reports whether lit appears in the clause (exact sign match).
func (c *Clause) Contains(lit LitID) bool {
	for _, l := range c.Literals {
		if l == lit {
			return true
		}
	}
	return false
}
