package pcnf

// Scope is one quantifier block in the prefix, built from one prefix line
// and assigned a 0-based nesting depth that increases left to right with
// no gaps (spec §3). Consecutive lines of the same quantifier type are
// kept as separate scopes; they are not merged.
type Scope struct {
	Type    QuantifierType
	Nesting Nesting
	Vars    []VarID
}

// Exists reports whether the scope is existentially quantified.
func (s *Scope) Exists() bool { return s.Type == Exists }

// Forall reports whether the scope is universally quantified.
func (s *Scope) Forall() bool { return s.Type == Forall }
