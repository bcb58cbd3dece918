package pcnf

// Var is a variable object, indexed by VarID in Formula.Vars. PosOcc and
// NegOcc are the occurrence lists required by spec §4.A: for every
// clause C and literal l in C, C appears exactly once in the
// polarity-matching occurrence list of var(l).
//
// RetryPos and RetryNeg are the QBCE worklist's "retry this polarity"
// membership bits described in spec §3 and §4.C.3. They are logically
// owned by internal/qbce, which is the only package that ever sets or
// clears them; they are declared here (rather than kept in a side table
// inside the engine) because spec §3 lists them as Variable attributes.
// They are a deliberately distinct pair from the parse-time "does this
// clause already contain this variable" check, which Formula.AddClause
// performs with its own local scratch map and never touches these fields —
// see spec §9's note that the two purposes must not be conflated.
type Var struct {
	ID    VarID
	Scope *Scope

	PosOcc []*Clause
	NegOcc []*Clause

	RetryPos bool
	RetryNeg bool
}

// Declared reports whether the variable has been bound in a scope. An
// undeclared Var is the zero value reached by index but never quantified
// (spec §3 invariant: every variable appearing in a clause has a scope).
func (v *Var) Declared() bool {
	return v.Scope != nil
}

// Level returns the nesting depth of the scope quantifying v. Callers
// must only invoke this on a declared variable.
func (v *Var) Level() Nesting {
	return v.Scope.Nesting
}

// Occ returns the occurrence list for the given polarity: PosOcc for a
// positive sign, NegOcc for a negative one.
func (v *Var) Occ(negative bool) []*Clause {
	if negative {
		return v.NegOcc
	}
	return v.PosOcc
}
