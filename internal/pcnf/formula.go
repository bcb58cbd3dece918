package pcnf

import (
	qbceerrors "github.com/flonsing/qbce-prepro/internal/errors"
	"github.com/flonsing/qbce-prepro/internal/runtime"
)

// approximate per-element accounting costs, modeled on the original
// tool's sizeof(Var)/sizeof(Scope)/sizeof(Clause) charges against its
// MemMan. These are illustrative, not exact: Go's runtime representation
// of a slice-backed struct differs from C's flexible array member, but
// the budget is a soft guard against runaway inputs, not a precise
// simulator of process RSS.
const (
	bytesPerVar     = 64
	bytesPerScope   = 32
	bytesPerLit     = 8
	bytesPerClause  = 24
	bytesPerScopeID = 4
)

// Formula is the indexed PCNF store (spec §3, §4.A).
type Formula struct {
	NumVars VarID // highest valid variable id; Vars has NumVars+1 entries
	Vars    []Var
	Scopes  []*Scope
	Clauses []*Clause

	blockedCount int
	acct         *runtime.Accountant
}

// NewFormula allocates an empty store sized for numVars variables
// (indices 1..numVars; index 0 is unused, per spec §3).
func NewFormula(numVars int, acct *runtime.Accountant) (*Formula, error) {
	if acct != nil {
		if err := acct.Charge(uint64(numVars+1) * bytesPerVar); err != nil {
			return nil, err
		}
	}
	f := &Formula{
		NumVars: VarID(numVars),
		Vars:    make([]Var, numVars+1),
		acct:    acct,
	}
	for i := range f.Vars {
		f.Vars[i].ID = VarID(i)
	}
	return f, nil
}

// Variable returns a pointer to the variable object for id. The caller
// must ensure 1 <= id <= NumVars.
func (f *Formula) Variable(id VarID) *Var {
	return &f.Vars[id]
}

// InRange reports whether id is a valid variable id for this formula.
func (f *Formula) InRange(id VarID) bool {
	return id >= 1 && id <= f.NumVars
}

// AddScope appends a new scope to the prefix, binding varIDs to it in
// order. It rejects an id of zero, an out-of-range id, or re-quantifying
// an already-declared variable, per spec §4.B's ScopeSyntax category.
func (f *Formula) AddScope(qtype QuantifierType, varIDs []VarID) (*Scope, error) {
	scope := &Scope{
		Type:    qtype,
		Nesting: Nesting(len(f.Scopes)),
		Vars:    make([]VarID, 0, len(varIDs)),
	}
	for _, id := range varIDs {
		if id == 0 {
			return nil, qbceerrors.New(qbceerrors.ScopeSyntax, "variable ID in scope must be positive")
		}
		if !f.InRange(id) {
			return nil, qbceerrors.Newf(qbceerrors.ScopeSyntax, "variable ID %d in scope exceeds max. ID given in preamble", id)
		}
		v := f.Variable(id)
		if v.Declared() {
			return nil, qbceerrors.Newf(qbceerrors.ScopeSyntax, "variable %d already quantified", id)
		}
		v.Scope = scope
		scope.Vars = append(scope.Vars, id)
	}
	if f.acct != nil {
		cost := uint64(bytesPerScope) + uint64(len(scope.Vars))*bytesPerScopeID
		if err := f.acct.Charge(cost); err != nil {
			return nil, err
		}
	}
	f.Scopes = append(f.Scopes, scope)
	return scope, nil
}

// AddClause validates and appends a parsed clause, populating the
// occurrence lists of every variable it mentions. It rejects a literal
// over an undeclared or out-of-range variable, a clause containing two
// literals over the same variable (including the tautological case),
// per spec §4.B's ClauseSyntax category.
func (f *Formula) AddClause(lits []LitID) (*Clause, error) {
	seen := make(map[VarID]LitID, len(lits))
	for _, lit := range lits {
		vid := VarOf(lit)
		if !f.InRange(vid) {
			return nil, qbceerrors.Newf(qbceerrors.ClauseSyntax, "variable ID %d in clause exceeds max. ID given in preamble", vid)
		}
		v := f.Variable(vid)
		if !v.Declared() {
			return nil, qbceerrors.Newf(qbceerrors.ClauseSyntax, "variable %d has not been declared in a scope", vid)
		}
		if prev, ok := seen[vid]; ok {
			if prev == lit {
				return nil, qbceerrors.Newf(qbceerrors.ClauseSyntax, "literal %d has multiple occurrences in one clause", lit)
			}
			return nil, qbceerrors.Newf(qbceerrors.ClauseSyntax, "clause is tautological: variable %d occurs with both polarities", vid)
		}
		seen[vid] = lit
	}

	if f.acct != nil {
		cost := uint64(bytesPerClause) + uint64(len(lits))*bytesPerLit
		if err := f.acct.Charge(cost); err != nil {
			return nil, err
		}
	}

	c := &Clause{
		ID:       ClauseID(len(f.Clauses) + 1),
		Literals: append([]LitID(nil), lits...),
	}
	for _, lit := range c.Literals {
		v := f.Variable(VarOf(lit))
		if Negative(lit) {
			v.NegOcc = append(v.NegOcc, c)
		} else {
			v.PosOcc = append(v.PosOcc, c)
		}
	}
	f.Clauses = append(f.Clauses, c)
	return c, nil
}

// SetBlocked marks c as blocked and keeps BlockedCount consistent. It is
// a no-op if c is already blocked (the transition is monotone: QBCE never
// needs to re-block an already-blocked clause).
func (f *Formula) SetBlocked(c *Clause) {
	if c.Blocked {
		return
	}
	c.Blocked = true
	f.blockedCount++
}

// BlockedCount returns the number of clauses currently marked blocked.
func (f *Formula) BlockedCount() int {
	return f.blockedCount
}
