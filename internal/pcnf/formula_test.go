package pcnf

import (
	"testing"

	"github.com/flonsing/qbce-prepro/internal/runtime"
	"github.com/stretchr/testify/assert"
)

func TestAddScopeRejectsZeroID(t *testing.T) {
	f, err := NewFormula(3, nil)
	assert.NoError(t, err)

	_, err = f.AddScope(Exists, []VarID{0})
	assert.Error(t, err)
}

func TestAddScopeRejectsOutOfRange(t *testing.T) {
	f, err := NewFormula(2, nil)
	assert.NoError(t, err)

	_, err = f.AddScope(Exists, []VarID{3})
	assert.Error(t, err)
}

func TestAddScopeRejectsReQuantification(t *testing.T) {
	f, err := NewFormula(2, nil)
	assert.NoError(t, err)

	_, err = f.AddScope(Forall, []VarID{1})
	assert.NoError(t, err)

	_, err = f.AddScope(Exists, []VarID{1, 2})
	assert.Error(t, err)
}

func TestAddClauseRejectsUndeclaredVariable(t *testing.T) {
	f, err := NewFormula(2, nil)
	assert.NoError(t, err)

	_, err = f.AddClause([]LitID{1, -2})
	assert.Error(t, err)
}

func TestAddClauseRejectsDuplicateLiteral(t *testing.T) {
	f, err := NewFormula(2, nil)
	assert.NoError(t, err)
	_, err = f.AddScope(Exists, []VarID{1, 2})
	assert.NoError(t, err)

	_, err = f.AddClause([]LitID{1, 1, -2})
	assert.Error(t, err)
}

func TestAddClauseRejectsTautology(t *testing.T) {
	f, err := NewFormula(2, nil)
	assert.NoError(t, err)
	_, err = f.AddScope(Exists, []VarID{1, 2})
	assert.NoError(t, err)

	_, err = f.AddClause([]LitID{1, -1})
	assert.Error(t, err)
}

func TestAddClausePopulatesOccurrenceLists(t *testing.T) {
	f, err := NewFormula(2, nil)
	assert.NoError(t, err)
	_, err = f.AddScope(Exists, []VarID{1, 2})
	assert.NoError(t, err)

	c, err := f.AddClause([]LitID{1, -2})
	assert.NoError(t, err)

	assert.Equal(t, []*Clause{c}, f.Variable(1).PosOcc)
	assert.Empty(t, f.Variable(1).NegOcc)
	assert.Equal(t, []*Clause{c}, f.Variable(2).NegOcc)
	assert.Empty(t, f.Variable(2).PosOcc)
}

func TestSetBlockedIsMonotoneAndIdempotent(t *testing.T) {
	f, err := NewFormula(1, nil)
	assert.NoError(t, err)
	_, err = f.AddScope(Exists, []VarID{1})
	assert.NoError(t, err)
	c, err := f.AddClause([]LitID{1})
	assert.NoError(t, err)

	assert.Equal(t, 0, f.BlockedCount())
	f.SetBlocked(c)
	assert.True(t, c.Blocked)
	assert.Equal(t, 1, f.BlockedCount())

	f.SetBlocked(c)
	assert.Equal(t, 1, f.BlockedCount(), "re-blocking an already-blocked clause must not double-count")
}

func TestNewFormulaChargesAccountant(t *testing.T) {
	acct := runtime.NewAccountant(1)
	_, err := NewFormula(10, acct)
	assert.Error(t, err)
}
