package qdimacs

import (
	"strings"
	"testing"

	qbceerrors "github.com/flonsing/qbce-prepro/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestReadEmptyPrefixUndeclaredVariable(t *testing.T) {
	// S1: variable 1 is never quantified.
	_, err := Read(strings.NewReader("p cnf 1 1\n1 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.ClauseSyntax))
}

func TestReadBasicFormula(t *testing.T) {
	src := "c a comment\np cnf 2 1\ne 1 2 0\n1 -2 0\n"
	f, err := Read(strings.NewReader(src), nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, int(f.NumVars))
	assert.Len(t, f.Clauses, 1)
	assert.Len(t, f.Scopes, 1)
	assert.True(t, f.Scopes[0].Exists())
}

func TestReadRejectsMissingPreamble(t *testing.T) {
	_, err := Read(strings.NewReader("e 1 0\n1 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.MalformedPreamble))
}

func TestReadRejectsBadCnfToken(t *testing.T) {
	_, err := Read(strings.NewReader("p dnf 1 1\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.MalformedPreamble))
}

func TestReadRejectsZeroVariableInScope(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 1 0\ne 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.ScopeSyntax))
}

func TestReadRejectsOutOfRangeVariableInScope(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 1 0\ne 5 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.ScopeSyntax))
}

func TestReadRejectsReQuantification(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 2 0\ne 1 0\na 1 2 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.ScopeSyntax))
}

func TestReadRejectsDuplicateLiteral(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 1 1\ne 1 0\n1 1 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.ClauseSyntax))
}

func TestReadRejectsTautologicalClause(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 1 1\ne 1 0\n1 -1 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.ClauseSyntax))
}

func TestReadRejectsDeclaredMoreThanActualClauseCount(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 1 2\ne 1 0\n1 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.CountMismatch))
}

func TestReadRejectsActualExceedingDeclaredClauseCount(t *testing.T) {
	_, err := Read(strings.NewReader("p cnf 1 1\ne 1 0\n1 0\n-1 0\n"), nil)
	assert.Error(t, err)
	assert.True(t, qbceerrors.Is(err, qbceerrors.CountMismatch))
}

func TestReadToleratesCommentsBetweenTokens(t *testing.T) {
	src := "p cnf 2 1\nc this is fine\ne 1 2 0\nc so is this\n1 -2 0\n"
	f, err := Read(strings.NewReader(src), nil)
	assert.NoError(t, err)
	assert.Len(t, f.Clauses, 1)
}
